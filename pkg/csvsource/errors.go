package csvsource

import "errors"

var (
	ErrInvalidURI   = errors.New("invalid source URI")
	ErrInvalidComma = errors.New("invalid field delimiter")

	// Local file errors
	ErrFileNotFound     = errors.New("file not found")
	ErrIsDirectory      = errors.New("path is a directory")
	ErrFailedToOpenFile = errors.New("failed to open file")
	ErrFailedToRead     = errors.New("failed to read CSV data")

	// S3 errors, classified from SDK responses
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
	ErrInvalidObjectState = errors.New("invalid object state")
	ErrInvalidConfig      = errors.New("invalid S3 configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")

	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")
)
