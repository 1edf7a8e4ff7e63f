package schema

import "errors"

var (
	ErrInvalidSchema     = errors.New("invalid schema")
	ErrEmptySchema       = errors.New("schema has no columns")
	ErrUnknownDataType   = errors.New("unknown data type")
	ErrUnsupportedFormat = errors.New("unsupported schema file format")
	ErrFailedToReadFile  = errors.New("failed to read schema file")
	ErrFailedToParse     = errors.New("failed to parse schema document")
	ErrInvalidDocument   = errors.New("invalid schema document")
)
