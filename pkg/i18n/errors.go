package i18n

import "errors"

var (
	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// TOML operations
	ErrTOMLParsingCancelled = errors.New("toml parsing cancelled")
	ErrFailedToParseTOML    = errors.New("failed to parse TOML content")

	// File operations
	ErrLoadingFileCancelled  = errors.New("loading message file cancelled")
	ErrFailedToReadFile      = errors.New("failed to read message file")
	ErrFailedToParseFile     = errors.New("failed to parse message file")
	ErrUnsupportedFileFormat = errors.New("unsupported message file format")

	// Embedded filesystem operations
	ErrFailedToReadEmbeddedDirectory = errors.New("failed to read embedded directory")
	ErrFailedToReadEmbeddedFile      = errors.New("failed to read embedded message file")
	ErrFailedToParseEmbeddedFile     = errors.New("failed to parse embedded message file")

	// Catalog construction
	ErrInvalidMessages = errors.New("invalid message table")
)
