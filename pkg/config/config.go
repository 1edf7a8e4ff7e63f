package config

import (
	"errors"
	"log/slog"
	"unicode/utf8"

	"github.com/dmitrymomot/csvcheck/pkg/csvsource"
	"github.com/dmitrymomot/csvcheck/pkg/logger"
	"github.com/dmitrymomot/csvcheck/pkg/validator"
)

// MaxConcurrency bounds the number of sources validated in parallel.
const MaxConcurrency = 64

// Output formats of the validate command.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds the csvcheck runtime settings. Command line flags override it.
type Config struct {
	Lang                string   `env:"LANG" envDefault:"en"`
	MessagesFile        string   `env:"MESSAGES_FILE"`
	RowIndexStart       int      `env:"ROW_INDEX_START" envDefault:"2"`
	ValidateHeaderNames bool     `env:"VALIDATE_HEADER_NAMES" envDefault:"true"`
	BlankValues         []string `env:"BLANK_VALUES" envSeparator:","`
	Delimiter           string   `env:"DELIMITER" envDefault:","`
	Concurrency         int      `env:"CONCURRENCY" envDefault:"4"`
	Output              string   `env:"OUTPUT" envDefault:"text"`
	LogLevel            string   `env:"LOG_LEVEL" envDefault:"warn"`

	TrimHeaders    bool `env:"TRIM_HEADERS"`
	LazyQuotes     bool `env:"LAZY_QUOTES"`
	SkipEmptyLines bool `env:"SKIP_EMPTY_LINES"`

	PushGatewayURL string `env:"PUSHGATEWAY_URL"`
	PushGatewayJob string `env:"PUSHGATEWAY_JOB" envDefault:"csvcheck"`

	S3 csvsource.S3Config `envPrefix:"S3_"`
}

// FromEnv loads and validates a Config.
func FromEnv(opts ...Option) (Config, error) {
	var cfg Config
	if err := Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges. Errors are validator.ValidationErrors joined with ErrInvalidConfig.
func (c Config) Validate() error {
	err := validator.Apply(
		validator.MinNum("row_index_start", c.RowIndexStart, 1),
		validator.MinNum("concurrency", c.Concurrency, 1),
		validator.MaxNum("concurrency", c.Concurrency, MaxConcurrency),
		validator.InListString("output", c.Output, []string{OutputText, OutputJSON}),
		validator.Rule{
			Check: func() bool { return utf8.RuneCountInString(c.Delimiter) == 1 },
			Error: validator.ValidationError{
				Field:          "delimiter",
				Message:        "must be a single character",
				TranslationKey: "validation.delimiter",
			},
		},
		validator.Rule{
			Check: func() bool {
				_, err := logger.ParseLevel(c.LogLevel)
				return err == nil
			},
			Error: validator.ValidationError{
				Field:          "log_level",
				Message:        "must be one of debug, info, warn, error",
				TranslationKey: "validation.log_level",
			},
		},
	)
	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// Comma returns the delimiter as a rune.
func (c Config) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Level returns the parsed log level, defaulting to warn.
func (c Config) Level() slog.Level {
	l, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}
