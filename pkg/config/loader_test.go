package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/csvcheck/pkg/config"
	"github.com/dmitrymomot/csvcheck/pkg/validator"
)

type reportConfig struct {
	Output  string   `env:"OUTPUT" envDefault:"text"`
	Columns []string `env:"COLUMNS" envSeparator:","`
	Limit   int      `env:"LIMIT,required"`
}

func TestLoad(t *testing.T) {
	t.Run("parses prefixed variables", func(t *testing.T) {
		var cfg reportConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{
			"CSVCHECK_COLUMNS": "ID,Email",
			"CSVCHECK_LIMIT":   "10",
		}))
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Output)
		assert.Equal(t, []string{"ID", "Email"}, cfg.Columns)
		assert.Equal(t, 10, cfg.Limit)
	})

	t.Run("custom prefix", func(t *testing.T) {
		var cfg reportConfig
		err := config.Load(&cfg,
			config.WithPrefix("CI_"),
			config.WithEnvironment(map[string]string{"CI_LIMIT": "3", "CSVCHECK_LIMIT": "10"}))
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Limit)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg reportConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *reportConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ci.env")
		require.NoError(t, os.WriteFile(path, []byte("CSVCHECK_TEST_FILE_LIMIT=7\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("CSVCHECK_TEST_FILE_LIMIT") })

		var cfg struct {
			Limit int `env:"TEST_FILE_LIMIT"`
		}
		require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path)))
		assert.Equal(t, 7, cfg.Limit)
	})

	t.Run("missing env file", func(t *testing.T) {
		var cfg reportConfig
		err := config.Load(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("MustLoad panics", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg reportConfig
			config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
		})
	})
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.FromEnv(config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, "en", cfg.Lang)
		assert.Equal(t, 2, cfg.RowIndexStart)
		assert.True(t, cfg.ValidateHeaderNames)
		assert.Equal(t, ',', cfg.Comma())
		assert.Equal(t, config.OutputText, cfg.Output)
		assert.Equal(t, "csvcheck", cfg.PushGatewayJob)
		assert.False(t, cfg.TrimHeaders)
		assert.False(t, cfg.LazyQuotes)
		assert.False(t, cfg.SkipEmptyLines)
		assert.Equal(t, "us-east-1", cfg.S3.Region)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := config.FromEnv(config.WithEnvironment(map[string]string{
			"CSVCHECK_LANG":                  "es",
			"CSVCHECK_BLANK_VALUES":          "-,N/A",
			"CSVCHECK_DELIMITER":             ";",
			"CSVCHECK_VALIDATE_HEADER_NAMES": "false",
			"CSVCHECK_LOG_LEVEL":             "debug",
			"CSVCHECK_S3_ENDPOINT":           "http://localhost:9000",
			"CSVCHECK_S3_FORCE_PATH_STYLE":   "true",
			"CSVCHECK_TRIM_HEADERS":          "true",
			"CSVCHECK_LAZY_QUOTES":           "true",
			"CSVCHECK_SKIP_EMPTY_LINES":      "true",
		}))
		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Lang)
		assert.Equal(t, []string{"-", "N/A"}, cfg.BlankValues)
		assert.Equal(t, ';', cfg.Comma())
		assert.False(t, cfg.ValidateHeaderNames)
		assert.Equal(t, "DEBUG", cfg.Level().String())
		assert.Equal(t, "http://localhost:9000", cfg.S3.Endpoint)
		assert.True(t, cfg.S3.ForcePathStyle)
		assert.True(t, cfg.TrimHeaders)
		assert.True(t, cfg.LazyQuotes)
		assert.True(t, cfg.SkipEmptyLines)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := config.FromEnv(config.WithEnvironment(map[string]string{
			"CSVCHECK_ROW_INDEX_START": "0",
			"CSVCHECK_CONCURRENCY":     "0",
			"CSVCHECK_OUTPUT":          "xml",
			"CSVCHECK_DELIMITER":       ";;",
			"CSVCHECK_LOG_LEVEL":       "loud",
		}))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"row_index_start", "concurrency", "output", "delimiter", "log_level"}, errs.Fields())
	})

	t.Run("concurrency ceiling", func(t *testing.T) {
		_, err := config.FromEnv(config.WithEnvironment(map[string]string{"CSVCHECK_CONCURRENCY": "65"}))
		require.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.Equal(t, []string{"concurrency"}, validator.ExtractValidationErrors(err).Fields())

		cfg, err := config.FromEnv(config.WithEnvironment(map[string]string{"CSVCHECK_CONCURRENCY": "64"}))
		require.NoError(t, err)
		assert.Equal(t, config.MaxConcurrency, cfg.Concurrency)
	})

	t.Run("unparsable number", func(t *testing.T) {
		_, err := config.FromEnv(config.WithEnvironment(map[string]string{"CSVCHECK_CONCURRENCY": "many"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}
