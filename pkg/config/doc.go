// Package config loads csvcheck settings from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// .env files are loaded into the process environment, then the environment is
// parsed into a struct using field tags. Every variable is read with the
// CSVCHECK_ prefix unless WithPrefix says otherwise.
//
// # Usage
//
//	cfg, err := config.FromEnv()
//	if err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// S3 credentials are read from CSVCHECK_S3_REGION, CSVCHECK_S3_ACCESS_KEY_ID,
// CSVCHECK_S3_SECRET_ACCESS_KEY, CSVCHECK_S3_ENDPOINT and
// CSVCHECK_S3_FORCE_PATH_STYLE.
//
// Arbitrary structs can be loaded the same way:
//
//	type ReportConfig struct {
//	    Output string `env:"OUTPUT" envDefault:"text"`
//	}
//
//	var rc ReportConfig
//	err := config.Load(&rc, config.WithEnvFiles("./ci.env"))
//
// Tests pass WithEnvironment to parse a fixed map without touching the
// process environment.
//
// # Error Handling
//
//   - ErrParsingConfig: the environment could not be parsed into the struct.
//   - ErrLoadingEnvFile: an explicitly requested .env file could not be read.
//   - ErrInvalidConfig: FromEnv or Config.Validate found out of range values.
//   - ErrNilPointer: nil pointer passed to Load or MustLoad.
package config
