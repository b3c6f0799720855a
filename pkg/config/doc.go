// Package config loads typed configuration structs from environment
// variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing. Every helper package in this
// module exposes a Config struct with `env` tags and a NewFromConfig
// constructor, so wiring a service looks like:
//
//	var emailCfg email.Config
//	if err := config.Load(&emailCfg); err != nil {
//	    return err
//	}
//	checker := email.NewFromConfig(emailCfg)
//
// Parsed structs are cached by type (and prefix, for LoadWithPrefix), so
// repeated calls are cheap and always return the first parsed value. Call
// ResetCache in tests that need to re-read the environment.
//
// Errors can be compared with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
