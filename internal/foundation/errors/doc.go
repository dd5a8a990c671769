// Package errors provides the classified error primitives used across sitecfg.
//
// Resolver failures (site.ConfigError) are wrapped into ClassifiedError values
// at the loader boundary so the CLI can choose an exit code and a message
// without knowing which component failed.
//
//   - ErrorCategory: broad classification (config, validation, not_found, ...)
//   - ErrorSeverity: impact level (fatal, error, warning, info)
//   - ClassifiedError: structured error with category, severity and context
//   - ErrorBuilder: fluent construction API
//   - CLIErrorAdapter: exit codes and user-facing formatting
//
// Example:
//
//	err := errors.WrapError(cfgErr, errors.CategoryConfig, "invalid site configuration").
//		Fatal().
//		WithContext("field", cfgErr.Field).
//		WithContext("file", path).
//		Build()
package errors
