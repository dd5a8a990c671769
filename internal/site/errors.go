package site

import "fmt"

// ConfigError reports the first invariant violated by a raw site configuration.
// Field is a dotted/indexed path such as "navbar[2].link".
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func newConfigError(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func indexed(field string, i int) string { return fmt.Sprintf("%s[%d]", field, i) }
