// Package normalization parses user-supplied enum strings (flags, config
// values) into typed constants.
package normalization

import (
	"fmt"
	"sort"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// Enum maps case-insensitive, whitespace-tolerant names onto values of T.
type Enum[T comparable] struct {
	name   string
	values map[string]T
	keys   []string // sorted, for error messages
}

// NewEnum builds an Enum called name (used in error messages).
func NewEnum[T comparable](name string, values map[string]T) *Enum[T] {
	e := &Enum[T]{name: name, values: make(map[string]T, len(values))}
	for k, v := range values {
		key := clean(k)
		e.values[key] = v
		e.keys = append(e.keys, key)
	}
	sort.Strings(e.keys)
	return e
}

// Parse returns the value for raw, or a validation error listing the options.
func (e *Enum[T]) Parse(raw string) (T, error) {
	if v, ok := e.values[clean(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, errors.ValidationError(fmt.Sprintf("invalid %s %q, valid options: %s", e.name, raw, strings.Join(e.keys, ", "))).
		WithContext(e.name, raw).
		Build()
}

// ParseOr returns def when raw is blank and otherwise behaves like Parse.
func (e *Enum[T]) ParseOr(raw string, def T) (T, error) {
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	return e.Parse(raw)
}

// Names returns the accepted names in sorted order.
func (e *Enum[T]) Names() []string {
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

func clean(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
