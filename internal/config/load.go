package config

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// DefaultPath is the conventional project-root settings file.
const DefaultPath = "site.yaml"

// Load reads, expands and resolves the site configuration at path.
//
// .env and .env.local next to the file are loaded first so ${VAR} references
// can be satisfied locally. JSON documents are accepted since JSON is a YAML
// subset.
func Load(path string) (*site.SiteConfig, error) {
	raw, err := ReadRaw(path)
	if err != nil {
		return nil, err
	}
	cfg, res, err := site.ResolveWithNotes(raw)
	if err != nil {
		return nil, classifyResolveError(err, path)
	}
	for _, w := range res.Warnings {
		slog.Debug("config normalization: "+w, logfields.ConfigPath(path))
	}
	return cfg, nil
}

// ReadRaw returns the decoded document without resolving it.
func ReadRaw(path string) (map[string]any, error) {
	loadEnvFiles(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.NotFoundError(fmt.Sprintf("configuration file not found: %s", path)).
				WithContext("file", path).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").
			WithContext("file", path).
			Build()
	}
	return Decode([]byte(os.ExpandEnv(string(data))), path)
}

// Decode parses a YAML or JSON document whose root must be a mapping.
func Decode(data []byte, source string) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse site configuration").
			Fatal().
			WithContext("file", source).
			Build()
	}
	if doc == nil {
		return nil, errors.ConfigError("site configuration is empty").WithContext("file", source).Build()
	}
	raw, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.ConfigError(fmt.Sprintf("site configuration must be a mapping, got %T", doc)).
			WithContext("file", source).
			Build()
	}
	return raw, nil
}

func classifyResolveError(err error, path string) error {
	b := errors.WrapError(err, errors.CategoryConfig, "invalid site configuration").
		Fatal().
		WithContext("file", path)
	var cfgErr *site.ConfigError
	if stderrors.As(err, &cfgErr) {
		b = b.WithContext("field", cfgErr.Field)
	}
	return b.Build()
}
