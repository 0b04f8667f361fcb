package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"transposer/internal/logging"
)

// EnvPrefix is stripped from environment overrides; "__" separates levels,
// e.g. TRANSPOSER__GRPC__PORT=7071.
const EnvPrefix = "TRANSPOSER__"

type App struct {
	SchemaVersion string          `koanf:"schema_version"`
	Label         string          `koanf:"label"`
	Format        string          `koanf:"format"`
	Log           logging.Options `koanf:"log"`
	GRPC          struct {
		Port int `koanf:"port"`
	} `koanf:"grpc"`
	Metrics struct {
		Enabled bool `koanf:"enabled"` // default true
		Port    int  `koanf:"port"`
	} `koanf:"metrics"`
	// Pipeline is optional; a relative path is resolved against the config file.
	Pipeline string `koanf:"pipeline"`
}

// Load merges YAML (if present) with env-vars and applies defaults.
func Load(path string) (App, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return App{}, fmt.Errorf("config %s: %w", path, err)
		}
	}
	sv := k.String("schema_version")
	if sv != "" && sv != SupportedSchema {
		return App{}, fmt.Errorf("config schema_version %q not supported (want %q)", sv, SupportedSchema)
	}

	_ = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if !k.Exists("metrics.enabled") {
		if err := k.Set("metrics.enabled", true); err != nil {
			return App{}, err
		}
	}

	var cfg App
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	if cfg.Pipeline != "" && path != "" && !filepath.IsAbs(cfg.Pipeline) {
		cfg.Pipeline = filepath.Join(filepath.Dir(path), cfg.Pipeline)
	}
	return cfg, nil
}

// envKey maps TRANSPOSER__GRPC__PORT to grpc.port.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func applyDefaults(c *App) {
	if c.SchemaVersion == "" {
		c.SchemaVersion = SupportedSchema
	}
	if c.Format == "" {
		c.Format = "json"
	}
	if c.GRPC.Port == 0 {
		c.GRPC.Port = 7070
	}
	if c.Metrics.Port == 0 {
		c.Metrics.Port = 9100
	}
}
