package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment names read by Load.
const (
	EnvPrefix  = "TRADECALC_"
	EnvConfig  = EnvPrefix + "CONFIG"
	EnvDotFile = EnvPrefix + "ENV_FILE"

	defaultDotFile = ".env"
)

// Load builds a Config by layering defaults, a dotenv file, an optional YAML
// file and env vars. Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. dotenv file (TRADECALC_ENV_FILE, or ./.env when present)
//  3. file (YAML) if TRADECALC_CONFIG is set
//  4. env (prefix TRADECALC_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if err := loadDotEnv(k); err != nil {
		return nil, err
	}

	if path := os.Getenv(EnvConfig); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// TRADECALC_SESSION_TTL_SECONDS -> session_ttl_seconds (flat keys).
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
}

// loadDotEnv reads KEY=VALUE pairs without touching the process environment.
// An explicitly named file must exist; the implicit ./.env is optional.
func loadDotEnv(k *koanf.Koanf) error {
	path, explicit := os.LookupEnv(EnvDotFile)
	if !explicit || path == "" {
		path = defaultDotFile
		explicit = false
	}

	vals, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
	}

	for name, v := range vals {
		if !strings.HasPrefix(name, EnvPrefix) || name == EnvConfig || name == EnvDotFile {
			continue
		}
		if err := k.Set(envKey(name), v); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrLoadConfig, name, err)
		}
	}
	return nil
}
