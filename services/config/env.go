//go:build !rp2040 && !rp2350

package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every override, e.g. MOTIONLIGHT_MIN_ON=2m.
const EnvPrefix = "MOTIONLIGHT"

// LoadEnv applies .env files (missing files are ignored) and then process
// environment overrides onto cfg, and re-validates.
func LoadEnv(cfg *Config, files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}
