// internal/config/env.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// FromEnvironment loads .env files (missing files are fine), then builds Settings:
// the JSON file named by INVADERS_CONFIG if set, otherwise the defaults, followed by
// the INVADERS_SEED, INVADERS_ASSETS and INVADERS_VERBOSE overrides.
func FromEnvironment(envFiles ...string) (*Settings, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load environment file: %w", err)
		}
	} else {
		log.Println("Loaded environment overrides")
	}

	s := Default()
	if path := os.Getenv(EnvConfigPath); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		s = loaded
		log.Printf("Loaded settings from %s", path)
	}
	if err := ApplyEnv(s, os.Getenv); err != nil {
		return nil, err
	}
	return s, nil
}

// ApplyEnv applies the per-variable overrides read through getenv.
func ApplyEnv(s *Settings, getenv func(string) string) error {
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, EnvSeed, err)
		}
		s.Seed = seed
	}
	if v := getenv(EnvAssetsDir); v != "" {
		s.AssetsDir = v
	}
	if v := getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, EnvVerbose, err)
		}
		s.Verbose = verbose
	}
	return nil
}
