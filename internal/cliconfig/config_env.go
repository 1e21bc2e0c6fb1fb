package cliconfig

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ".env")
// into the process environment. Variables already set are not overridden,
// and missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ApplyEnvConfig applies configuration from TABSUM_* environment variables,
// leaving values whose flags were set explicitly (changed) untouched.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("file", os.Getenv("TABSUM_FILE"), &cfg.File)
	s.setString("log-level", os.Getenv("TABSUM_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-file", os.Getenv("TABSUM_LOG_FILE"), &cfg.LogFile)

	if err := s.setIntFromString("sample-size", os.Getenv("TABSUM_SAMPLE_SIZE"), &cfg.SampleSize); err != nil {
		return err
	}
	if err := s.setIntFromString("preview-rows", os.Getenv("TABSUM_PREVIEW_ROWS"), &cfg.PreviewRows); err != nil {
		return err
	}
	if err := s.setUint64FromString("seed", os.Getenv("TABSUM_SEED"), &cfg.Seed); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("TABSUM_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	if err := s.setBoolFromString("no-preview", os.Getenv("TABSUM_NO_PREVIEW"), &cfg.NoPreview); err != nil {
		return err
	}
	if err := s.setBoolFromString("watch", os.Getenv("TABSUM_WATCH"), &cfg.Watch); err != nil {
		return err
	}

	return nil
}
