package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML-friendly types. Pointers mark values
// whose zero value is meaningful.
type FileConfig struct {
	File        string  `toml:"file"`
	SampleSize  int     `toml:"sample_size"`
	Seed        *uint64 `toml:"seed"`
	PreviewRows int     `toml:"preview_rows"`
	NoPreview   *bool   `toml:"no_preview"`
	Watch       *bool   `toml:"watch"`
	Debounce    string  `toml:"debounce"`
	LogLevel    string  `toml:"log_level"`
	LogFile     string  `toml:"log_file"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.tabsum/config.toml, or "" when the home
// directory cannot be determined.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".tabsum", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to cfg, leaving values
// whose flags were set explicitly (changed) untouched.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("file", fc.File, &cfg.File)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("log-file", fc.LogFile, &cfg.LogFile)

	s.setInt("sample-size", fc.SampleSize, &cfg.SampleSize)
	s.setInt("preview-rows", fc.PreviewRows, &cfg.PreviewRows)
	s.setUint64("seed", fc.Seed, &cfg.Seed)

	s.setBool("no-preview", fc.NoPreview, &cfg.NoPreview)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
