// Package config loads pagr settings from a YAML file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/metcalfc/pagr/internal/pager"
	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

var (
	// ErrPageSizeSyntax is returned for page sizes that are not integers.
	ErrPageSizeSyntax = errors.New("words per page must be a whole number")

	// ErrPageSizeRange is returned for page sizes outside [1, 9999].
	ErrPageSizeRange = fmt.Errorf("words per page must be between %d and %d",
		pager.MinPageSize, pager.MaxPageSize)
)

// Config holds user settings. Flags override values read from the file.
type Config struct {
	PageSize int    `yaml:"words_per_page"`
	Columns  int    `yaml:"columns"`
	Rows     int    `yaml:"rows"`
	Panel    int    `yaml:"panel_pixels"`
	LogFile  string `yaml:"log_file"`
	Debug    bool   `yaml:"debug"`
}

// Default returns the built-in settings: a 256x256 panel, which holds about
// 40x16 terminal cells of text.
func Default() Config {
	return Config{
		PageSize: pager.DefaultPageSize,
		Columns:  40,
		Rows:     16,
		Panel:    256,
	}
}

// Path returns XDG_CONFIG_HOME/pagr/config.yaml or ~/.config/pagr/config.yaml.
func Path() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "pagr", fileName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pagr", fileName)
}

// Load reads the file at path over the defaults. A missing file is not an
// error. The result is not validated; call Validate once flags are merged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Override copies the -n, -log and -debug flags that were given on the
// command line over c. Flags left at their defaults do not touch c.
func (c *Config) Override(fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		switch v := getter.Get().(type) {
		case int:
			if f.Name == "n" {
				c.PageSize = v
			}
		case string:
			if f.Name == "log" {
				c.LogFile = v
			}
		case bool:
			if f.Name == "debug" {
				c.Debug = v
			}
		}
	})
}

// Validate rejects an out of range page size and fills in unusable
// display dimensions with defaults.
func (c *Config) Validate() error {
	if !pager.ValidPageSize(c.PageSize) {
		return fmt.Errorf("config: %w (got %d)", ErrPageSizeRange, c.PageSize)
	}
	def := Default()
	if c.Columns < 1 {
		c.Columns = def.Columns
	}
	if c.Rows < 1 {
		c.Rows = def.Rows
	}
	if c.Panel < 1 {
		c.Panel = def.Panel
	}
	return nil
}

// ParsePageSize validates user input for the words per page prompt.
func ParsePageSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrPageSizeSyntax
	}
	if !pager.ValidPageSize(n) {
		return 0, ErrPageSizeRange
	}
	return n, nil
}
