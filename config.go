package aoc

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds the runner settings read from aoc.toml.
type Config struct {
	Year     int                  `toml:"year"`
	InputDir string               `toml:"input_dir"`
	LogLevel string               `toml:"log_level"`
	Days     map[string]DayConfig `toml:"day"`
}

// DayConfig holds per-day puzzle parameters. Sample and real inputs often
// need different values (grid sizes, thresholds), so they are kept apart.
type DayConfig struct {
	Sample map[string]int `toml:"sample"`
	Input  map[string]int `toml:"input"`
}

func DefaultConfig() Config {
	return Config{
		Year:     2024,
		InputDir: ".",
		LogLevel: "info",
	}
}

// ParseConfig decodes a TOML config from r on top of DefaultConfig.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads the config file at path. The returned error wraps
// fs.ErrNotExist if the file is missing.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := ParseConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Param returns the named parameter for day, or def if it is not set.
func (c Config) Param(day int, sample bool, name string, def int) int {
	dc, ok := c.Days[strconv.Itoa(day)]
	if !ok {
		return def
	}
	m := dc.Input
	if sample {
		m = dc.Sample
	}
	if v, ok := m[name]; ok {
		return v
	}
	return def
}
