package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"minesweeper/internal/core"
	"minesweeper/internal/field"
)

// Config holds the game parameters. Values come from defaults, then an
// optional YAML file, then explicitly set flags.
type Config struct {
	Rows        int    `yaml:"rows"`
	Cols        int    `yaml:"cols"`
	MinePercent int    `yaml:"mines"`
	Seed        int64  `yaml:"seed"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
	NoColor     bool   `yaml:"no_color"`
	Scale       int    `yaml:"scale"`

	Path string `yaml:"-"`
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rows: 10, Cols: 10, MinePercent: 20, LogLevel: "warn", Scale: 32}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.MinePercent, "mines", c.MinePercent, fmt.Sprintf("mine density in percent (max %d)", field.MaxMinePercentage))
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for mine placement (0 = time based)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file instead of stderr")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "disable colored output")
	fs.IntVar(&c.Scale, "scale", c.Scale, "cell size in pixels for the window frontend")
	fs.StringVar(&c.Path, "config", c.Path, "path to a YAML config file")
}

// LoadFile merges the YAML file at c.Path into c. Flags that were set on fs
// keep their command-line value.
func (c *Config) LoadFile(fs *flag.FlagSet) error {
	if c.Path == "" {
		return nil
	}
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	explicit := map[string]string{}
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", c.Path, err)
	}
	for name, v := range explicit {
		if err := fs.Set(name, v); err != nil {
			return fmt.Errorf("reapply -%s: %w", name, err)
		}
	}
	return nil
}

// Validate reports the first parameter that cannot produce a playable game.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: grid %dx%d must have positive dimensions", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if c.MinePercent < 0 || c.MinePercent > field.MaxMinePercentage {
		return fmt.Errorf("%w: mine density %d%% outside 0..%d", ErrInvalidConfig, c.MinePercent, field.MaxMinePercentage)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Load binds c to fs, parses args, merges the config file and validates.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := c.LoadFile(fs); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewField builds the resized field for c, seeding mine placement from the
// clock when no seed was configured.
func NewField(c *Config) (*field.Field, error) {
	seed := c.Seed
	if seed == 0 {
		seed = core.TimeSeed()
	}
	f := field.New(core.NewRNG(seed))
	if err := f.Resize(c.Rows, c.Cols); err != nil {
		return nil, err
	}
	return f, nil
}
