package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"mad-life/internal/control"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Engine      string `yaml:"engine"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	CellSize    int    `yaml:"cell_size"`
	MaxCellSize int    `yaml:"max_cell_size"`
	Seed        int64  `yaml:"seed"`
	TPS         int    `yaml:"tps"`

	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`

	ThroughputPeriod time.Duration `yaml:"throughput_period"`
	DisplayPeriod    time.Duration `yaml:"display_period"`
	PerfCSV          string        `yaml:"perf_csv"`

	LogFormat string `yaml:"log_format"`
	LogLevel  string `yaml:"log_level"`
}

// NewConfig returns a Config populated with sensible defaults. A zero
// CellSize sizes cells to fit the window.
func NewConfig() *Config {
	return &Config{
		Engine:           "life",
		Width:            512,
		Height:           512,
		MaxCellSize:      control.DefaultMaxCellSize,
		Seed:             42,
		TPS:              60,
		WindowWidth:      1224,
		WindowHeight:     1024,
		ThroughputPeriod: 10 * time.Second,
		DisplayPeriod:    500 * time.Millisecond,
		LogFormat:        "text",
		LogLevel:         "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Engine, "engine", c.Engine, "simulation engine to run")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "initial cell size in pixels (0 fits the window)")
	fs.IntVar(&c.MaxCellSize, "max-cell-size", c.MaxCellSize, "largest explicit zoom in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial random fill")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host frames per second")
	fs.IntVar(&c.WindowWidth, "window-width", c.WindowWidth, "initial window width")
	fs.IntVar(&c.WindowHeight, "window-height", c.WindowHeight, "initial window height")
	fs.DurationVar(&c.ThroughputPeriod, "throughput-period", c.ThroughputPeriod, "loop throughput log interval")
	fs.DurationVar(&c.DisplayPeriod, "display-period", c.DisplayPeriod, "frame rate indicator refresh interval")
	fs.StringVar(&c.PerfCSV, "perf-csv", c.PerfCSV, "append throughput windows to this CSV file")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format (text or json)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// LoadFile overlays a YAML file on the config. Flags set explicitly on fs
// take precedence over the file.
func (c *Config) LoadFile(path string, fs *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	changed := map[string]string{}
	if fs != nil {
		fs.Visit(func(f *pflag.Flag) {
			changed[f.Name] = f.Value.String()
		})
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	for name, value := range changed {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("reapplying --%s: %w", name, err)
		}
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Engine == "":
		return errors.New("engine is required")
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	case c.MaxCellSize <= 0:
		return fmt.Errorf("max cell size %d must be positive", c.MaxCellSize)
	case c.CellSize < 0 || c.CellSize > c.MaxCellSize:
		return fmt.Errorf("cell size %d outside [0, %d]", c.CellSize, c.MaxCellSize)
	case c.TPS <= 0:
		return fmt.Errorf("tps %d must be positive", c.TPS)
	case c.ThroughputPeriod <= 0 || c.DisplayPeriod <= 0:
		return errors.New("metric periods must be positive")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// InitialCellSize returns the configured cell size, or the largest size that
// fits the grid into the window next to a panel of the given width.
func (c *Config) InitialCellSize(panelWidth int) int {
	if c.CellSize > 0 {
		return c.CellSize
	}
	n := (c.WindowWidth - panelWidth) / c.Width
	return max(1, min(n, c.MaxCellSize))
}

// ControlConfig derives the controller tunables.
func (c *Config) ControlConfig(log *slog.Logger, reporters ...control.Reporter) control.Config {
	cfg := control.DefaultConfig()
	cfg.MaxCellSize = c.MaxCellSize
	cfg.ThroughputPeriod = c.ThroughputPeriod
	cfg.DisplayPeriod = c.DisplayPeriod
	cfg.Logger = log
	cfg.Reporters = reporters
	return cfg
}
