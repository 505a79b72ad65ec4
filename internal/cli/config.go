package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/hupe1980/slidego"
	"github.com/hupe1980/slidego/internal/visited"
)

// Config holds the session settings a command runs with.
//
// Example file:
//
//	memory_limit = 4294967296
//	table_size = 65536
//	progress_interval = "10s"
//	slides = true
type Config struct {
	MemoryLimit      int64  `toml:"memory_limit"`
	TableSize        int    `toml:"table_size"`
	SoftDepth        int    `toml:"soft_depth"`
	SoftCount        int    `toml:"soft_count"`
	Heap             bool   `toml:"heap"`
	ProgressInterval string `toml:"progress_interval"`
	Slides           bool   `toml:"slides"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{
		MemoryLimit:      1 << 30,
		TableSize:        visited.DefaultTableSize,
		SoftDepth:        visited.DefaultSoftDepth,
		SoftCount:        visited.DefaultSoftCount,
		ProgressInterval: slidego.DefaultProgressInterval.String(),
	}
}

// LoadConfig reads path over DefaultConfig. An empty path returns the
// defaults. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// addSessionFlags registers the flags that override config values.
func addSessionFlags(fs *pflag.FlagSet) {
	fs.Int64("memory", 0, "memory limit in bytes (overrides config)")
	fs.Bool("heap", false, "keep tables on the Go heap")
	fs.Bool("slides", false, "move whole rows and columns in one step")
}

func (c *Config) applyFlags(fs *pflag.FlagSet) error {
	if f := fs.Lookup("memory"); f != nil && f.Changed {
		v, err := fs.GetInt64("memory")
		if err != nil {
			return err
		}
		c.MemoryLimit = v
	}
	for name, dst := range map[string]*bool{"heap": &c.Heap, "slides": &c.Slides} {
		if f := fs.Lookup(name); f != nil && f.Changed {
			v, err := fs.GetBool(name)
			if err != nil {
				return err
			}
			*dst = v
		}
	}
	return nil
}

func (c Config) options(logger *slidego.Logger) ([]slidego.Option, error) {
	interval, err := time.ParseDuration(c.ProgressInterval)
	if err != nil {
		return nil, fmt.Errorf("progress_interval: %w", err)
	}

	opts := []slidego.Option{
		slidego.WithLogger(logger),
		slidego.WithMemoryLimit(c.MemoryLimit),
		slidego.WithTableSize(c.TableSize),
		slidego.WithSoftThresholds(c.SoftDepth, c.SoftCount),
		slidego.WithProgressInterval(interval),
	}
	if c.Heap {
		opts = append(opts, slidego.WithHeapStorage())
	}
	return opts, nil
}
