package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/slidego"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
		assert.Equal(t, "5s", cfg.ProgressInterval)
	})

	t.Run("file", func(t *testing.T) {
		path := writeConfig(t, `
memory_limit = 2048
table_size = 512
soft_depth = 8
soft_count = 4
heap = true
progress_interval = "1m"
slides = true
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, Config{
			MemoryLimit:      2048,
			TableSize:        512,
			SoftDepth:        8,
			SoftCount:        4,
			Heap:             true,
			ProgressInterval: "1m",
			Slides:           true,
		}, cfg)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, "heap = true\n"))
		require.NoError(t, err)
		assert.True(t, cfg.Heap)
		assert.Equal(t, DefaultConfig().TableSize, cfg.TableSize)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "tabel_size = 5\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tabel_size")
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "heap = \n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/slidego.toml")
		assert.Error(t, err)
	})
}

func TestConfig_ApplyFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addSessionFlags(fs)
	require.NoError(t, fs.Parse([]string{"--memory", "99", "--slides"}))

	cfg := DefaultConfig()
	require.NoError(t, cfg.applyFlags(fs))
	assert.Equal(t, int64(99), cfg.MemoryLimit)
	assert.True(t, cfg.Slides)
	assert.False(t, cfg.Heap)
}

func TestConfig_Options(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Heap = true

	opts, err := cfg.options(slidego.NoopLogger())
	require.NoError(t, err)

	s, err := slidego.New(opts...)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, 1, s.Tables())

	cfg.ProgressInterval = "soon"
	_, err = cfg.options(slidego.NoopLogger())
	assert.Error(t, err)
}
