package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/annel0/blockworld/internal/logging"
	"github.com/annel0/blockworld/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockworld.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 16, cfg.World.FloorWidth)
	assert.Equal(t, 16, cfg.World.FloorDepth)
	assert.Equal(t, float32(10), cfg.Interaction.Reach)
	assert.InDelta(t, 0.2, cfg.Interaction.ClickDelaySeconds, 1e-6)
	assert.Equal(t, 9, cfg.Hotbar.Slots)

	floor, err := cfg.World.Material()
	require.NoError(t, err)
	assert.Equal(t, block.Grass, floor)

	mats, err := cfg.Hotbar.Materials()
	require.NoError(t, err)
	assert.Equal(t, block.All(), mats)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	t.Setenv("BLOCKWORLD_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
world:
  floor_width: 4
  floor_material: stone
  terrain:
    enabled: true
    seed: 42
interaction:
  reach: 6.5
hotbar:
  blocks: [wood, water]
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.World.FloorWidth)
	assert.Equal(t, 16, cfg.World.FloorDepth, "незаданные поля остаются по умолчанию")
	assert.True(t, cfg.World.Terrain.Enabled)
	assert.Equal(t, int64(42), cfg.World.Terrain.Seed)
	assert.Equal(t, 6, cfg.World.Terrain.MaxHeight)
	assert.Equal(t, float32(6.5), cfg.Interaction.Reach)

	mats, err := cfg.Hotbar.Materials()
	require.NoError(t, err)
	assert.Equal(t, []block.Material{block.Wood, block.Water}, mats)

	level, err := cfg.Logging.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logging.DEBUG, level)
}

func TestLoad_FromEnv(t *testing.T) {
	path := writeConfig(t, "world:\n  floor_depth: 3\n")
	t.Setenv("BLOCKWORLD_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.World.FloorDepth)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "world: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "world:\n  floor_material: lava\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"отрицательный пол":   func(c *Config) { c.World.FloorWidth = -1 },
		"нулевая дальность":   func(c *Config) { c.Interaction.Reach = 0 },
		"отрицательный клик":  func(c *Config) { c.Interaction.ClickDelaySeconds = -0.1 },
		"нет слотов":          func(c *Config) { c.Hotbar.Slots = 0 },
		"лишние материалы":    func(c *Config) { c.Hotbar.Slots = 2 },
		"неизвестный блок":    func(c *Config) { c.Hotbar.Blocks = []string{"obsidian"} },
		"неизвестный уровень": func(c *Config) { c.Logging.Level = "loud" },
		"рельеф без высоты": func(c *Config) {
			c.World.Terrain.Enabled = true
			c.World.Terrain.MaxHeight = 0
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestEnvFallback(t *testing.T) {
	var m MetricsConfig
	t.Setenv("BLOCKWORLD_METRICS_ADDR", "")
	assert.Equal(t, ":2112", m.GetMetricsAddr())

	t.Setenv("BLOCKWORLD_METRICS_ADDR", "127.0.0.1:9000")
	assert.Equal(t, "127.0.0.1:9000", m.GetMetricsAddr())

	m.Addr = ":3000"
	assert.Equal(t, ":3000", m.GetMetricsAddr(), "значение из конфига важнее env")

	var i InteractionConfig
	t.Setenv("BLOCKWORLD_TICK_RATE", "30")
	assert.Equal(t, 30, i.GetTickRate())
	t.Setenv("BLOCKWORLD_TICK_RATE", "abc")
	assert.Equal(t, 60, i.GetTickRate())
}
