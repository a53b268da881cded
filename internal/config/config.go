package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/annel0/blockworld/internal/logging"
	"github.com/annel0/blockworld/internal/world/block"
	"gopkg.in/yaml.v3"
)

// ErrInvalid возвращается Validate для некорректной конфигурации
var ErrInvalid = errors.New("некорректная конфигурация")

// Config корневая структура конфигурации приложения.
type Config struct {
	World       WorldConfig       `yaml:"world"`
	Interaction InteractionConfig `yaml:"interaction"`
	Hotbar      HotbarConfig      `yaml:"hotbar"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type WorldConfig struct {
	FloorWidth    int           `yaml:"floor_width"`
	FloorDepth    int           `yaml:"floor_depth"`
	FloorMaterial string        `yaml:"floor_material"`
	Terrain       TerrainConfig `yaml:"terrain"`
}

// TerrainConfig включает шумовую генерацию рельефа вместо плоского пола
type TerrainConfig struct {
	Enabled   bool  `yaml:"enabled"`
	Seed      int64 `yaml:"seed"`
	MaxHeight int   `yaml:"max_height"`
}

type InteractionConfig struct {
	Reach             float32 `yaml:"reach"`
	ClickDelaySeconds float32 `yaml:"click_delay_seconds"`
	TickRate          int     `yaml:"tick_rate"`
}

type HotbarConfig struct {
	Slots  int      `yaml:"slots"`
	Blocks []string `yaml:"blocks"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// Default возвращает конфигурацию по умолчанию: пол 16x16 из травы,
// дальность луча 10, задержка клика 0.2 с, 60 тиков в секунду.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			FloorWidth:    16,
			FloorDepth:    16,
			FloorMaterial: block.Grass.String(),
			Terrain: TerrainConfig{
				Seed:      1,
				MaxHeight: 6,
			},
		},
		Interaction: InteractionConfig{
			Reach:             10,
			ClickDelaySeconds: 0.2,
			TickRate:          60,
		},
		Hotbar: HotbarConfig{
			Slots:  9,
			Blocks: defaultHotbarBlocks(),
		},
		Metrics: MetricsConfig{},
		Logging: LoggingConfig{
			Level: logging.INFO.String(),
		},
	}
}

func defaultHotbarBlocks() []string {
	names := make([]string, 0, len(block.All()))
	for _, m := range block.All() {
		names = append(names, m.String())
	}
	return names
}

// GetMetricsAddr возвращает адрес Prometheus метрик с поддержкой fallback значений
func (m *MetricsConfig) GetMetricsAddr() string {
	return getStringWithEnvFallback(m.Addr, "BLOCKWORLD_METRICS_ADDR", ":2112")
}

// GetTickRate возвращает частоту тиков с поддержкой fallback значений
func (i *InteractionConfig) GetTickRate() int {
	return getIntWithEnvFallback(i.TickRate, "BLOCKWORLD_TICK_RATE", 60)
}

// getStringWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getStringWithEnvFallback(configValue, envVar, defaultValue string) string {
	if configValue != "" {
		return configValue
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		return envVal
	}
	return defaultValue
}

// getIntWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getIntWithEnvFallback(configValue int, envVar string, defaultValue int) int {
	// Если значение задано в конфиге и больше 0, используем его
	if configValue > 0 {
		return configValue
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}

	return defaultValue
}

// Material возвращает материал пола
func (w *WorldConfig) Material() (block.Material, error) {
	return block.ParseMaterial(w.FloorMaterial)
}

// Materials возвращает материалы, которыми заполняется хотбар
func (h *HotbarConfig) Materials() ([]block.Material, error) {
	out := make([]block.Material, 0, len(h.Blocks))
	for _, name := range h.Blocks {
		m, err := block.ParseMaterial(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// LogLevel возвращает уровень логирования
func (l *LoggingConfig) LogLevel() (logging.LogLevel, error) {
	return logging.ParseLevel(l.Level)
}

// Validate проверяет значения конфигурации. Все ошибки оборачивают ErrInvalid.
func (c *Config) Validate() error {
	if c.World.FloorWidth < 0 || c.World.FloorDepth < 0 {
		return fmt.Errorf("%w: размер пола %dx%d", ErrInvalid, c.World.FloorWidth, c.World.FloorDepth)
	}
	if _, err := c.World.Material(); err != nil {
		return fmt.Errorf("%w: world.floor_material: %v", ErrInvalid, err)
	}
	if c.World.Terrain.Enabled && c.World.Terrain.MaxHeight <= 0 {
		return fmt.Errorf("%w: world.terrain.max_height должен быть больше 0", ErrInvalid)
	}
	if c.Interaction.Reach <= 0 {
		return fmt.Errorf("%w: interaction.reach должен быть больше 0", ErrInvalid)
	}
	if c.Interaction.ClickDelaySeconds <= 0 {
		return fmt.Errorf("%w: interaction.click_delay_seconds должен быть больше 0", ErrInvalid)
	}
	if c.Interaction.TickRate < 0 {
		return fmt.Errorf("%w: interaction.tick_rate отрицателен", ErrInvalid)
	}
	if c.Hotbar.Slots <= 0 {
		return fmt.Errorf("%w: hotbar.slots должен быть больше 0", ErrInvalid)
	}
	if len(c.Hotbar.Blocks) > c.Hotbar.Slots {
		return fmt.Errorf("%w: в hotbar.blocks %d материалов при %d слотах", ErrInvalid, len(c.Hotbar.Blocks), c.Hotbar.Slots)
	}
	if _, err := c.Hotbar.Materials(); err != nil {
		return fmt.Errorf("%w: hotbar.blocks: %v", ErrInvalid, err)
	}
	if _, err := c.Logging.LogLevel(); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	return nil
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать из ENV BLOCKWORLD_CONFIG или возвращает Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("BLOCKWORLD_CONFIG")
		if path == "" {
			return cfg, nil // конфиг не задан, используем дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения конфигурации %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
