package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/blockworld/internal/config"
	"github.com/annel0/blockworld/internal/console"
	"github.com/annel0/blockworld/internal/eventbus"
	"github.com/annel0/blockworld/internal/game"
	"github.com/annel0/blockworld/internal/logging"
	"github.com/annel0/blockworld/internal/metrics"
	"github.com/annel0/blockworld/internal/world"
)

func main() {
	var (
		configPath = flag.String("config", "", "Путь к YAML конфигурации (по умолчанию $BLOCKWORLD_CONFIG)")
		scriptPath = flag.String("script", "", "Файл с командами (по умолчанию stdin)")
		logLevel   = flag.String("log-level", "", "Уровень логирования: trace, debug, info, warn, error")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	level, err := cfg.Logging.LogLevel()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	logging.Configure(level, cfg.Logging.Dir)
	if err := logging.InitDefaultLogger("blockworld"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var in io.Reader = os.Stdin
	if *scriptPath != "" {
		f, err := os.Open(*scriptPath)
		if err != nil {
			logging.Error("❌ Ошибка открытия сценария: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := run(ctx, cfg, in, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error("❌ %v", err)
		os.Exit(1)
	}
	logging.Info("👋 Работа завершена")
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	w, err := buildWorld(cfg.World)
	if err != nil {
		return err
	}
	defer w.Clear()
	logging.Info("🌍 Мир создан, блоков: %d", w.Len())

	// Шина событий только для наблюдения: мир из обработчиков не меняется
	bus := eventbus.NewMemoryBus(1024)
	eventbus.Init(bus)
	defer func() {
		eventbus.Init(nil)
		bus.Close()
	}()
	if _, err := eventbus.StartLoggingListener(bus); err != nil {
		return fmt.Errorf("ошибка подписки на события: %w", err)
	}

	m := metrics.New()
	if err := m.AttachBus(bus, time.Second); err != nil {
		return err
	}
	defer m.Close()

	if cfg.Metrics.Enabled {
		metricsCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := m.Serve(metricsCtx, cfg.Metrics.GetMetricsAddr()); err != nil {
				logging.Error("%v", err)
			}
		}()
	}

	materials, err := cfg.Hotbar.Materials()
	if err != nil {
		return err
	}

	ctrl := game.NewController(w, game.Options{
		Reach:      cfg.Interaction.Reach,
		ClickDelay: cfg.Interaction.ClickDelaySeconds,
		Hotbar:     game.NewHotbar(cfg.Hotbar.Slots, materials),
		Bus:        bus,
		Recorder:   m,
	})

	runner := console.NewRunner(ctrl, out, cfg.Interaction.GetTickRate())
	runner.SetObserver(m)

	if err := runner.Run(ctx, in); err != nil {
		return err
	}
	logging.Info("Выполнено тиков: %d, шаблонов сохранено: %d", runner.Ticks(), ctrl.Library().Len())
	return nil
}

// buildWorld создаёт стартовый мир: плоский пол или шумовой рельеф
func buildWorld(cfg config.WorldConfig) (*world.World, error) {
	w := world.New()

	if cfg.Terrain.Enabled {
		gen := world.NewTerrainGenerator(cfg.Terrain.Seed, cfg.Terrain.MaxHeight)
		gen.Generate(w, cfg.FloorWidth, cfg.FloorDepth)
		return w, nil
	}

	floor, err := cfg.Material()
	if err != nil {
		return nil, err
	}
	w.GenerateFloor(cfg.FloorWidth, cfg.FloorDepth, floor)
	return w, nil
}
