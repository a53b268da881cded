// Package metrics собирает Prometheus-метрики мира и шины событий
// в отдельном реестре и отдаёт их по HTTP.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/annel0/blockworld/internal/eventbus"
	"github.com/annel0/blockworld/internal/game"
	"github.com/annel0/blockworld/internal/logging"
	"github.com/annel0/blockworld/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "blockworld"

var _ game.Recorder = (*Metrics)(nil)

// Metrics набор метрик приложения. Реализует game.Recorder.
type Metrics struct {
	registry *prometheus.Registry
	exporter *eventbus.MetricsExporter
	http     *middleware.PrometheusMiddleware

	blocks          prometheus.Gauge
	raycasts        *prometheus.CounterVec
	blockChanges    *prometheus.CounterVec
	templatesSaved  prometheus.Counter
	templatesPlaced prometheus.Counter
	templateBlocks  prometheus.Counter
	tickSeconds     prometheus.Histogram
}

// New создаёт метрики и регистрирует их в новом реестре вместе
// со стандартными метриками Go-рантайма и процесса.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		blocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "world_blocks",
			Help:      "Количество занятых клеток мира.",
		}),
		raycasts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "raycasts_total",
			Help:      "Число бросков луча по результату.",
		}, []string{"result"}),
		blockChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "block_changes_total",
			Help:      "Число одиночных установок и удалений блоков игроком.",
		}, []string{"op"}),
		templatesSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "templates_saved_total",
			Help:      "Число сохранённых шаблонов.",
		}),
		templatesPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "templates_placed_total",
			Help:      "Число установок шаблонов в мир.",
		}),
		templateBlocks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "template_blocks_placed_total",
			Help:      "Число блоков, записанных установками шаблонов.",
		}),
		tickSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Длительность обработки одного тика.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.blocks,
		m.raycasts,
		m.blockChanges,
		m.templatesSaved,
		m.templatesPlaced,
		m.templateBlocks,
		m.tickSeconds,
	)
	m.http = middleware.NewPrometheusMiddleware(namespace, m.registry)
	return m
}

// Registry возвращает реестр метрик
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// AttachBus подключает экспорт статистики шины событий с периодом interval
func (m *Metrics) AttachBus(bus eventbus.EventBus, interval time.Duration) error {
	if m.exporter != nil {
		return errors.New("шина событий уже подключена")
	}
	exporter, err := eventbus.NewMetricsExporter(bus, m.registry)
	if err != nil {
		return fmt.Errorf("ошибка регистрации метрик шины: %w", err)
	}
	exporter.Start(interval)
	m.exporter = exporter
	return nil
}

// Close останавливает экспорт статистики шины
func (m *Metrics) Close() {
	if m.exporter != nil {
		m.exporter.Stop()
	}
}

// RaycastDone учитывает бросок луча
func (m *Metrics) RaycastDone(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.raycasts.WithLabelValues(result).Inc()
}

// BlockPlaced учитывает установку блока
func (m *Metrics) BlockPlaced() { m.blockChanges.WithLabelValues("placed").Inc() }

// BlockRemoved учитывает удаление блока
func (m *Metrics) BlockRemoved() { m.blockChanges.WithLabelValues("removed").Inc() }

// TemplateSaved учитывает сохранение шаблона
func (m *Metrics) TemplateSaved() { m.templatesSaved.Inc() }

// TemplatePlaced учитывает установку шаблона из blocks блоков
func (m *Metrics) TemplatePlaced(blocks int) {
	m.templatesPlaced.Inc()
	m.templateBlocks.Add(float64(blocks))
}

// WorldSize обновляет число занятых клеток
func (m *Metrics) WorldSize(blocks int) { m.blocks.Set(float64(blocks)) }

// ObserveTick учитывает длительность тика
func (m *Metrics) ObserveTick(d time.Duration) { m.tickSeconds.Observe(d.Seconds()) }

// Handler возвращает HTTP-обработчик /metrics для реестра
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Router возвращает Gin-роутер с эндпоинтами /metrics и /healthz
func (m *Metrics) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.NewRequestLogger().Handler())
	r.Use(m.http.Handler())

	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

// Serve запускает HTTP-эндпоинты метрик на addr и блокируется до отмены ctx.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	gin.SetMode(gin.ReleaseMode)

	srv := &http.Server{
		Addr:              addr,
		Handler:           m.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ошибка Prometheus HTTP сервера: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
