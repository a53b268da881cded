package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/annel0/blockworld/internal/eventbus"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	m := New()

	m.RaycastDone(true)
	m.RaycastDone(true)
	m.RaycastDone(false)
	m.BlockPlaced()
	m.BlockRemoved()
	m.BlockRemoved()
	m.TemplateSaved()
	m.TemplatePlaced(3)
	m.TemplatePlaced(4)
	m.WorldSize(256)
	m.ObserveTick(2 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.raycasts.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.raycasts.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.blockChanges.WithLabelValues("placed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.blockChanges.WithLabelValues("removed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.templatesSaved))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.templatesPlaced))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.templateBlocks))
	assert.Equal(t, 256.0, testutil.ToFloat64(m.blocks))
}

func TestHandler(t *testing.T) {
	m := New()
	m.WorldSize(42)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "blockworld_world_blocks 42")
	assert.True(t, strings.Contains(string(body), "go_goroutines"), "стандартные метрики рантайма")
}

func TestAttachBus(t *testing.T) {
	m := New()
	bus := eventbus.NewMemoryBus(4)

	require.NoError(t, m.AttachBus(bus, time.Millisecond))
	assert.Error(t, m.AttachBus(bus, time.Millisecond))

	ev, err := eventbus.NewEnvelope("game", "BlockPlaced", nil)
	require.NoError(t, err)
	require.NoError(t, bus.Publish(context.Background(), ev))
	require.NoError(t, bus.Close())

	m.Close()

	n, err := testutil.GatherAndCount(m.Registry(), "eventbus_messages_published_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "eventbus_messages_published_total 1")
}

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	m.WorldSize(7)
	r := m.Router()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, 200, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "blockworld_world_blocks 7")
	assert.Contains(t, rec.Body.String(), `blockworld_http_request_duration_seconds_count{method="GET",path="/healthz",status="200"} 1`)
}

func TestServe_StopsOnCancel(t *testing.T) {
	m := New()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- m.Serve(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve не завершился после отмены контекста")
	}
}
