package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerManager_ReusesComponentLogger(t *testing.T) {
	captureConsole(t)
	lm := newLoggerManager()

	a, err := lm.GetLogger("game")
	require.NoError(t, err)
	b := lm.MustGetLogger("game")
	assert.Same(t, a, b)

	lm.MustGetLogger("events")
	assert.Equal(t, []string{"events", "game"}, lm.ListComponents())

	require.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.ListComponents())
}

func TestLoggerManager_SetLogLevel(t *testing.T) {
	buf := captureConsole(t)
	lm := newLoggerManager()

	logger := lm.MustGetLogger("world")
	require.NoError(t, lm.SetLogLevel("world", TRACE, TRACE))
	logger.Trace("подробно")
	assert.Contains(t, buf.String(), "[TRACE] подробно")

	assert.Error(t, lm.SetLogLevel("missing", INFO, INFO))
}

func TestGetComponentLogger(t *testing.T) {
	captureConsole(t)
	assert.Same(t, GetComponentLogger(ComponentGame), GetComponentLogger(ComponentGame))
	assert.NotSame(t, GetComponentLogger(ComponentGame), GetComponentLogger(ComponentEvents))
	assert.Contains(t, GetLoggerManager().ListComponents(), ComponentEvents)
}

func TestLoggerManager_FallbackWhenDirUnavailable(t *testing.T) {
	captureConsole(t)

	// Файл вместо директории: MkdirAll вернёт ошибку
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	Configure(INFO, filepath.Join(blocker, "logs"))

	lm := newLoggerManager()
	_, err := lm.GetLogger(ComponentHTTP)
	require.Error(t, err)

	logger := lm.MustGetLogger(ComponentHTTP)
	require.NotNil(t, logger)
	assert.Equal(t, ComponentHTTP, logger.component)
	assert.Nil(t, logger.file)
	assert.NotPanics(t, func() { logger.Info("в консоль") })
	assert.Empty(t, lm.ListComponents(), "запасной логгер не кэшируется")
}
