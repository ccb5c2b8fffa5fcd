package structured

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"recipe-finder-api/pkg/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newBufferLogger(level logrus.Level) (*Logger, *syncBuffer) {
	buf := &syncBuffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetLevel(level)
	return NewFromLogrus(base), buf
}

func decodeLines(t *testing.T, buf *syncBuffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}

func TestLogger_WritesStructuredFields(t *testing.T) {
	logger, buf := newBufferLogger(logrus.InfoLevel)

	logger.Info("Recipe search completed", map[string]interface{}{
		"session_id": "abc",
		"results":    12,
	})

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "Recipe search completed", entries[0]["msg"])
	assert.Equal(t, "abc", entries[0]["session_id"])
	assert.Equal(t, float64(12), entries[0]["results"])
}

func TestLogger_RespectsLevel(t *testing.T) {
	logger, buf := newBufferLogger(logrus.WarnLevel)

	logger.Debug("hidden", nil)
	logger.Info("hidden", nil)
	logger.Warn("shown", nil)
	logger.Error("shown", map[string]interface{}{"error": "boom"})

	entries := decodeLines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "warning", entries[0]["level"])
	assert.Equal(t, "error", entries[1]["level"])
}

func TestLogger_With(t *testing.T) {
	logger, buf := newBufferLogger(logrus.InfoLevel)

	child := logger.With(map[string]interface{}{"component": "prefetch"})
	child.Info("started", map[string]interface{}{"workers": 2})

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "prefetch", entries[0]["component"])
	assert.Equal(t, float64(2), entries[0]["workers"])
}

func TestLogger_ErrorWriter(t *testing.T) {
	logger, buf := newBufferLogger(logrus.InfoLevel)

	w := logger.ErrorWriter()
	_, err := w.Write([]byte("http: TLS handshake error\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "TLS handshake error")
	}, time.Second, 10*time.Millisecond)
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, err := New(config.LogConfig{
		Level:      "debug",
		Format:     "text",
		File:       path,
		MaxSizeMB:  1,
		MaxBackups: 1,
	})
	require.NoError(t, err)

	logger.Debug("written to file", map[string]interface{}{"recipe_id": 716429})
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Contains(t, string(data), "recipe_id=716429")
}

func TestLogger_CloseWithoutFile(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NoError(t, logger.Close())
}
