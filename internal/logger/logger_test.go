package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainLoggerWritesCategoryAndMessage(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.Info("database", "connected")
	log.LogAPI("GET", "/venues", 200, 3*time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "[DATABASE  ]")
	assert.Contains(t, out, "connected")
	assert.Contains(t, out, "GET /venues - 200 (3ms)")
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)
	log.SetLevel(WARN)

	log.Debug("APP", "hidden")
	log.Info("APP", "hidden too")
	log.Warn("APP", "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLoggerWritesJSONFile(t *testing.T) {
	dir := t.TempDir()
	log := NewLogger(dir)
	log.colorEnabled = false
	log.terminal = &bytes.Buffer{}

	log.LogListing("CREATE", "venue", 7, "listed")
	log.Close()

	name := filepath.Join(dir, "fyyur-"+time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(name)
	require.NoError(t, err)

	var found bool
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var entry LogEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry.Category == "LISTING" {
			found = true
			assert.Equal(t, "INFO", entry.Level)
			assert.Equal(t, "[CREATE] venue 7 - listed", entry.Message)
		}
	}
	assert.True(t, found)
}

func TestLogDatabaseFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.LogDatabase("CREATE", "venues", "schema ready")

	assert.Contains(t, buf.String(), "[CREATE] venues - schema ready")
}

func TestSetLevelWhileLogging(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			log.Info("APP", "tick")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			log.SetLevel(LogLevel(i % 2))
		}
	}()
	wg.Wait()

	log.SetLevel(INFO)
	log.Info("APP", "done")
	assert.Contains(t, buf.String(), "done")
}
