package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/config"
	"fyyur/internal/db"
	"fyyur/internal/logger"
)

func useConfig(t *testing.T, url string) {
	t.Helper()
	cfg = &config.Config{
		Database: config.DatabaseConfig{URL: url, RetryDelay: time.Millisecond},
		App:      config.AppConfig{Locale: "en_US", BaseURL: "http://fyyur.test"},
	}
	log = logger.Discard()
	t.Cleanup(func() {
		cfg = nil
		log = nil
	})
}

func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func TestSeedCmdPopulatesSQLite(t *testing.T) {
	url := "file:" + filepath.Join(t.TempDir(), "fyyur.db")
	useConfig(t, url)

	require.NoError(t, runSeed(testCommand(), nil))
	// second run leaves the data alone
	require.NoError(t, runSeed(testCommand(), nil))

	store, err := db.Connect(context.Background(), cfg.Database, log)
	require.NoError(t, err)
	defer store.Close()

	counts, err := store.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, db.Counts{Venues: 3, Artists: 3, Shows: 5}, counts)
}

func TestMigrateRejectsSQLite(t *testing.T) {
	useConfig(t, ":memory:")

	err := migrateVersionCmd.RunE(testCommand(), nil)
	assert.ErrorIs(t, err, errNotPostgres)
}

func TestMigrateToRejectsBadVersion(t *testing.T) {
	useConfig(t, ":memory:")

	err := migrateToCmd.RunE(testCommand(), []string{"latest"})
	assert.ErrorContains(t, err, `invalid version "latest"`)
}

func TestBuildAppServesHealthAndHome(t *testing.T) {
	useConfig(t, ":memory:")

	a, err := buildApp(context.Background())
	require.NoError(t, err)
	defer a.Close()

	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	a.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestBuildAppFallsBackWhenRedisIsDown(t *testing.T) {
	useConfig(t, ":memory:")
	cfg.Redis.Addr = "127.0.0.1:1"

	a, err := buildApp(context.Background())
	require.NoError(t, err)
	defer a.Close()
	assert.Nil(t, a.redis)
}

func TestRootRegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["seed"])
}
