package store_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiguelCav2025/sitecav/internal/adapters/store"
	"github.com/MiguelCav2025/sitecav/internal/domain/table"
	"github.com/MiguelCav2025/sitecav/internal/platform/config"
	"github.com/MiguelCav2025/sitecav/internal/platform/httpclient"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func hostedClient() *httpclient.Client {
	cfg := &config.ClientConfig{
		BaseURL: "http://backend.test",
		Timeout: time.Second,
		Retry:   config.RetryConfig{MaxAttempts: 1, Multiplier: 1},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures: 1,
		},
	}
	return httpclient.New(cfg, "backend", nil, discardLogger())
}

func TestOpenTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cfg        config.BackendConfig
		wantHealth bool
	}{
		{name: "hosted", cfg: config.BackendConfig{Driver: config.DriverHosted}, wantHealth: true},
		{name: "memory", cfg: config.BackendConfig{Driver: config.DriverMemory}},
		{
			name: "sql",
			cfg: config.BackendConfig{
				Driver: config.DriverSQL,
				Database: config.DatabaseConfig{
					Driver:       "sqlite",
					DSN:          "file::memory:?_pragma=foreign_keys(1)",
					MaxOpenConns: 1,
					Migrate:      true,
				},
			},
			wantHealth: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tables, err := store.OpenTables(context.Background(), tt.cfg, hostedClient(), discardLogger())
			require.NoError(t, err)
			t.Cleanup(func() { _ = tables.Close() })

			require.NotNil(t, tables.Store)
			assert.Equal(t, tt.wantHealth, tables.Health != nil)
		})
	}
}

func TestOpenTables_SQLIsMigrated(t *testing.T) {
	t.Parallel()

	tables, err := store.OpenTables(context.Background(), config.BackendConfig{
		Driver: config.DriverSQL,
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			DSN:          "file::memory:?_pragma=foreign_keys(1)",
			MaxOpenConns: 1,
			Migrate:      true,
		},
	}, nil, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = tables.Close() })

	rows, err := tables.Store.Select(context.Background(), "banners", table.Query{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestOpenTables_UnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := store.OpenTables(context.Background(), config.BackendConfig{Driver: "mongo"}, nil, discardLogger())
	require.Error(t, err)
}

func TestOpenObjects_Memory(t *testing.T) {
	t.Parallel()

	objects, err := store.OpenObjects(context.Background(),
		config.StorageConfig{Driver: config.DriverMemory}, nil, "http://localhost:8080/files", discardLogger())
	require.NoError(t, err)
	require.NotNil(t, objects.Files)

	path, err := objects.Storage.Upload(context.Background(), "site-assets", "banners/a.jpg",
		bytes.NewReader([]byte("jpg")), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/site-assets/banners/a.jpg",
		objects.Storage.PublicURL("site-assets", path))
}

func TestOpenObjects_Hosted(t *testing.T) {
	t.Parallel()

	objects, err := store.OpenObjects(context.Background(),
		config.StorageConfig{Driver: config.DriverHosted}, hostedClient(), "", discardLogger())
	require.NoError(t, err)
	assert.Nil(t, objects.Files)
	assert.NotNil(t, objects.Storage)
}

func TestOpenObjects_UnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := store.OpenObjects(context.Background(), config.StorageConfig{Driver: "ftp"}, nil, "", discardLogger())
	require.Error(t, err)
}
