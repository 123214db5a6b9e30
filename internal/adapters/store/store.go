// Package store opens the table store and object storage selected by
// configuration.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MiguelCav2025/sitecav/internal/adapters/clients/acl"
	"github.com/MiguelCav2025/sitecav/internal/adapters/store/memstorage"
	"github.com/MiguelCav2025/sitecav/internal/adapters/store/memstore"
	"github.com/MiguelCav2025/sitecav/internal/adapters/store/s3store"
	"github.com/MiguelCav2025/sitecav/internal/adapters/store/sqlstore"
	"github.com/MiguelCav2025/sitecav/internal/platform/config"
	"github.com/MiguelCav2025/sitecav/internal/platform/httpclient"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

// Tables is an opened table store. Health is nil when the backend has no
// check of its own.
type Tables struct {
	Store  ports.TableStore
	Health ports.HealthChecker
	close  func() error
}

// Close releases the store's resources.
func (t *Tables) Close() error {
	if t.close == nil {
		return nil
	}
	return t.close()
}

// OpenTables opens the table store named by cfg.Driver. hosted is only used
// by the hosted driver.
func OpenTables(ctx context.Context, cfg config.BackendConfig, hosted *httpclient.Client, logger *slog.Logger) (*Tables, error) {
	switch cfg.Driver {
	case config.DriverHosted:
		p := acl.NewPostgREST(hosted, logger)
		return &Tables{Store: p, Health: p}, nil
	case config.DriverSQL:
		s, err := sqlstore.Open(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		return &Tables{Store: s, Health: s, close: s.Close}, nil
	case config.DriverMemory:
		return &Tables{Store: memstore.New()}, nil
	default:
		return nil, fmt.Errorf("unknown backend driver %q", cfg.Driver)
	}
}

// Objects is an opened object storage. Files is set for the in-memory
// driver, which serves its own objects.
type Objects struct {
	Storage ports.ObjectStorage
	Files   *memstorage.Storage
}

// OpenObjects opens the object storage named by cfg.Driver. filesURL is the
// public base URL of the in-memory driver's file server.
func OpenObjects(ctx context.Context, cfg config.StorageConfig, hosted *httpclient.Client, filesURL string, logger *slog.Logger) (*Objects, error) {
	switch cfg.Driver {
	case config.DriverHosted:
		return &Objects{Storage: acl.NewStorage(hosted, logger)}, nil
	case config.DriverS3:
		s, err := s3store.Open(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return &Objects{Storage: s}, nil
	case config.DriverMemory:
		m := memstorage.New(filesURL)
		return &Objects{Storage: m, Files: m}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
