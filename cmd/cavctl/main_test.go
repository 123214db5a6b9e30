package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiguelCav2025/sitecav/internal/adapters/store/sqlstore"
	"github.com/MiguelCav2025/sitecav/internal/platform/config"
)

type fakeMigrator struct {
	applied    int
	rolledBack bool
	statuses   []sqlstore.MigrationStatus
	err        error
}

func (f *fakeMigrator) Migrate(context.Context) (int, error) {
	return f.applied, f.err
}

func (f *fakeMigrator) Rollback(context.Context) error {
	f.rolledBack = f.err == nil
	return f.err
}

func (f *fakeMigrator) Status(context.Context) ([]sqlstore.MigrationStatus, error) {
	return f.statuses, f.err
}

func TestRunMigration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		action  string
		m       *fakeMigrator
		want    []string
		wantErr bool
	}{
		{
			name:   "up",
			action: "up",
			m:      &fakeMigrator{applied: 2},
			want:   []string{"applied 2 migration(s)"},
		},
		{
			name:   "down",
			action: "down",
			m:      &fakeMigrator{},
			want:   []string{"rolled back 1 migration"},
		},
		{
			name:   "status",
			action: "status",
			m: &fakeMigrator{statuses: []sqlstore.MigrationStatus{
				{Version: 1, Path: "00001_content.sql", Applied: true},
				{Version: 2, Path: "00002_process.sql"},
			}},
			want: []string{"VERSION", "applied", "00001_content.sql", "pending", "00002_process.sql"},
		},
		{
			name:    "failure",
			action:  "up",
			m:       &fakeMigrator{err: errors.New("locked")},
			wantErr: true,
		},
		{
			name:    "unknown action",
			action:  "redo",
			m:       &fakeMigrator{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer

			err := runMigration(context.Background(), tt.m, tt.action, &out)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestRunMigration_DownCallsRollback(t *testing.T) {
	t.Parallel()
	m := &fakeMigrator{}

	require.NoError(t, runMigration(context.Background(), m, "down", &bytes.Buffer{}))

	assert.True(t, m.rolledBack)
}

func TestMigrate_RequiresSQLBackend(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{Backend: config.BackendConfig{Driver: config.DriverHosted}}

	err := migrate(context.Background(), cfg, "up", &bytes.Buffer{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `backend.driver "sql"`)
}

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: nil},
		{name: "missing argument", args: []string{"migrate"}},
		{name: "unknown flag", args: []string{"-verbose", "migrate", "up"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stderr bytes.Buffer

			err := run(context.Background(), tt.args, nil, &bytes.Buffer{}, &stderr)

			require.ErrorIs(t, err, errUsage)
			assert.Contains(t, stderr.String(), "usage: cavctl")
		})
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()
	var stderr bytes.Buffer

	err := run(context.Background(), []string{"-h"}, nil, &bytes.Buffer{}, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "order gallery")
}
