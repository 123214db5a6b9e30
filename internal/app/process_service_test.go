package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MiguelCav2025/sitecav/internal/adapters/clients/acl/records"
	"github.com/MiguelCav2025/sitecav/internal/adapters/repository"
	"github.com/MiguelCav2025/sitecav/internal/adapters/store/memstore"
	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/domain/table"
	"github.com/MiguelCav2025/sitecav/mocks"
)

func validProcess(semester string) *content.ProcessData {
	return &content.ProcessData{
		InscriptionStartDate: "01 de Junho de 2026",
		InscriptionEndDate:   "15 de Junho de 2026",
		Semester:             semester,
		ExamDate:             "04/07/2026 – Sábado",
		ExamTime:             "09h00 as 12h00",
		ExamLocation:         "Teatro Lauro Gomes",
		ResultDate:           "14/07/2026",
		InscriptionLink:      "https://forms.test/inscricao",
	}
}

func TestProcessService_ActiveFallsBackWhenEmpty(t *testing.T) {
	t.Parallel()
	svc := NewProcessService(repository.New(memstore.New(), records.ProcessData), nil)

	got := svc.Active(context.Background())

	assert.True(t, got.Fallback)
	assert.Equal(t, content.DefaultProcessData(), got.Data)
}

func TestProcessService_ActiveFallsBackOnError(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockRepository[content.ProcessData](t)
	repo.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, &domain.FetchError{Resource: "process_data", Err: domain.ErrUnavailable})
	svc := NewProcessService(repo, discardLogger())

	got := svc.Active(context.Background())

	assert.True(t, got.Fallback)
	assert.Equal(t, "2º. Semestre de 2025", got.Data.Semester)
}

func TestProcessService_PublishReplacesActive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memstore.New()
	repo := repository.New(store, records.ProcessData)
	svc := NewProcessService(repo, discardLogger())
	svc.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }

	first, err := svc.Publish(ctx, validProcess("1º. Semestre de 2026"))
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	second, err := svc.Publish(ctx, validProcess("2º. Semestre de 2026"))
	require.NoError(t, err)

	active, err := repo.List(ctx, table.Query{}.Where(table.Eq(colIsActive, true)))
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	got := svc.Active(ctx)
	assert.False(t, got.Fallback)
	assert.Equal(t, "2º. Semestre de 2026", got.Data.Semester)
	assert.Equal(t, 2, store.Len("process_data"))
}

func TestProcessService_PublishValidates(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockRepository[content.ProcessData](t)
	svc := NewProcessService(repo, discardLogger())

	p := validProcess("x")
	p.InscriptionLink = "not a url"
	p.ExamLocation = ""

	_, err := svc.Publish(context.Background(), p)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "inscription_link")
	assert.Contains(t, verr.Fields, "exam_location")
}

func TestProcessService_PublishFailureReactivates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := mocks.NewMockRepository[content.ProcessData](t)
	repo.EXPECT().Patch(mock.Anything, table.Record{colIsActive: false}, table.Eq(colIsActive, true)).
		Return([]content.ProcessData{{ID: "p1"}, {ID: "p2"}}, nil).Once()
	repo.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(nil, &domain.WriteError{Resource: "process_data", Op: domain.OpInsert, Err: errors.New("boom")}).Once()
	repo.EXPECT().Patch(mock.Anything, table.Record{colIsActive: true}, table.Eq(table.ColumnID, "p1")).
		Return(nil, nil).Once()
	repo.EXPECT().Patch(mock.Anything, table.Record{colIsActive: true}, table.Eq(table.ColumnID, "p2")).
		Return(nil, nil).Once()

	svc := NewProcessService(repo, discardLogger())
	_, err := svc.Publish(ctx, validProcess("x"))

	var writeErr *domain.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, domain.OpInsert, writeErr.Op)
}
