package app

import (
	"context"
	"log/slog"
	"time"

	appctx "github.com/MiguelCav2025/sitecav/internal/app/context"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/domain/table"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

var _ ports.ProcessService = (*ProcessService)(nil)

// ProcessService implements ports.ProcessService. Exactly one process row
// is active at a time: Publish deactivates the current ones before
// inserting the new row.
type ProcessService struct {
	repo   ports.Repository[content.ProcessData]
	logger *slog.Logger
	now    func() time.Time
}

// NewProcessService creates a ProcessService.
func NewProcessService(repo ports.Repository[content.ProcessData], logger *slog.Logger) *ProcessService {
	return &ProcessService{repo: repo, logger: discardIfNil(logger), now: time.Now}
}

// Active returns the newest active process data. When there is none, or it
// cannot be read, the built-in default is returned with Fallback set.
func (s *ProcessService) Active(ctx context.Context) ports.ActiveProcess {
	rows, err := s.repo.List(ctx, activeProcessQuery())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch active process data",
			slog.String("operation", "ProcessService.Active"),
			slog.Any("error", err),
		)
	}
	if err != nil || len(rows) == 0 {
		return ports.ActiveProcess{Data: content.DefaultProcessData(), Fallback: true}
	}
	return ports.ActiveProcess{Data: rows[0]}
}

// Publish validates data, deactivates every active row and inserts data as
// the new active row. When the insert fails the deactivated rows are
// activated again.
func (s *ProcessService) Publish(ctx context.Context, data *content.ProcessData) (*content.ProcessData, error) {
	s.logger.InfoContext(ctx, "publishing process data", slog.String("semester", data.Semester))

	if err := data.Validate(); err != nil {
		return nil, err
	}

	next := *data
	next.ID = ""
	next.IsActive = true
	next.UpdatedAt = s.now().UTC()

	rc := appctx.New(ctx)
	var deactivated []content.ProcessData
	var created *content.ProcessData

	steps := []appctx.Step{
		{
			Name: "deactivate process data",
			Do: func(ctx context.Context) error {
				var err error
				deactivated, err = s.repo.Patch(ctx,
					table.Record{colIsActive: false},
					table.Eq(colIsActive, true),
				)
				return err
			},
			Undo: func(ctx context.Context) error {
				for _, p := range deactivated {
					if _, err := s.repo.Patch(ctx,
						table.Record{colIsActive: true},
						table.Eq(table.ColumnID, p.ID),
					); err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			Name: "insert process data",
			Do: func(ctx context.Context) error {
				var err error
				created, err = s.repo.Insert(ctx, &next)
				return err
			},
		},
	}
	for _, step := range steps {
		if err := rc.AddAction(step); err != nil {
			return nil, err
		}
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish process data",
			slog.String("operation", "ProcessService.Publish"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

func activeProcessQuery() table.Query {
	return table.Query{}.
		Where(table.Eq(colIsActive, true)).
		OrderBy(table.Desc(colCreatedAt), table.Desc(colUpdatedAt)).
		WithLimit(1)
}
