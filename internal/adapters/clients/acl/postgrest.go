package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MiguelCav2025/sitecav/internal/domain/table"
	"github.com/MiguelCav2025/sitecav/internal/platform/httpclient"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TableStore    = (*PostgREST)(nil)
	_ ports.HealthChecker = (*PostgREST)(nil)
)

const restPrefix = "/rest/v1/"

// PostgREST is the outbound adapter for the hosted backend's table API. It
// implements [ports.TableStore] by translating [table.Query] values into
// PostgREST query strings:
//
//	GET /rest/v1/photo_gallery?select=*&order=gallery_order.asc.nullslast&limit=12
//
// Writes ask for the affected rows back with "Prefer: return=representation".
// A bulk upsert is one POST, which PostgREST runs as a single statement.
type PostgREST struct {
	req    *Requester
	logger *slog.Logger
}

// NewPostgREST creates a table client. The client's BaseURL should be the
// project URL (e.g. "https://xyz.supabase.co") and should carry the apikey
// header (see httpclient.WithHeader).
func NewPostgREST(client *httpclient.Client, logger *slog.Logger) *PostgREST {
	return &PostgREST{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// Select fetches the rows of tbl matching q.
func (p *PostgREST) Select(ctx context.Context, tbl string, q table.Query) ([]table.Record, error) {
	query := filterQuery(q.Filters)

	columns := "*"
	if len(q.Columns) > 0 {
		columns = strings.Join(q.Columns, ",")
	}
	query.Set("select", columns)

	if len(q.Orders) > 0 {
		query.Set("order", orderParam(q.Orders))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}

	var rows []table.Record
	err := p.req.Send(ctx, Request{
		Method: http.MethodGet,
		Path:   restPrefix + url.PathEscape(tbl),
		Query:  query,
	}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Insert posts rows and returns them as stored.
func (p *PostgREST) Insert(ctx context.Context, tbl string, rows ...table.Record) ([]table.Record, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	var out []table.Record
	err := p.req.Send(ctx, Request{
		Method:     http.MethodPost,
		Path:       restPrefix + url.PathEscape(tbl),
		Header:     http.Header{"Prefer": []string{"return=representation"}},
		Body:       rows,
		WantStatus: []int{http.StatusCreated, http.StatusOK},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update patches the rows matching filters.
func (p *PostgREST) Update(
	ctx context.Context, tbl string, patch table.Record, filters ...table.Filter,
) ([]table.Record, error) {
	if len(filters) == 0 {
		return nil, errors.New("postgrest: update without filters")
	}

	var out []table.Record
	err := p.req.Send(ctx, Request{
		Method:     http.MethodPatch,
		Path:       restPrefix + url.PathEscape(tbl),
		Query:      filterQuery(filters),
		Header:     http.Header{"Prefer": []string{"return=representation"}},
		Body:       patch,
		WantStatus: []int{http.StatusOK},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert posts rows with merge-duplicates resolution on the primary key.
// Every row must carry the same set of columns, a PostgREST requirement for
// bulk payloads.
func (p *PostgREST) Upsert(ctx context.Context, tbl string, rows []table.Record) ([]table.Record, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	var out []table.Record
	err := p.req.Send(ctx, Request{
		Method:     http.MethodPost,
		Path:       restPrefix + url.PathEscape(tbl),
		Query:      url.Values{"on_conflict": []string{table.ColumnID}},
		Header:     http.Header{"Prefer": []string{"resolution=merge-duplicates,return=representation"}},
		Body:       rows,
		WantStatus: []int{http.StatusCreated, http.StatusOK},
		Replayable: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the rows matching filters.
func (p *PostgREST) Delete(ctx context.Context, tbl string, filters ...table.Filter) error {
	if len(filters) == 0 {
		return errors.New("postgrest: delete without filters")
	}

	return p.req.Send(ctx, Request{
		Method:     http.MethodDelete,
		Path:       restPrefix + url.PathEscape(tbl),
		Query:      filterQuery(filters),
		WantStatus: []int{http.StatusNoContent, http.StatusOK},
	}, nil)
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (p *PostgREST) Name() string {
	return p.req.Client().Name()
}

// HealthCheck reports the backend's availability based on the circuit
// breaker state; no network call is made.
func (p *PostgREST) HealthCheck(ctx context.Context) error {
	return p.req.Client().HealthCheck(ctx)
}

// filterQuery renders equality filters as PostgREST operators.
func filterQuery(filters []table.Filter) url.Values {
	query := url.Values{}
	for _, f := range filters {
		if f.Value == nil {
			query.Add(f.Column, "is.null")
			continue
		}
		query.Add(f.Column, "eq."+formatValue(f.Value))
	}
	return query
}

// orderParam renders ordering terms, e.g. "is_featured.desc,featured_order.asc.nullslast".
func orderParam(orders []table.Order) string {
	parts := make([]string, len(orders))
	for i, o := range orders {
		part := o.Column + ".asc"
		if o.Desc {
			part = o.Column + ".desc"
		}
		switch o.Nulls {
		case table.NullsFirst:
			part += ".nullsfirst"
		case table.NullsLast:
			part += ".nullslast"
		case table.NullsDefault:
		}
		parts[i] = part
	}
	return strings.Join(parts, ",")
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.UTC().Format(time.RFC3339Nano)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
