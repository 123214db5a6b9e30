package table

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRecord_Accessors(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 5, 19, 12, 0, 0, 0, time.UTC)
	r := Record{
		"id":             "p1",
		"title":          "Mostra",
		"order_position": float64(2),
		"file_size":      json.Number("2048"),
		"is_active":      "true",
		"featured_order": nil,
		"created_at":     "2025-05-19T12:00:00+00:00",
		"raw":            []byte("bytes"),
		"at":             created,
	}

	if got := r.ID(); got != "p1" {
		t.Errorf("ID() = %q", got)
	}
	if got := r.String("title"); got != "Mostra" {
		t.Errorf("String(title) = %q", got)
	}
	if got := r.String("missing"); got != "" {
		t.Errorf("String(missing) = %q, want empty", got)
	}
	if got := r.String("raw"); got != "bytes" {
		t.Errorf("String(raw) = %q", got)
	}
	if got := r.Int("order_position"); got != 2 {
		t.Errorf("Int(order_position) = %d", got)
	}
	if got := r.Int64("file_size"); got != 2048 {
		t.Errorf("Int64(file_size) = %d", got)
	}
	if !r.Bool("is_active") {
		t.Error("Bool(is_active) = false")
	}
	if got := r.IntPtr("featured_order"); got != nil {
		t.Errorf("IntPtr(featured_order) = %v, want nil", *got)
	}
	if got := r.StringPtr("featured_order"); got != nil {
		t.Errorf("StringPtr(featured_order) = %v, want nil", *got)
	}
	if got := r.Time("created_at"); !got.Equal(created) {
		t.Errorf("Time(created_at) = %v, want %v", got, created)
	}
	if got := r.Time("at"); !got.Equal(created) {
		t.Errorf("Time(at) = %v, want %v", got, created)
	}
	if !r.Has("featured_order") || r.Has("nope") {
		t.Error("Has() mismatch")
	}
}

func TestRecord_CloneAndWithout(t *testing.T) {
	t.Parallel()

	r := Record{"id": "1", "title": "a", "created_at": "x"}
	c := r.Clone()
	c["title"] = "b"
	if r["title"] != "a" {
		t.Error("Clone shares storage with original")
	}

	w := r.Without("id", "created_at")
	if len(w) != 1 || w["title"] != "a" {
		t.Errorf("Without() = %v", w)
	}
	if len(r) != 3 {
		t.Error("Without modified the receiver")
	}
}

func TestQuery_BuildersCopy(t *testing.T) {
	t.Parallel()

	base := Query{}.OrderBy(Asc("created_at"))
	active := base.Where(Eq("is_active", true)).WithLimit(12)

	if len(base.Filters) != 0 || base.Limit != 0 {
		t.Errorf("builders mutated base query: %+v", base)
	}
	if len(active.Filters) != 1 || active.Filters[0].Column != "is_active" {
		t.Errorf("Filters = %+v", active.Filters)
	}
	if active.Limit != 12 {
		t.Errorf("Limit = %d", active.Limit)
	}

	o := Desc("featured_order").NullsLast()
	if !o.Desc || o.Nulls != NullsLast {
		t.Errorf("Order = %+v", o)
	}
}
