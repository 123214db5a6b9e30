// Package table holds the vocabulary of the hosted table API: rows as loosely
// typed records, equality filters, ordering and limits. Adapters translate it
// to PostgREST query strings or SQL; the ACL codecs translate records to
// domain entities.
package table

import (
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"
)

// Record is a single row keyed by column name. Values arrive in whatever
// shape the backend produced (JSON numbers, driver integers, byte slices,
// timestamps), so reads go through the typed accessors below.
type Record map[string]any

// ColumnID is the primary key column shared by every table.
const ColumnID = "id"

// timeLayouts are tried in order when a timestamp arrives as text.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ID returns the row identifier as a string.
func (r Record) ID() string {
	return r.String(ColumnID)
}

// Has reports whether the column is present and non-null.
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// String returns the column as a string. Missing and null values yield "".
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case [16]byte:
		return formatUUID(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// StringPtr returns nil for missing or null columns.
func (r Record) StringPtr(key string) *string {
	if !r.Has(key) {
		return nil
	}
	s := r.String(key)
	return &s
}

// Int64 returns the column as an int64. Unparseable values yield 0.
func (r Record) Int64(key string) int64 {
	n, _ := toInt64(r[key])
	return n
}

// Int returns the column as an int.
func (r Record) Int(key string) int {
	return int(r.Int64(key))
}

// IntPtr returns nil for missing, null or unparseable columns.
func (r Record) IntPtr(key string) *int {
	n, ok := toInt64(r[key])
	if !ok {
		return nil
	}
	i := int(n)
	return &i
}

// Bool returns the column as a bool. SQLite integers and textual booleans
// are accepted.
func (r Record) Bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	case []byte:
		b, _ := strconv.ParseBool(string(v))
		return b
	default:
		n, ok := toInt64(v)
		return ok && n != 0
	}
}

// Time returns the column as a time.Time. Unparseable values yield the zero time.
func (r Record) Time(key string) time.Time {
	switch v := r[key].(type) {
	case time.Time:
		return v
	case string:
		return parseTime(v)
	case []byte:
		return parseTime(string(v))
	default:
		return time.Time{}
	}
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	return maps.Clone(r)
}

// Without returns a copy of the record minus the given columns.
func (r Record) Without(keys ...string) Record {
	out := r.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float32:
		return int64(n), true
	case float64:
		return int64(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		return int64(f), err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	case []byte:
		i, err := strconv.ParseInt(strings.TrimSpace(string(n)), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func formatUUID(b [16]byte) string {
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
