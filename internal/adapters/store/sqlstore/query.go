package sqlstore

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/MiguelCav2025/sitecav/internal/domain/table"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ident validates and quotes a table or column name. Names come from code,
// never from request input, but they are spliced into SQL so anything
// outside the identifier alphabet is refused.
func ident(name string) (string, error) {
	if !identPattern.MatchString(name) {
		return "", fmt.Errorf("sqlstore: invalid identifier %q", name)
	}
	return `"` + name + `"`, nil
}

func buildSelect(tbl string, q table.Query) (string, []any, error) {
	from, err := ident(tbl)
	if err != nil {
		return "", nil, err
	}

	columns := "*"
	if len(q.Columns) > 0 {
		quoted := make([]string, len(q.Columns))
		for i, c := range q.Columns {
			if quoted[i], err = ident(c); err != nil {
				return "", nil, err
			}
		}
		columns = strings.Join(quoted, ", ")
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + columns + " FROM " + from)

	where, args, err := whereClause(q.Filters)
	if err != nil {
		return "", nil, err
	}
	sb.WriteString(where)

	if len(q.Orders) > 0 {
		terms := make([]string, len(q.Orders))
		for i, o := range q.Orders {
			col, err := ident(o.Column)
			if err != nil {
				return "", nil, err
			}
			terms[i] = col + " ASC"
			if o.Desc {
				terms[i] = col + " DESC"
			}
			switch o.Nulls {
			case table.NullsFirst:
				terms[i] += " NULLS FIRST"
			case table.NullsLast:
				terms[i] += " NULLS LAST"
			case table.NullsDefault:
			}
		}
		sb.WriteString(" ORDER BY " + strings.Join(terms, ", "))
	}

	if q.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, q.Limit)
	}
	return sb.String(), args, nil
}

// buildInsert renders a single-row INSERT ... RETURNING *. With upsert set,
// a conflict on id merges every other column.
func buildInsert(tbl string, row table.Record, upsert bool) (string, []any, error) {
	into, err := ident(tbl)
	if err != nil {
		return "", nil, err
	}

	names := sortedColumns(row)
	cols := make([]string, len(names))
	marks := make([]string, len(names))
	args := make([]any, len(names))
	var updates []string
	for i, name := range names {
		if cols[i], err = ident(name); err != nil {
			return "", nil, err
		}
		marks[i] = "?"
		args[i] = row[name]
		if name != table.ColumnID {
			updates = append(updates, cols[i]+" = excluded."+cols[i])
		}
	}

	query := "INSERT INTO " + into + " (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(marks, ", ") + ")"
	if upsert {
		if len(updates) == 0 {
			updates = []string{`"id" = excluded."id"`}
		}
		query += ` ON CONFLICT ("id") DO UPDATE SET ` + strings.Join(updates, ", ")
	}
	return query + " RETURNING *", args, nil
}

func buildUpdate(tbl string, patch table.Record, filters []table.Filter) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, errors.New("sqlstore: update without filters")
	}
	if len(patch) == 0 {
		return "", nil, errors.New("sqlstore: empty update")
	}
	target, err := ident(tbl)
	if err != nil {
		return "", nil, err
	}

	names := sortedColumns(patch)
	sets := make([]string, len(names))
	args := make([]any, 0, len(names)+len(filters))
	for i, name := range names {
		col, err := ident(name)
		if err != nil {
			return "", nil, err
		}
		sets[i] = col + " = ?"
		args = append(args, patch[name])
	}

	where, whereArgs, err := whereClause(filters)
	if err != nil {
		return "", nil, err
	}
	args = append(args, whereArgs...)
	return "UPDATE " + target + " SET " + strings.Join(sets, ", ") + where + " RETURNING *", args, nil
}

func buildDelete(tbl string, filters []table.Filter) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, errors.New("sqlstore: delete without filters")
	}
	from, err := ident(tbl)
	if err != nil {
		return "", nil, err
	}
	where, args, err := whereClause(filters)
	if err != nil {
		return "", nil, err
	}
	return "DELETE FROM " + from + where, args, nil
}

// whereClause ANDs the filters; a nil value matches NULL.
func whereClause(filters []table.Filter) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}
	terms := make([]string, len(filters))
	var args []any
	for i, f := range filters {
		col, err := ident(f.Column)
		if err != nil {
			return "", nil, err
		}
		if f.Value == nil {
			terms[i] = col + " IS NULL"
			continue
		}
		terms[i] = col + " = ?"
		args = append(args, f.Value)
	}
	return " WHERE " + strings.Join(terms, " AND "), args, nil
}
