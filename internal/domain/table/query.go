package table

// Filter is an equality predicate: Column = Value.
type Filter struct {
	Column string
	Value  any
}

// Eq builds an equality filter.
func Eq(column string, value any) Filter {
	return Filter{Column: column, Value: value}
}

// Nulls controls where null values sort.
type Nulls int

// Null placement options. NullsDefault leaves placement to the backend.
const (
	NullsDefault Nulls = iota
	NullsFirst
	NullsLast
)

// Order is a single ordering term.
type Order struct {
	Column string
	Desc   bool
	Nulls  Nulls
}

// Asc orders by column ascending.
func Asc(column string) Order {
	return Order{Column: column}
}

// Desc orders by column descending.
func Desc(column string) Order {
	return Order{Column: column, Desc: true}
}

// NullsLast returns a copy of o that sorts nulls after non-null values.
func (o Order) NullsLast() Order {
	o.Nulls = NullsLast
	return o
}

// NullsFirst returns a copy of o that sorts nulls before non-null values.
func (o Order) NullsFirst() Order {
	o.Nulls = NullsFirst
	return o
}

// Query describes a select: which columns, equality filters (ANDed),
// ordering terms in priority order, and an optional row limit (0 = none).
// A zero Query selects every column of every row.
type Query struct {
	Columns []string
	Filters []Filter
	Orders  []Order
	Limit   int
}

// Where returns a copy of q with the filters appended.
func (q Query) Where(filters ...Filter) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), filters...)
	return q
}

// OrderBy returns a copy of q with the ordering terms appended.
func (q Query) OrderBy(orders ...Order) Query {
	q.Orders = append(append([]Order(nil), q.Orders...), orders...)
	return q
}

// WithLimit returns a copy of q limited to n rows.
func (q Query) WithLimit(n int) Query {
	q.Limit = n
	return q
}

// Select returns a copy of q restricted to the given columns.
func (q Query) Select(columns ...string) Query {
	q.Columns = append([]string(nil), columns...)
	return q
}
