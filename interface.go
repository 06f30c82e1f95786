package csvq

// ValueColumn is the reserved column holding a row's value; it never
// participates in key matching.
const ValueColumn = "value"

// NoMatch is returned by queries when no row matches the search criteria.
// It is a result, not an error.
const NoMatch = "-1"

// Row maps column names to field values for a single data row.  Values are
// kept as text; queries that need numbers parse them on demand.
type Row map[string]string

// Key maps non-value column names to the values a row must have in order to
// match.  Invariant: a valid Key's column set equals the data's header minus
// ValueColumn.
type Key map[string]string

func (r1 Row) Equals(r2 Row) bool {
	if len(r1) != len(r2) {
		return false
	}
	for column, v1 := range r1 {
		v2, ok := r2[column]
		if !ok || v1 != v2 {
			return false
		}
	}
	return true
}

type Predicate func(Row) bool

// Iterator yields the Rows of a data source one at a time.  Next returns
// io.EOF once the source is exhausted (and keeps returning it on subsequent
// calls); the sequence is forward-only and not restartable.
type Iterator interface {
	Header() []string
	Next() (Row, error)
	Close() error
}
