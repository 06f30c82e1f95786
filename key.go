package csvq

import (
	"fmt"
	"sort"
	"strings"
)

// KeyColumns returns the header's columns minus ValueColumn, sorted by name.
// The sorted order is what makes canonical forms comparable across Keys and
// Rows regardless of map iteration order.
func KeyColumns(header []string) []string {
	columns := make([]string, 0, len(header))
	for _, column := range header {
		if column != ValueColumn {
			columns = append(columns, column)
		}
	}
	sort.Strings(columns)
	return columns
}

// Canonical encodes the mapping's values for the given columns into a single
// string, in column order.  Callers pass the sorted result of KeyColumns, so
// two mappings with equal content always canonicalize identically.  Each
// value is length-prefixed, which keeps the encoding injective for arbitrary
// field text; the result is usable directly as a map key for set membership.
func Canonical(columns []string, m map[string]string) string {
	var b strings.Builder
	for _, column := range columns {
		value := m[column]
		fmt.Fprintf(&b, "%d:%s", len(value), value)
	}
	return b.String()
}

// ValidateKey checks that the Key's column set exactly equals keyColumns.
// Returns a *KeyMismatchError on any difference; a Key with a missing,
// extra, or misnamed column never partially matches.
func ValidateKey(k Key, keyColumns []string) error {
	mismatch := len(k) != len(keyColumns)
	if !mismatch {
		for _, column := range keyColumns {
			if _, ok := k[column]; !ok {
				mismatch = true
				break
			}
		}
	}
	if !mismatch {
		return nil
	}
	actual := make([]string, 0, len(k))
	for column := range k {
		actual = append(actual, column)
	}
	sort.Strings(actual)
	return &KeyMismatchError{
		Expected: keyColumns,
		Actual:   actual,
	}
}
