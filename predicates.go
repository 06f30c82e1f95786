package csvq

// KeyEquals matches Rows whose key columns equal the search Key.  The search
// Key's canonical form is computed once here, so the per-row work is one
// canonicalization and a string comparison.
func KeyEquals(keyColumns []string, search Key) Predicate {
	searchKey := Canonical(keyColumns, search)
	return func(row Row) bool {
		return Canonical(keyColumns, row) == searchKey
	}
}

// KeyIn matches Rows whose key columns equal any of the search Keys.
// Duplicate Keys collapse into a single set entry, so a row matching a
// duplicated criterion is still matched exactly once.
func KeyIn(keyColumns []string, searches []Key) Predicate {
	searchSet := make(map[string]struct{}, len(searches))
	for _, search := range searches {
		searchSet[Canonical(keyColumns, search)] = struct{}{}
	}
	return func(row Row) bool {
		_, ok := searchSet[Canonical(keyColumns, row)]
		return ok
	}
}
