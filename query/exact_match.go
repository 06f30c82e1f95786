package query

import (
	"io"
	"strings"

	"github.com/wtb-skill/csvq"
)

// ExactMatch scans the data for the first row whose key columns equal the
// search Key and returns that row's value field.  Row order decides the
// winner when duplicate keys exist; the scan stops at the first match.
// Returns csvq.NoMatch when no row matches.
func ExactMatch(search csvq.Key, r io.Reader) (string, error) {
	scan, err := csvq.NewScan(r)
	if err != nil {
		return "", err
	}
	defer scan.Close()
	keyColumns := csvq.KeyColumns(scan.Header())
	err = csvq.ValidateKey(search, keyColumns)
	if err != nil {
		return "", err
	}
	iter := NewLimit(
		NewSelection(scan, csvq.KeyEquals(keyColumns, search)),
		1)
	row, err := iter.Next()
	if err == io.EOF {
		return csvq.NoMatch, nil
	} else if err != nil {
		return "", err
	}
	return row[csvq.ValueColumn], nil
}

// ExactMatchString runs ExactMatch over in-memory csv text.
func ExactMatchString(search csvq.Key, data string) (string, error) {
	return ExactMatch(search, strings.NewReader(data))
}
