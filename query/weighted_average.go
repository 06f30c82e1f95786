package query

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wtb-skill/csvq"
)

// Even values count double the weight of odd ones in the average.
const (
	evenWeight = 20
	oddWeight  = 10
)

// WeightedAverage computes the weighted average of the value fields of all
// rows matching any of the search Keys, in a single pass over the data.
// Every Key is validated against the header before any row is read, and
// duplicate Keys are not double-counted.  Returns csvq.NoMatch when no row
// matches; a matched row whose value field isn't an integer aborts the scan
// with a *csvq.ValueFormatError.
func WeightedAverage(searches []csvq.Key, r io.Reader) (string, error) {
	scan, err := csvq.NewScan(r)
	if err != nil {
		return "", err
	}
	defer scan.Close()
	keyColumns := csvq.KeyColumns(scan.Header())
	for _, search := range searches {
		err = csvq.ValidateKey(search, keyColumns)
		if err != nil {
			return "", err
		}
	}
	iter := NewSelection(scan, csvq.KeyIn(keyColumns, searches))
	var totalWeightedSum, totalWeight int
	for {
		row, err := iter.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", err
		}
		value, err := strconv.Atoi(row[csvq.ValueColumn])
		if err != nil {
			return "", &csvq.ValueFormatError{
				Value: row[csvq.ValueColumn],
				Err:   err,
			}
		}
		weight := oddWeight
		if value%2 == 0 {
			weight = evenWeight
		}
		totalWeightedSum += value * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return csvq.NoMatch, nil
	}
	average := float64(totalWeightedSum) / float64(totalWeight)
	return fmt.Sprintf("%.1f", average), nil
}

// WeightedAverageString runs WeightedAverage over in-memory csv text.
func WeightedAverageString(searches []csvq.Key, data string) (string, error) {
	return WeightedAverage(searches, strings.NewReader(data))
}
