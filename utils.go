package csvq

import (
	"io"
)

func ReadAll(iter Iterator) ([]Row, error) {
	var rows []Row
	for {
		row, err := iter.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		} else {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, io.EOF
	} else {
		return rows, nil
	}
}
