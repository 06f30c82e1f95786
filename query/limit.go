package query

import (
	"io"

	"github.com/wtb-skill/csvq"
)

// limit sets an upper bound on the number of Rows that can be read from the
// input Iterator.
type limit struct {
	iter        csvq.Iterator
	header      []string
	maxRows     int
	numRowsRead int
}

var _ csvq.Iterator = (*limit)(nil)

func NewLimit(iter csvq.Iterator, maxRows int) *limit {
	return &limit{
		iter:    iter,
		header:  iter.Header(),
		maxRows: maxRows,
	}
}

func (l *limit) Header() []string {
	return l.header
}

func (l *limit) Next() (csvq.Row, error) {
	if l.numRowsRead == l.maxRows {
		return nil, io.EOF
	} else {
		r, err := l.iter.Next()
		if err != nil {
			return nil, err
		}
		l.numRowsRead++
		return r, nil
	}
}

func (l *limit) Close() error {
	return l.iter.Close()
}
