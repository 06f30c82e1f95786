package query

import "github.com/wtb-skill/csvq"

// selection restricts Rows from the input to those that satisfy the
// specified Predicate.
type selection struct {
	iter csvq.Iterator
	p    csvq.Predicate
}

var _ csvq.Iterator = (*selection)(nil)

func NewSelection(iter csvq.Iterator, p csvq.Predicate) *selection {
	return &selection{
		iter: iter,
		p:    p,
	}
}

func (s *selection) Header() []string {
	return s.iter.Header()
}

func (s *selection) Next() (csvq.Row, error) {
	for {
		row, err := s.iter.Next()
		if err != nil {
			return nil, err
		}
		if s.p(row) {
			return row, nil
		}
	}
}

func (s *selection) Close() error {
	return s.iter.Close()
}
