package csvq

import (
	"io"
)

type inMemoryScan struct {
	header []string
	rows   []Row
}

var _ Iterator = (*inMemoryScan)(nil)

func NewInMemoryScan(header []string, rows []Row) *inMemoryScan {
	return &inMemoryScan{
		header: header,
		rows:   rows,
	}
}

func (m *inMemoryScan) Header() []string {
	return m.header
}

func (m *inMemoryScan) Next() (Row, error) {
	if len(m.rows) == 0 {
		return nil, io.EOF
	}
	r := m.rows[0]
	m.rows = m.rows[1:]
	return r, nil
}

func (m *inMemoryScan) Close() error {
	m.rows = nil
	return nil
}
