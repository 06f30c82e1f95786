package csvq

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/dropbox/godropbox/errors"
)

// scan streams Rows out of csv-formatted text.  The header line is consumed
// eagerly in the constructor; data rows are read one at a time, so memory
// stays proportional to a single row.  Reading advances the caller-supplied
// reader, so a scan is single-use.
type scan struct {
	r      *csv.Reader
	header []string
	closed bool
	c      io.Closer
}

var _ Iterator = (*scan)(nil)

// NewScan reads the header line from r and returns an Iterator over the
// remaining rows.  Fails with ErrMissingHeader when r has no content.  If r
// implements io.Closer, Close closes it.
func NewScan(r io.Reader) (*scan, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	} else if err != nil {
		return nil, errors.Wrap(err, "reading csv header")
	}
	c, _ := r.(io.Closer)
	return &scan{
		r:      cr,
		header: header,
		c:      c,
	}, nil
}

// NewStringScan wraps in-memory csv text in a reader and scans it.
func NewStringScan(data string) (*scan, error) {
	return NewScan(strings.NewReader(data))
}

func (s *scan) Header() []string {
	return s.header
}

func (s *scan) Next() (Row, error) {
	fields, err := s.r.Read()
	if err == io.EOF {
		return nil, io.EOF
	} else if err != nil {
		return nil, errors.Wrap(err, "reading csv row")
	}
	row := make(Row, len(s.header))
	for i, column := range s.header {
		row[column] = fields[i]
	}
	return row, nil
}

func (s *scan) Close() error {
	if s.closed || s.c == nil {
		return nil
	}
	defer func() {
		s.closed = true
	}()
	return s.c.Close()
}
