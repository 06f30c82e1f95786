package query

import (
	. "gopkg.in/check.v1"

	"github.com/wtb-skill/csvq"
)

type ExactMatchSuite struct{}

var _ = Suite(&ExactMatchSuite{})

func (s *ExactMatchSuite) TestMatch(c *C) {
	csvData := "id,value\n1,10"
	result, err := ExactMatchString(csvq.Key{"id": "1"}, csvData)
	c.Assert(err, IsNil)
	c.Assert(result, Equals, "10")
}

func (s *ExactMatchSuite) TestNoMatch(c *C) {
	csvData := "id,value\n1,10"
	result, err := ExactMatchString(csvq.Key{"id": "2"}, csvData)
	c.Assert(err, IsNil)
	c.Assert(result, Equals, csvq.NoMatch)
}

func (s *ExactMatchSuite) TestFirstMatchWins(c *C) {
	// Row order in the source decides the winner among duplicates.
	csvData := "id,value\n1,10\n1,20\n1,30"
	result, err := ExactMatchString(csvq.Key{"id": "1"}, csvData)
	c.Assert(err, IsNil)
	c.Assert(result, Equals, "10")
}

func (s *ExactMatchSuite) TestMultipleKeyColumns(c *C) {
	csvData := `country,currency,value
PL,PLN,100
DE,EUR,200
PL,EUR,300`
	result, err := ExactMatchString(
		csvq.Key{"currency": "EUR", "country": "PL"},
		csvData)
	c.Assert(err, IsNil)
	c.Assert(result, Equals, "300")
}

func (s *ExactMatchSuite) TestKeyMismatch(c *C) {
	csvData := "id,value\n1,10"
	// Extra column.
	_, err := ExactMatchString(csvq.Key{"id": "1", "name": "x"}, csvData)
	c.Assert(err, FitsTypeOf, &csvq.KeyMismatchError{})
	// Missing column.
	_, err = ExactMatchString(csvq.Key{}, csvData)
	c.Assert(err, FitsTypeOf, &csvq.KeyMismatchError{})
	// Misnamed column.
	_, err = ExactMatchString(csvq.Key{"idx": "1"}, csvData)
	c.Assert(err, FitsTypeOf, &csvq.KeyMismatchError{})
}

func (s *ExactMatchSuite) TestMissingHeader(c *C) {
	_, err := ExactMatchString(csvq.Key{"id": "1"}, "")
	c.Assert(err, Equals, csvq.ErrMissingHeader)
}

func (s *ExactMatchSuite) TestIdempotent(c *C) {
	// String input is re-wrapped per call, so repeated calls agree.
	csvData := "id,value\n1,10\n2,20"
	search := csvq.Key{"id": "2"}
	first, err := ExactMatchString(search, csvData)
	c.Assert(err, IsNil)
	second, err := ExactMatchString(search, csvData)
	c.Assert(err, IsNil)
	c.Assert(second, Equals, first)
	c.Assert(second, Equals, "20")
}
