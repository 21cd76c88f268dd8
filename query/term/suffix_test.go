package term

import (
	"testing"

	"github.com/qianniaoge/watchman/query"
	"github.com/stretchr/testify/suite"
)

type SuffixTermTestSuite struct {
	termTestSuite
}

func (s *SuffixTermTestSuite) TestParseErrors() {
	s.PETC(s.A("suffix"), query.CaseSensitive, "suffix.*invalid number of arguments")
	s.PETC(s.A("suffix", float64(5)), query.CaseSensitive, "suffix.*string or an array of string")
	s.PETC(s.A("suffix", s.A("c", float64(5))), query.CaseSensitive, "suffix.*string or an array of string")
	s.PETC(s.A("suffix", s.A()), query.CaseSensitive, "suffix.*empty array")
}

func (s *SuffixTermTestSuite) TestSingleSuffix() {
	x := s.parse(s.A("suffix", "php"), query.CaseSensitive)
	s.EvalTrue(x, query.Entry{CName: "index.php"}, "index.php")
	// Suffix comparison is always case-insensitive
	s.EvalTrue(x, query.Entry{CName: "INDEX.PHP"}, "INDEX.PHP")
	s.EvalFalse(x, query.Entry{CName: "index.html"}, "index.html")
	// No extension at all
	s.EvalFalse(x, query.Entry{CName: "php"}, "php")
}

func (s *SuffixTermTestSuite) TestSuffixSet() {
	x := s.parse(s.A("suffix", s.A("c", "H")), query.CaseSensitive)
	s.EvalTrue(x, query.Entry{CName: "main.c"}, "main.c")
	s.EvalTrue(x, query.Entry{CName: "util.h"}, "util.h")
	s.EvalTrue(x, query.Entry{CName: "UTIL.H"}, "UTIL.H")
	s.EvalFalse(x, query.Entry{CName: "main.cc"}, "main.cc")
}

func TestSuffixTerm(t *testing.T) {
	suite.Run(t, new(SuffixTermTestSuite))
}
