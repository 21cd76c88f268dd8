package term

import (
	"testing"

	"github.com/qianniaoge/watchman/query"
	"github.com/stretchr/testify/suite"
)

type MatchTermTestSuite struct {
	termTestSuite
}

func (s *MatchTermTestSuite) TestParseErrors() {
	s.PETC(s.A("match"), query.CaseSensitive, "match.*invalid number of arguments")
	s.PETC(s.A("match", "a", "b", "c"), query.CaseSensitive, "match.*invalid number of arguments")
	s.PETC(s.A("match", float64(5)), query.CaseSensitive, "match.*argument 2 must be a string")
	s.PETC(s.A("match", "*.c", "middle"), query.CaseSensitive, "match.*invalid scope 'middle'")
	s.PETC(s.A("match", "[a"), query.CaseSensitive, "match.*invalid pattern")
	s.PETC(s.A("imatch", "[a"), query.CaseSensitive, "imatch.*invalid pattern")
}

func (s *MatchTermTestSuite) TestBasenameGlob() {
	x := s.parse(s.A("match", "*.c"), query.CaseSensitive)
	s.EvalTrue(x, query.Entry{CName: "main.c"}, "main.c")
	s.EvalFalse(x, query.Entry{CName: "main.h"}, "main.h")
	s.EvalFalse(x, query.Entry{CName: "MAIN.C"}, "MAIN.C")
}

func (s *MatchTermTestSuite) TestIMatch() {
	x := s.parse(s.A("imatch", "Main.*"), query.CaseSensitive)
	s.EvalTrue(x, query.Entry{CName: "main.c"}, "main.c")
	s.EvalTrue(x, query.Entry{CName: "MAIN.H"}, "MAIN.H")
	s.EvalFalse(x, query.Entry{CName: "util.c"}, "util.c")
}

func (s *MatchTermTestSuite) TestWholeNameGlob() {
	x := s.parse(s.A("match", "src/*.c", "wholename"), query.CaseSensitive)
	s.EvalTrue(x, query.Entry{CName: "main.c", Path: "src/main.c"}, "src/main.c")
	s.EvalFalse(x, query.Entry{CName: "main.c", Path: "lib/main.c"}, "lib/main.c")
}

func TestMatchTerm(t *testing.T) {
	suite.Run(t, new(MatchTermTestSuite))
}
