package term

import (
	"testing"

	"github.com/qianniaoge/watchman/query"
	"github.com/stretchr/testify/suite"
)

type LogicalTermTestSuite struct {
	termTestSuite
}

func (s *LogicalTermTestSuite) TestParseErrors() {
	s.PETC(s.A("not"), query.CaseSensitive, "not.*exactly one sub-expression")
	s.PETC(s.A("not", "true", "true"), query.CaseSensitive, "not.*exactly one sub-expression")
	s.PETC(s.A("allof"), query.CaseSensitive, "allof.*at least one sub-expression")
	s.PETC(s.A("anyof"), query.CaseSensitive, "anyof.*at least one sub-expression")
	// Sub-expression errors propagate
	s.PETC(s.A("not", s.A("name")), query.CaseSensitive, "name.*invalid number of arguments")
	s.PETC(s.A("allof", "true", s.A("name")), query.CaseSensitive, "name.*invalid number of arguments")
}

func (s *LogicalTermTestSuite) TestNot() {
	x := s.parse(s.A("not", s.A("name", "foo.c")), query.CaseSensitive)
	s.EvalFalse(x, query.Entry{CName: "foo.c"}, "foo.c")
	s.EvalTrue(x, query.Entry{CName: "bar.c"}, "bar.c")
}

func (s *LogicalTermTestSuite) TestAllOf() {
	x := s.parse(s.A("allof", s.A("name", "foo.c"), "true"), query.CaseSensitive)
	s.EvalTrue(x, query.Entry{CName: "foo.c"}, "foo.c")
	s.EvalFalse(x, query.Entry{CName: "bar.c"}, "bar.c")

	x = s.parse(s.A("allof", s.A("name", "foo.c"), "false"), query.CaseSensitive)
	s.EvalFalse(x, query.Entry{CName: "foo.c"}, "foo.c")
}

func (s *LogicalTermTestSuite) TestAnyOf() {
	x := s.parse(s.A("anyof", s.A("name", "foo.c"), s.A("name", "bar.c")), query.CaseSensitive)
	s.EvalTrue(x, query.Entry{CName: "foo.c"}, "foo.c")
	s.EvalTrue(x, query.Entry{CName: "bar.c"}, "bar.c")
	s.EvalFalse(x, query.Entry{CName: "baz.c"}, "baz.c")
}

func (s *LogicalTermTestSuite) TestBooleanArityErrors() {
	s.PETC(s.A("true", "extra"), query.CaseSensitive, "true.*no arguments")
	s.PETC(s.A("false", "extra"), query.CaseSensitive, "false.*no arguments")
}

func TestLogicalTerms(t *testing.T) {
	suite.Run(t, new(LogicalTermTestSuite))
}
