package term

import (
	"regexp"

	"github.com/qianniaoge/watchman/query"
	"github.com/stretchr/testify/suite"
)

// termTestSuite stores some common test setup that's shared by all the
// term test suites.
type termTestSuite struct {
	suite.Suite
}

// A constructs a JSON-style array. It's meant to save some typing.
func (s *termTestSuite) A(vs ...interface{}) []interface{} {
	return vs
}

func (s *termTestSuite) parse(raw interface{}, cs query.CaseSensitivity) query.Expr {
	x, err := Parse(query.New(cs), raw)
	s.Require().NoError(err)
	return x
}

// PETC => parseErrorTestCase
func (s *termTestSuite) PETC(raw interface{}, cs query.CaseSensitivity, errRegex string) {
	x, err := Parse(query.New(cs), raw)
	if s.Error(err) {
		s.True(query.IsParseError(err))
		s.Regexp(regexp.MustCompile(errRegex), err.Error())
	}
	s.Nil(x)
}

func (s *termTestSuite) eval(x query.Expr, e query.Entry, wholeName string) bool {
	ctx := query.NewContext(query.New(query.CaseSensitive), wholeName)
	return x.Evaluate(ctx, e)
}

func (s *termTestSuite) EvalTrue(x query.Expr, e query.Entry, wholeName string) {
	s.True(s.eval(x, e, wholeName))
}

func (s *termTestSuite) EvalFalse(x query.Expr, e query.Entry, wholeName string) {
	s.False(s.eval(x, e, wholeName))
}
