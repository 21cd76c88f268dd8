package munge

import (
	"fmt"
	"regexp"

	"github.com/stretchr/testify/suite"
)

// This file stores some common test setup that's shared by all the
// munge functions.

type testCase struct {
	input    interface{}
	expected interface{}
	errRegex *regexp.Regexp
}

// nTC => newTestCase. It's meant to save some typing.
func nTC(input interface{}, v interface{}) testCase {
	tc := testCase{input: input}
	tc.expected = v
	return tc
}

// nETC => newErrorTestCase. It's meant to save some typing.
func nETC(input interface{}, errRegex string) testCase {
	tc := testCase{input: input}
	tc.errRegex = regexp.MustCompile(errRegex)
	return tc
}

type mungeFunc func(interface{}) (interface{}, error)

type MungeTestSuite struct {
	suite.Suite
}

func (s *MungeTestSuite) runTestCases(f mungeFunc, cases ...testCase) {
	var input interface{}
	defer func() {
		if r := recover(); r != nil {
			s.FailNow(fmt.Sprintf("panicked on input %v: %v", input, r))
		}
	}()
	for _, c := range cases {
		input = c.input
		actual, err := f(c.input)
		if c.errRegex != nil {
			s.Regexp(c.errRegex, err, "Input: %v", input)
		} else {
			if s.NoError(err, "Input: %v", input) {
				s.Equal(c.expected, actual, "Input: %v", input)
			}
		}
	}
}
