package query

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	q1 := New(CaseSensitive)
	q2 := New(CaseInSensitive)
	assert.NotEmpty(t, q1.ID)
	assert.NotEqual(t, q1.ID, q2.ID)
	assert.Equal(t, CaseSensitive, q1.CaseSensitive)
	assert.Equal(t, CaseInSensitive, q2.CaseSensitive)
}

func TestCaseSensitivityString(t *testing.T) {
	assert.Equal(t, "case-sensitive", CaseSensitive.String())
	assert.Equal(t, "case-insensitive", CaseInSensitive.String())
}

func TestContext(t *testing.T) {
	q := New(CaseSensitive)
	ctx := NewContext(q, "src/main.c")
	assert.Equal(t, "src/main.c", ctx.WholeName())
	assert.Equal(t, q, ctx.Query())
}

func TestParseError(t *testing.T) {
	err := NewParseError("iname", "invalid scope '%v'", "middle")
	assert.Equal(t, "iname", err.Term)
	assert.Equal(t, "failed to parse the 'iname' term: invalid scope 'middle'", err.Error())

	assert.True(t, IsParseError(err))
	assert.False(t, IsParseError(nil))
	assert.False(t, IsParseError(errors.New("some other error")))
}
