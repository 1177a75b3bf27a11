package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIncludesHint(t *testing.T) {
	err := ImportError("no valid team rows").WithHint("expected columns: Team, Maturity")
	assert.Equal(t, "no valid team rows (expected columns: Team, Maturity)", err.Error())
}

func TestErrorWrapsCause(t *testing.T) {
	cause := stderrors.New("file truncated")
	err := WrapImport(cause, "could not read workbook")
	assert.Equal(t, "could not read workbook: file truncated", err.Error())
	assert.ErrorIs(t, err, &Error{Type: ErrorTypeImport})
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestDetailedStringSections(t *testing.T) {
	err := ValidationError("invalid quarter").
		WithHint("use the form Q1 2025").
		WithContext("quarter", "Q5 2025")

	s := err.DetailedString()
	assert.Contains(t, s, "[HIGH] [VALIDATION] invalid quarter")
	assert.Contains(t, s, "Hint: use the form Q1 2025")
	assert.Contains(t, s, "quarter: Q5 2025")
}

func TestIsFatal(t *testing.T) {
	assert.True(t, ConfigError("missing data dir").IsFatal())
	assert.False(t, ImportError("bad row").IsFatal())
}
