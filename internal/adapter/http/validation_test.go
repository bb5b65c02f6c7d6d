package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationProbe struct {
	ID     string  `validate:"required,hex32"`
	Amount float64 `validate:"required,gt=0,dec2"`
}

func TestValidator_AcceptsWellFormedInput(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&validationProbe{ID: strings.Repeat("a", 32), Amount: 100.25})
	assert.NoError(t, err)
}

func TestValidator_Hex32(t *testing.T) {
	cv := NewValidator()

	for _, bad := range []string{"", "short", strings.Repeat("A", 32), strings.Repeat("z", 32)} {
		err := cv.Validate(&validationProbe{ID: bad, Amount: 10})
		require.Error(t, err, bad)
	}
}

func TestValidator_Dec2(t *testing.T) {
	cv := NewValidator()

	assert.NoError(t, cv.Validate(&validationProbe{ID: strings.Repeat("a", 32), Amount: 10.99}))
	assert.Error(t, cv.Validate(&validationProbe{ID: strings.Repeat("a", 32), Amount: 10.999}))
}

func TestToFieldErrors_ReadableMessages(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&validationProbe{ID: "nope", Amount: 0})
	require.Error(t, err)

	fields := ToFieldErrors(err)
	assert.True(t, containsFieldMsg(fields, "ID", "32-char lowercase hex"))
	assert.True(t, containsFieldMsg(fields, "Amount", "is required"))
}

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
