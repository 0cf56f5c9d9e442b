package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_NewIsValid(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())
}

func TestValidator_Check(t *testing.T) {
	v := New()
	v.Check(true, "ok", "should not appear")
	v.Check(false, "bad", "must be provided")

	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"bad": "must be provided"}, v.Errors)
}

func TestValidator_FirstErrorWins(t *testing.T) {
	v := New()
	v.AddError("field", "first")
	v.AddError("field", "second")

	assert.Equal(t, "first", v.Errors["field"])
}
