package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsernamePattern(t *testing.T) {
	assert.True(t, CompiledPatterns.Username.MatchString("jane.doe_01"))
	assert.False(t, CompiledPatterns.Username.MatchString("ab"))
	assert.False(t, CompiledPatterns.Username.MatchString("jane doe"))
	assert.False(t, CompiledPatterns.Username.MatchString("jane@doe"))
}

func TestStringValidation(t *testing.T) {
	ok := NewStringValidation("jane.doe").
		WithMinLength(3).
		WithMaxLength(30).
		WithPattern(CompiledPatterns.Username).
		Validate()
	assert.True(t, ok)

	assert.False(t, NewStringValidation("").Validate())
	assert.True(t, NewStringValidation("").WithRequired(false).Validate())
	assert.False(t, NewStringValidation("abcdef").WithMaxLength(3).Validate())
}
