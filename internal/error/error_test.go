package error

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	err := New(IOError, "failed to read SSH config file", os.ErrPermission)
	assert.Equal(t, "failed to read SSH config file: permission denied", err.Error())

	bare := Newf(ValidationError, "Host '%s' is invalid", "a*")
	assert.Equal(t, "Host 'a*' is invalid", bare.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	err := New(IOError, "failed to write SSH config file", os.ErrNotExist)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestIsFollowsWrapChain(t *testing.T) {
	wrapped := fmt.Errorf("saving host: %w", Newf(NotFoundError, "Host 'x' not found"))

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.False(t, Is(errors.New("plain"), NotFoundError))
	assert.False(t, Is(nil, NotFoundError))
}

func TestIsChecksNestedAppErrors(t *testing.T) {
	inner := Newf(NotFoundError, "Host 'x' not found")
	outer := New(IOError, "failed to save host", fmt.Errorf("editing block: %w", inner))

	assert.True(t, IsIO(outer))
	assert.True(t, IsNotFound(outer))
	assert.False(t, IsDuplicate(outer))
}

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		typ  ErrorType
		want string
	}{
		{ConfigError, "config"},
		{IOError, "io"},
		{ValidationError, "validation"},
		{NotFoundError, "not found"},
		{DuplicateError, "duplicate"},
		{ErrorType(42), "ErrorType(42)"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.typ.String())
	}
}
