package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, Is(ErrUnsupportedShape, ErrTitleMismatch))
	assert.False(t, Is(ErrTitleMismatch, ErrDuplicateTitle))
	assert.False(t, Is(ErrDuplicateTitle, ErrUnsupportedShape))
}

func TestIsUnsupportedShape(t *testing.T) {
	err := NewUnsupportedShape("property %q: %s", "captures", `{"type":"array"}`)

	assert.True(t, IsUnsupportedShape(err))
	assert.False(t, IsTitleMismatch(err))
	assert.Contains(t, err.Error(), "captures")
	assert.Contains(t, err.Error(), `{"type":"array"}`)

	// Survives further wrapping
	wrapped := Wrap(err, "definition Match")
	assert.True(t, IsUnsupportedShape(wrapped))
}

func TestIsTitleMismatch(t *testing.T) {
	err := NewTitleMismatch("referenced %q but definition declares %q", "Address", "Addr")

	assert.True(t, IsTitleMismatch(err))
	assert.False(t, IsUnsupportedShape(err))
	assert.Contains(t, err.Error(), "Address")
}

func TestIsHelpersNilSafe(t *testing.T) {
	assert.False(t, IsUnsupportedShape(nil))
	assert.False(t, IsTitleMismatch(nil))
	assert.False(t, IsDuplicateTitle(nil))
}

func TestIsHelpersIgnoreForeignErrors(t *testing.T) {
	err := fmt.Errorf("some other failure")
	assert.False(t, IsUnsupportedShape(err))
	assert.False(t, IsTitleMismatch(err))
}
