package sequence

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentErrorf("sample size cannot be negative, got %d", -2)
	assert.Equal(t, "sample size cannot be negative, got -2", err.Error())
	assert.True(t, IsInvalidArgumentError(err))

	wrapped := fmt.Errorf("sampling failed: %w", err)
	assert.True(t, IsInvalidArgumentError(wrapped))

	assert.False(t, IsInvalidArgumentError(ErrEmptySequence))
	assert.False(t, IsInvalidArgumentError(errors.New("dummy error")))
}

// stubSource returns a fixed value
type stubSource uint64

func (s stubSource) UintN(uint64) (uint64, error) { return uint64(s), nil }

func TestDrawIndex(t *testing.T) {
	j, err := drawIndex(stubSource(2), 3)
	assert.NoError(t, err)
	assert.Equal(t, 2, j)

	_, err = drawIndex(stubSource(3), 3)
	assert.ErrorIs(t, err, ErrSourceOutOfRange)
}
