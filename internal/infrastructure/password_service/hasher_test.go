package passwordservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	h := NewHasher()

	hash, err := h.HashPassword("pw123!")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123!", hash)

	assert.NoError(t, h.ComparePasswordHash("pw123!", hash))
	assert.Error(t, h.ComparePasswordHash("wrong", hash))
}

func TestHashIsSalted(t *testing.T) {
	h := NewHasher()

	first, err := h.HashPassword("pw123!")
	require.NoError(t, err)
	second, err := h.HashPassword("pw123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
