package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAlphanumeric(t *testing.T) {
	out, err := GenerateAlphanumeric(10)
	require.NoError(t, err)
	assert.Len(t, out, 10)
	for _, r := range out {
		assert.True(t, strings.ContainsRune(alphanumeric, r))
	}
}

func TestGenerateAlphanumeric_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		out, err := GenerateAlphanumeric(10)
		require.NoError(t, err)
		seen[out] = true
	}
	assert.Len(t, seen, 50)
}

func TestGenerateAlphanumeric_InvalidLength(t *testing.T) {
	_, err := GenerateAlphanumeric(0)
	assert.Error(t, err)
	_, err = GenerateAlphanumeric(-3)
	assert.Error(t, err)
}
