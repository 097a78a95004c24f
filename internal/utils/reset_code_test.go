package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetCode(t *testing.T) {
	format := regexp.MustCompile(`^[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}$`)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := GenerateResetCode()
		require.NoError(t, err)
		assert.Regexp(t, format, code)
		assert.False(t, seen[code], "codes should not repeat")
		seen[code] = true
	}
}

func TestHashResetCode(t *testing.T) {
	a := HashResetCode("aaaa-bbbb-cccc")
	b := HashResetCode("aaaa-bbbb-cccc")
	c := HashResetCode("aaaa-bbbb-cccd")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
	assert.NotContains(t, a, "aaaa-bbbb-cccc")
}
