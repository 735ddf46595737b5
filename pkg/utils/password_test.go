package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword(t *testing.T) {
	password, err := GeneratePassword(4)
	require.NoError(t, err)
	assert.Len(t, password, MinGeneratedPasswordLength)

	for _, c := range password {
		assert.True(t, strings.ContainsRune(passwordCharacters, c))
	}

	other, err := GeneratePassword(20)
	require.NoError(t, err)
	assert.Len(t, other, 20)
	assert.NotEqual(t, password, other)
}
