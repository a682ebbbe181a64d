package shared

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSecret(t *testing.T) {
	a, err := NewSecret(32)
	require.NoError(t, err)
	b, err := NewSecret(32)
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)

	_, err = hex.DecodeString(a)
	assert.NoError(t, err)
}

func TestWipeByteArray(t *testing.T) {
	b := []byte("token")
	WipeByteArray(b)
	assert.Equal(t, make([]byte, 5), b)

	assert.NotPanics(t, func() { WipeByteArray(nil) })
}
