package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateQRCode(t *testing.T) {
	png, err := GenerateQRCode("https://essenceclean.com/track-order?order=EC123", 150)

	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngHeader, png[:4])
}

func TestGenerateQRCodeDeterministic(t *testing.T) {
	first, err := GenerateQRCode("EC123", 150)
	require.NoError(t, err)
	second, err := GenerateQRCode("EC123", 150)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateQRCodeEmptyContent(t *testing.T) {
	_, err := GenerateQRCode("", 150)
	assert.Error(t, err)
}
