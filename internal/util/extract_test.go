package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlain(t *testing.T) {
	text, err := ExtractText([]byte("plain resume body"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "plain resume body", text)
}

func TestExtractTextUnsupportedType(t *testing.T) {
	_, err := ExtractText([]byte{0x00}, "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestExtractTextBrokenPDF(t *testing.T) {
	_, err := ExtractText([]byte("definitely not a pdf"), "application/pdf")
	require.Error(t, err)
}

func TestCountNonWhitespace(t *testing.T) {
	assert.Equal(t, 0, CountNonWhitespace(""))
	assert.Equal(t, 0, CountNonWhitespace(" \n\t "))
	assert.Equal(t, 11, CountNonWhitespace("go is fun!\n yes "))
}
