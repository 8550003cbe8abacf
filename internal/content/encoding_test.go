package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rynaret/Orang/internal/content"
)

func TestDetectBOM_UTF8(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...)
	enc, n, found := content.DetectBOM(data)
	require.True(t, found)
	assert.Equal(t, 3, n)
	assert.NotNil(t, enc)
}

func TestDetectBOM_NoneFound(t *testing.T) {
	_, _, found := content.DetectBOM([]byte("plain text"))
	assert.False(t, found)
}

func TestDecode_NoBOM_FallsBackToRaw(t *testing.T) {
	text, err := content.Decode([]byte("hello"), nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestDecode_StripsDetectedBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...)
	text, err := content.Decode(data, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestDecode_FallbackEncoding(t *testing.T) {
	enc, err := content.ByName("latin-1")
	require.NoError(t, err)
	require.NotNil(t, enc)

	text, err := content.Decode([]byte{0xE9}, enc) // é in latin-1
	require.NoError(t, err)
	assert.Equal(t, "é", text)
}

func TestByName(t *testing.T) {
	enc, err := content.ByName("")
	require.NoError(t, err)
	assert.Nil(t, enc, "empty name means raw UTF-8, no decoder needed")

	enc, err = content.ByName("UTF-16LE")
	require.NoError(t, err)
	assert.NotNil(t, enc)

	_, err = content.ByName("klingon")
	assert.Error(t, err)
}
