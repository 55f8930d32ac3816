package fastblur

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestBase64RoundTrip(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	original := []byte("some payload worth hiding from casual eyes")
	encoded := e.EncryptBase64(original)
	assert.NotEmpty(t, encoded)

	decoded, err := e.DecryptBase64(encoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecryptBase64Malformed(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	_, err = e.DecryptBase64("definitely not base64!!!")
	assert.Error(t, err)
}

func TestBase64EmptyPayload(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	assert.Equal(t, "", e.EncryptBase64(nil))
	decoded, err := e.DecryptBase64("")
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestTextRoundTripUTF8(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	encoded, err := e.EncryptText("Hello World", nil)
	require.NoError(t, err)
	decoded, err := e.DecryptText(encoded, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", decoded)
}

func TestTextRoundTripCharsets(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	t.Run("latin1", func(t *testing.T) {
		encoded, err := e.EncryptText("café niño", charmap.ISO8859_1)
		require.NoError(t, err)
		decoded, err := e.DecryptText(encoded, charmap.ISO8859_1)
		require.NoError(t, err)
		assert.Equal(t, "café niño", decoded)
	})

	t.Run("utf16", func(t *testing.T) {
		enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
		encoded, err := e.EncryptText("Hello World", enc)
		require.NoError(t, err)
		decoded, err := e.DecryptText(encoded, enc)
		require.NoError(t, err)
		assert.Equal(t, "Hello World", decoded)
	})
}

func TestTextDifferentCharsetsDiffer(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	latin, err := e.EncryptText("café", charmap.ISO8859_1)
	require.NoError(t, err)
	utf8, err := e.EncryptText("café", nil)
	require.NoError(t, err)
	assert.NotEqual(t, latin, utf8)
}
