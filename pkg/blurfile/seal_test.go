package blurfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGen(t *testing.T) *KeyGenerator {
	t.Helper()
	gen, err := NewKeyGenerator(SetIterations(1 << 4))
	require.NoError(t, err)
	return gen
}

func TestSealUnsealRoundTrip(t *testing.T) {
	gen := testGen(t)
	pass := Passphrase("correct horse battery staple")
	data := []byte("payload that should come back intact")

	sealed, err := Seal(gen, pass, data)
	require.NoError(t, err)
	require.Greater(t, len(sealed), headerSize)
	assert.NotEqual(t, data, sealed[headerSize:])

	opened, err := Unseal(gen, pass, sealed)
	require.NoError(t, err)
	assert.Equal(t, data, opened)
}

func TestSealFixedShiftRoundTrip(t *testing.T) {
	gen := testGen(t)
	pass := Passphrase("fixed mode pass")
	data := []byte("fixed shift payload")

	sealed, err := Seal(gen, pass, data, FixedShift(9)) // masked to 1
	require.NoError(t, err)
	opened, err := Unseal(gen, pass, sealed)
	require.NoError(t, err)
	assert.Equal(t, data, opened)
}

func TestSealEmptyPayload(t *testing.T) {
	gen := testGen(t)
	sealed, err := Seal(gen, Passphrase("pass"), nil)
	require.NoError(t, err)
	assert.Len(t, sealed, headerSize)

	opened, err := Unseal(gen, Passphrase("pass"), sealed)
	require.NoError(t, err)
	assert.Empty(t, opened)
}

func TestUnsealWrongPassphraseSilentlyGarbles(t *testing.T) {
	gen := testGen(t)
	data := []byte("no tamper detection by design")

	sealed, err := Seal(gen, Passphrase("right"), data)
	require.NoError(t, err)

	opened, err := Unseal(gen, Passphrase("wrong"), sealed)
	require.NoError(t, err, "a wrong passphrase must not be detectable")
	assert.Len(t, opened, len(data))
	assert.NotEqual(t, data, opened)
}

func TestUnsealStructuralFailures(t *testing.T) {
	gen := testGen(t)

	_, err := Unseal(gen, Passphrase("p"), []byte("short"))
	assert.ErrorIs(t, err, ErrInvalidData)

	sealed, err := Seal(gen, Passphrase("p"), []byte("data"))
	require.NoError(t, err)

	bad := make([]byte, len(sealed))
	copy(bad, sealed)
	bad[0] ^= 0xFF
	_, err = Unseal(gen, Passphrase("p"), bad)
	assert.ErrorIs(t, err, ErrBadMagic)

	copy(bad, sealed)
	bad[4] = formatVersion + 1
	_, err = Unseal(gen, Passphrase("p"), bad)
	assert.ErrorIs(t, err, ErrBadVersion)

	copy(bad, sealed)
	bad[5] = 0xEE // mode byte
	_, err = Unseal(gen, Passphrase("p"), bad)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestSealEmptyPassphrase(t *testing.T) {
	gen := testGen(t)
	_, err := Seal(gen, nil, []byte("data"))
	assert.ErrorIs(t, err, ErrEmptyPassPhrase)

	sealed, err := Seal(gen, Passphrase("p"), []byte("data"))
	require.NoError(t, err)
	_, err = Unseal(gen, nil, sealed)
	assert.ErrorIs(t, err, ErrEmptyPassPhrase)
}

func TestSealSaltVariesPerSeal(t *testing.T) {
	gen := testGen(t)
	data := []byte("same input, different seals")

	a, err := Seal(gen, Passphrase("p"), data)
	require.NoError(t, err)
	b, err := Seal(gen, Passphrase("p"), data)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "fresh salts must produce different sealed bytes")
}
