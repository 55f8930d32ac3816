package fastblur

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferRegionRoundTrip(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	buf := randBytes(t, 64)
	snapshot := make([]byte, len(buf))
	copy(snapshot, buf)

	require.True(t, e.EncryptAt(buf, 16, 32))
	assert.Equal(t, snapshot[:16], buf[:16], "bytes before the region must be untouched")
	assert.Equal(t, snapshot[48:], buf[48:], "bytes after the region must be untouched")
	assert.NotEqual(t, snapshot[16:48], buf[16:48])

	require.True(t, e.DecryptAt(buf, 16, 32))
	assert.Equal(t, snapshot, buf)
}

func TestBufferRegionWholeBuffer(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	buf := randBytes(t, 128)
	want := e.Encrypt(buf)
	require.True(t, e.EncryptAt(buf, 0, len(buf)))
	assert.Equal(t, want, buf)
}

func TestBufferRegionInvalid(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	buf := make([]byte, 16)
	assert.False(t, e.EncryptAt(nil, 0, 4))
	assert.False(t, e.EncryptAt(buf, -1, 4))
	assert.False(t, e.EncryptAt(buf, 0, 0))
	assert.False(t, e.EncryptAt(buf, 0, -3))
	assert.False(t, e.EncryptAt(buf, 10, 7))
	assert.False(t, e.DecryptAt(buf, 16, 1))

	// A rejected operation leaves the buffer alone.
	assert.Equal(t, make([]byte, 16), buf)
}
