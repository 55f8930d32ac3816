package fastblur

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateRoundTripExhaustive(t *testing.T) {
	for v := 0; v < 256; v++ {
		for s := uint(0); s < 8; s++ {
			b := byte(v)
			assert.Equal(t, b, rotr8(rotl8(b, s), s), "value %#x shift %d", v, s)
			assert.Equal(t, b, rotl8(rotr8(b, s), s), "value %#x shift %d", v, s)
		}
	}
}

func TestRotateZeroShiftPassThrough(t *testing.T) {
	for v := 0; v < 256; v++ {
		assert.Equal(t, byte(v), rotl8(byte(v), 0))
		assert.Equal(t, byte(v), rotr8(byte(v), 0))
	}
}

func TestRotateKnownValues(t *testing.T) {
	assert.Equal(t, byte(0x02), rotl8(0x01, 1))
	assert.Equal(t, byte(0x01), rotl8(0x80, 1))
	assert.Equal(t, byte(0x80), rotr8(0x01, 1))
	assert.Equal(t, byte(0x0F), rotl8(0xF0, 4))
}

func TestDynamicShiftStaysInRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		for mask := 0; mask < 256; mask += 17 {
			s := dynamicShift(i, uint8(mask))
			assert.Less(t, s, uint(8))
		}
	}
	assert.Equal(t, uint(0), dynamicShift(0, 0))
	assert.Equal(t, uint(0), dynamicShift(5, 3))
	assert.Equal(t, uint(7), dynamicShift(6, 1))
}
