package fastblur

// rotl8 rotates b left by s bits as an unsigned 8-bit value.
// A shift of 0 is a pure pass-through so the complementary shift never
// reaches the full bit width.
func rotl8(b byte, s uint) byte {
	if s == 0 {
		return b
	}
	return (b << s) | (b >> (8 - s))
}

// rotr8 rotates b right by s bits as an unsigned 8-bit value.
func rotr8(b byte, s uint) byte {
	if s == 0 {
		return b
	}
	return (b >> s) | (b << (8 - s))
}

// dynamicShift maps a byte position to its rotation amount in dynamic mode.
func dynamicShift(i int, mask uint8) uint {
	return uint(i+int(mask)) & 0x7
}
