package fastblur

// The batched strategy processes eight bytes per iteration with the eight
// shift amounts computed up front, which gives the compiler independent
// statements to schedule. A constant shift leaves nothing to precompute per
// batch, so fixed mode uses the direct loop.

func (e *Engine) encryptBatched(data []byte, start, end int) {
	if e.mode == ModeFixed {
		e.encryptDirect(data, start, end)
		return
	}
	k1, k2 := e.key.k1, e.key.k2
	mask := e.key.mask
	i := start
	for ; i+8 <= end; i += 8 {
		s0 := dynamicShift(i, mask)
		s1 := dynamicShift(i+1, mask)
		s2 := dynamicShift(i+2, mask)
		s3 := dynamicShift(i+3, mask)
		s4 := dynamicShift(i+4, mask)
		s5 := dynamicShift(i+5, mask)
		s6 := dynamicShift(i+6, mask)
		s7 := dynamicShift(i+7, mask)

		data[i] = rotl8(data[i]^k1, s0) ^ k2
		data[i+1] = rotl8(data[i+1]^k1, s1) ^ k2
		data[i+2] = rotl8(data[i+2]^k1, s2) ^ k2
		data[i+3] = rotl8(data[i+3]^k1, s3) ^ k2
		data[i+4] = rotl8(data[i+4]^k1, s4) ^ k2
		data[i+5] = rotl8(data[i+5]^k1, s5) ^ k2
		data[i+6] = rotl8(data[i+6]^k1, s6) ^ k2
		data[i+7] = rotl8(data[i+7]^k1, s7) ^ k2
	}
	for ; i < end; i++ {
		data[i] = rotl8(data[i]^k1, dynamicShift(i, mask)) ^ k2
	}
}

func (e *Engine) decryptBatched(data []byte, start, end int) {
	if e.mode == ModeFixed {
		e.decryptDirect(data, start, end)
		return
	}
	k1, k2 := e.key.k1, e.key.k2
	mask := e.key.mask
	i := start
	for ; i+8 <= end; i += 8 {
		s0 := dynamicShift(i, mask)
		s1 := dynamicShift(i+1, mask)
		s2 := dynamicShift(i+2, mask)
		s3 := dynamicShift(i+3, mask)
		s4 := dynamicShift(i+4, mask)
		s5 := dynamicShift(i+5, mask)
		s6 := dynamicShift(i+6, mask)
		s7 := dynamicShift(i+7, mask)

		data[i] = rotr8(data[i]^k2, s0) ^ k1
		data[i+1] = rotr8(data[i+1]^k2, s1) ^ k1
		data[i+2] = rotr8(data[i+2]^k2, s2) ^ k1
		data[i+3] = rotr8(data[i+3]^k2, s3) ^ k1
		data[i+4] = rotr8(data[i+4]^k2, s4) ^ k1
		data[i+5] = rotr8(data[i+5]^k2, s5) ^ k1
		data[i+6] = rotr8(data[i+6]^k2, s6) ^ k1
		data[i+7] = rotr8(data[i+7]^k2, s7) ^ k1
	}
	for ; i < end; i++ {
		data[i] = rotr8(data[i]^k2, dynamicShift(i, mask)) ^ k1
	}
}
