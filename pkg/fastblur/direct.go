package fastblur

// The direct strategy iterates the range once, computing the shift amount and
// applying the two XOR stages and the rotation inline. It is the baseline the
// other strategies are verified against.

func (e *Engine) encryptDirect(data []byte, start, end int) {
	k1, k2 := e.key.k1, e.key.k2
	if e.mode == ModeFixed {
		s := e.key.shift
		for i := start; i < end; i++ {
			data[i] = rotl8(data[i]^k1, s) ^ k2
		}
		return
	}
	mask := e.key.mask
	for i := start; i < end; i++ {
		data[i] = rotl8(data[i]^k1, dynamicShift(i, mask)) ^ k2
	}
}

func (e *Engine) decryptDirect(data []byte, start, end int) {
	k1, k2 := e.key.k1, e.key.k2
	if e.mode == ModeFixed {
		s := e.key.shift
		for i := start; i < end; i++ {
			data[i] = rotr8(data[i]^k2, s) ^ k1
		}
		return
	}
	mask := e.key.mask
	for i := start; i < end; i++ {
		data[i] = rotr8(data[i]^k2, dynamicShift(i, mask)) ^ k1
	}
}
