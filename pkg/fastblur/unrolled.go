package fastblur

// The unrolled strategy replicates the loop body four bytes per block with a
// residual loop for the tail, cutting branch overhead on short inputs.

func (e *Engine) encryptUnrolled(data []byte, start, end int) {
	// Capture key state into locals for the hot loop.
	k1, k2 := e.key.k1, e.key.k2
	i := start
	if e.mode == ModeFixed {
		s := e.key.shift
		for ; i+4 <= end; i += 4 {
			data[i] = rotl8(data[i]^k1, s) ^ k2
			data[i+1] = rotl8(data[i+1]^k1, s) ^ k2
			data[i+2] = rotl8(data[i+2]^k1, s) ^ k2
			data[i+3] = rotl8(data[i+3]^k1, s) ^ k2
		}
		for ; i < end; i++ {
			data[i] = rotl8(data[i]^k1, s) ^ k2
		}
		return
	}
	mask := e.key.mask
	for ; i+4 <= end; i += 4 {
		data[i] = rotl8(data[i]^k1, dynamicShift(i, mask)) ^ k2
		data[i+1] = rotl8(data[i+1]^k1, dynamicShift(i+1, mask)) ^ k2
		data[i+2] = rotl8(data[i+2]^k1, dynamicShift(i+2, mask)) ^ k2
		data[i+3] = rotl8(data[i+3]^k1, dynamicShift(i+3, mask)) ^ k2
	}
	for ; i < end; i++ {
		data[i] = rotl8(data[i]^k1, dynamicShift(i, mask)) ^ k2
	}
}

func (e *Engine) decryptUnrolled(data []byte, start, end int) {
	k1, k2 := e.key.k1, e.key.k2
	i := start
	if e.mode == ModeFixed {
		s := e.key.shift
		for ; i+4 <= end; i += 4 {
			data[i] = rotr8(data[i]^k2, s) ^ k1
			data[i+1] = rotr8(data[i+1]^k2, s) ^ k1
			data[i+2] = rotr8(data[i+2]^k2, s) ^ k1
			data[i+3] = rotr8(data[i+3]^k2, s) ^ k1
		}
		for ; i < end; i++ {
			data[i] = rotr8(data[i]^k2, s) ^ k1
		}
		return
	}
	mask := e.key.mask
	for ; i+4 <= end; i += 4 {
		data[i] = rotr8(data[i]^k2, dynamicShift(i, mask)) ^ k1
		data[i+1] = rotr8(data[i+1]^k2, dynamicShift(i+1, mask)) ^ k1
		data[i+2] = rotr8(data[i+2]^k2, dynamicShift(i+2, mask)) ^ k1
		data[i+3] = rotr8(data[i+3]^k2, dynamicShift(i+3, mask)) ^ k1
	}
	for ; i < end; i++ {
		data[i] = rotr8(data[i]^k2, dynamicShift(i, mask)) ^ k1
	}
}
