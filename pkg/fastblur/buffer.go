package fastblur

// EncryptAt obfuscates the region of buf starting at off with the given
// length. Positions restart at zero for the region, so a region deobfuscated
// with DecryptAt must use the same offset and length.
//
// It reports false without touching buf when the region is invalid: a nil
// buffer, a negative offset, a non-positive length, or a region extending
// past the end of the buffer. The region is copied out, transformed, and
// copied back; true in-place mutation is an optimization the contract does
// not promise.
func (e *Engine) EncryptAt(buf []byte, off, length int) bool {
	region, ok := bufferRegion(buf, off, length)
	if !ok {
		return false
	}
	tmp := make([]byte, length)
	copy(tmp, region)
	e.EncryptInPlace(tmp)
	copy(region, tmp)
	return true
}

// DecryptAt reverses EncryptAt for the same offset and length, with the same
// boolean failure semantics.
func (e *Engine) DecryptAt(buf []byte, off, length int) bool {
	region, ok := bufferRegion(buf, off, length)
	if !ok {
		return false
	}
	tmp := make([]byte, length)
	copy(tmp, region)
	e.DecryptInPlace(tmp)
	copy(region, tmp)
	return true
}

func bufferRegion(buf []byte, off, length int) ([]byte, bool) {
	if buf == nil || off < 0 || length <= 0 || off+length > len(buf) {
		return nil, false
	}
	return buf[off : off+length], true
}
