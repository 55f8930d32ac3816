package fastblur

// shiftTables hold every rotation result for both directions, indexed by
// shift amount and byte value. They depend only on the shift domain, never on
// the key, so they are built once at engine construction and shared read-only
// across goroutines.
type shiftTables struct {
	left  [8][256]byte
	right [8][256]byte
}

func buildShiftTables() *shiftTables {
	t := &shiftTables{}
	for s := uint(0); s < 8; s++ {
		for b := 0; b < 256; b++ {
			t.left[s][b] = rotl8(byte(b), s)
			t.right[s][b] = rotr8(byte(b), s)
		}
	}
	return t
}

// The lookup strategy replaces the runtime rotation with a table access, so
// per-byte work is two XORs and one load. Ranges of at most 8 bytes skip the
// loop entirely and use directly indexed statements.

func (e *Engine) encryptLookup(data []byte, start, end int) {
	if end-start <= 8 {
		e.encryptLookupTiny(data, start, end)
		return
	}
	t := e.tables
	k1, k2 := e.key.k1, e.key.k2
	if e.mode == ModeFixed {
		left := &t.left[e.key.shift]
		for i := start; i < end; i++ {
			data[i] = left[data[i]^k1] ^ k2
		}
		return
	}
	mask := e.key.mask
	for i := start; i < end; i++ {
		data[i] = t.left[dynamicShift(i, mask)][data[i]^k1] ^ k2
	}
}

func (e *Engine) decryptLookup(data []byte, start, end int) {
	if end-start <= 8 {
		e.decryptLookupTiny(data, start, end)
		return
	}
	t := e.tables
	k1, k2 := e.key.k1, e.key.k2
	if e.mode == ModeFixed {
		right := &t.right[e.key.shift]
		for i := start; i < end; i++ {
			data[i] = right[data[i]^k2] ^ k1
		}
		return
	}
	mask := e.key.mask
	for i := start; i < end; i++ {
		data[i] = t.right[dynamicShift(i, mask)][data[i]^k2] ^ k1
	}
}

func (e *Engine) encryptLookupTiny(data []byte, start, end int) {
	t := e.tables
	k1, k2 := e.key.k1, e.key.k2
	switch end - start {
	case 8:
		data[start+7] = t.left[e.shiftAt(start+7)][data[start+7]^k1] ^ k2
		fallthrough
	case 7:
		data[start+6] = t.left[e.shiftAt(start+6)][data[start+6]^k1] ^ k2
		fallthrough
	case 6:
		data[start+5] = t.left[e.shiftAt(start+5)][data[start+5]^k1] ^ k2
		fallthrough
	case 5:
		data[start+4] = t.left[e.shiftAt(start+4)][data[start+4]^k1] ^ k2
		fallthrough
	case 4:
		data[start+3] = t.left[e.shiftAt(start+3)][data[start+3]^k1] ^ k2
		fallthrough
	case 3:
		data[start+2] = t.left[e.shiftAt(start+2)][data[start+2]^k1] ^ k2
		fallthrough
	case 2:
		data[start+1] = t.left[e.shiftAt(start+1)][data[start+1]^k1] ^ k2
		fallthrough
	case 1:
		data[start] = t.left[e.shiftAt(start)][data[start]^k1] ^ k2
	}
}

func (e *Engine) decryptLookupTiny(data []byte, start, end int) {
	t := e.tables
	k1, k2 := e.key.k1, e.key.k2
	switch end - start {
	case 8:
		data[start+7] = t.right[e.shiftAt(start+7)][data[start+7]^k2] ^ k1
		fallthrough
	case 7:
		data[start+6] = t.right[e.shiftAt(start+6)][data[start+6]^k2] ^ k1
		fallthrough
	case 6:
		data[start+5] = t.right[e.shiftAt(start+5)][data[start+5]^k2] ^ k1
		fallthrough
	case 5:
		data[start+4] = t.right[e.shiftAt(start+4)][data[start+4]^k2] ^ k1
		fallthrough
	case 4:
		data[start+3] = t.right[e.shiftAt(start+3)][data[start+3]^k2] ^ k1
		fallthrough
	case 3:
		data[start+2] = t.right[e.shiftAt(start+2)][data[start+2]^k2] ^ k1
		fallthrough
	case 2:
		data[start+1] = t.right[e.shiftAt(start+1)][data[start+1]^k2] ^ k1
		fallthrough
	case 1:
		data[start] = t.right[e.shiftAt(start)][data[start]^k2] ^ k1
	}
}
