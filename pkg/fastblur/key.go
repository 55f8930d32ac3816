package fastblur

// DefaultKey is the 64-bit master key used when the caller doesn't supply one.
const DefaultKey uint64 = 0x5A7B9C1D3E8F0A2B

// DefaultKeySegment is the key segment derived from DefaultKey, used for the
// shift mask in dynamic mode when no explicit segment is given.
const DefaultKeySegment = byte((DefaultKey >> 16) & 0xFF)

// Mode selects how the per-byte rotation amount is computed.
type Mode uint8

const (
	// ModeDynamic rotates the byte at position i by (i + shift mask) mod 8.
	ModeDynamic Mode = iota

	// ModeFixed rotates every byte by the same constant amount.
	ModeFixed
)

func (m Mode) String() string {
	switch m {
	case ModeDynamic:
		return "dynamic"
	case ModeFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// keyMaterial is the immutable per-engine key state. It is derived once at
// construction and shared read-only by every worker processing a request.
type keyMaterial struct {
	k1, k2 byte
	mask   uint8 // dynamic mode: added to the byte position before masking to 0-7
	shift  uint  // fixed mode: constant rotation amount, 0-7
}

// deriveKeyMaterial splits the master key into per-stage fragments.
// Dynamic mode uses the two low key bytes plus the segment as shift mask.
// Fixed mode uses a single fragment; the trailing XOR stage stays zero.
func deriveKeyMaterial(key uint64, segment byte, mode Mode, fixedShift uint) keyMaterial {
	km := keyMaterial{k1: byte(key)}
	if mode == ModeDynamic {
		km.k2 = byte(key >> 8)
		km.mask = segment
	} else {
		km.shift = fixedShift & 0x7
	}
	return km
}
