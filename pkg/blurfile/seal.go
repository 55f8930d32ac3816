package blurfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	bin "github.com/saylorsolutions/binmap"

	"github.com/listener-He/fast-blur/pkg/fastblur"
)

const (
	headerMagic   uint32 = 0x46424C52 // "FBLR"
	formatVersion uint8  = 1

	headerSize = 4 + 1 + 1 + 1 + 8 + 8
)

var (
	ErrInvalidData = errors.New("unable to use input data")
	ErrBadMagic    = errors.New("not a fast-blur sealed payload")
	ErrBadVersion  = errors.New("unsupported seal format version")
)

// header precedes the obfuscated payload. The salt travels in the clear;
// exposing it doesn't recover the payload without the passphrase.
type header struct {
	magic      uint32
	version    uint8
	mode       uint8
	fixedShift uint8
	saltHi     uint64
	saltLo     uint64
}

func (h *header) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&h.magic),
		bin.Byte(&h.version),
		bin.Byte(&h.mode),
		bin.Byte(&h.fixedShift),
		bin.Int(&h.saltHi),
		bin.Int(&h.saltLo),
	)
}

func (h *header) setSalt(salt Salt) {
	h.saltHi = binary.BigEndian.Uint64(salt[:8])
	h.saltLo = binary.BigEndian.Uint64(salt[8:])
}

func (h *header) salt() Salt {
	salt := make(Salt, SaltSize)
	binary.BigEndian.PutUint64(salt[:8], h.saltHi)
	binary.BigEndian.PutUint64(salt[8:], h.saltLo)
	return salt
}

type sealConfig struct {
	mode  fastblur.Mode
	shift uint8
}

type SealOpt = func(*sealConfig) error

// FixedShift seals in fixed-shift mode with the given constant rotation
// amount instead of the default dynamic mode. The shift is masked into the
// valid 0-7 range.
func FixedShift(shift uint) SealOpt {
	return func(c *sealConfig) error {
		c.mode = fastblur.ModeFixed
		c.shift = uint8(shift & 0x7)
		return nil
	}
}

// Seal obfuscates data with key material derived from pass and prepends a
// header carrying the salt and mode needed to reverse it.
func Seal(gen *KeyGenerator, pass Passphrase, data []byte, opts ...SealOpt) ([]byte, error) {
	cfg := &sealConfig{mode: fastblur.ModeDynamic}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	key, segment, salt, err := gen.GenerateKey(pass)
	if err != nil {
		return nil, err
	}
	eng, err := newEngine(key, segment, cfg.mode, cfg.shift)
	if err != nil {
		return nil, err
	}

	h := header{
		magic:      headerMagic,
		version:    formatVersion,
		mode:       uint8(cfg.mode),
		fixedShift: cfg.shift,
	}
	h.setSalt(salt)

	var buf bytes.Buffer
	buf.Grow(headerSize + len(data))
	if err := h.mapper().Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	buf.Write(eng.Encrypt(data))
	return buf.Bytes(), nil
}

// Unseal reverses Seal with the same passphrase. A wrong passphrase doesn't
// fail; it silently yields wrong bytes, since the format carries no
// integrity information.
func Unseal(gen *KeyGenerator, pass Passphrase, sealed []byte) ([]byte, error) {
	if len(sealed) < headerSize {
		return nil, fmt.Errorf("%w: too short to hold a seal header", ErrInvalidData)
	}
	var h header
	if err := h.mapper().Read(bytes.NewReader(sealed), binary.BigEndian); err != nil {
		return nil, err
	}
	if h.magic != headerMagic {
		return nil, ErrBadMagic
	}
	if h.version != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, h.version)
	}
	if h.mode > uint8(fastblur.ModeFixed) {
		return nil, fmt.Errorf("%w: unknown shift mode %d", ErrInvalidData, h.mode)
	}
	key, segment, err := gen.DeriveKey(pass, h.salt())
	if err != nil {
		return nil, err
	}
	eng, err := newEngine(key, segment, fastblur.Mode(h.mode), h.fixedShift)
	if err != nil {
		return nil, err
	}
	return eng.Decrypt(sealed[headerSize:]), nil
}

func newEngine(key uint64, segment byte, mode fastblur.Mode, shift uint8) (*fastblur.Engine, error) {
	opts := []fastblur.Option{fastblur.WithKey(key), fastblur.WithParallel()}
	if mode == fastblur.ModeFixed {
		opts = append(opts, fastblur.WithFixedShift(uint(shift)))
	} else {
		opts = append(opts, fastblur.WithKeySegment(segment))
	}
	return fastblur.New(opts...)
}
