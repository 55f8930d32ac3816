package blurfile

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	// DefaultIterations is the scrypt work factor. It's deliberately modest:
	// the payload is obfuscated, not encrypted, so the passphrase is a
	// convenience rather than a security boundary.
	DefaultIterations uint64 = 1 << 15

	// DefaultRelBlockSize is the scrypt relative block size.
	DefaultRelBlockSize uint8 = 8

	// DefaultCpuCost is the scrypt parallelism factor.
	DefaultCpuCost uint8 = 1

	// SaltSize is the length of the random salt stored in the seal header.
	SaltSize = 16

	// 8 key bytes plus the segment byte.
	derivedLen = 9
)

var (
	ErrEmptyPassPhrase = errors.New("cannot use an empty passphrase")
)

// Passphrase is a human-readable string used to derive key material.
type Passphrase []byte

// Salt is a slice of secure random bytes mixed into key derivation so the
// same passphrase yields different key material per seal.
type Salt []byte

// KeyGenerator derives a fast-blur master key and key segment from a
// passphrase using scrypt.
type KeyGenerator struct {
	iterations        uint64
	relativeBlockSize uint8
	cpuCost           uint8
}

type GeneratorOpt = func(*KeyGenerator) error

// SetIterations allows the caller to customize the scrypt iteration count.
// Only use this option if you know what you're doing.
func SetIterations(iterations uint64) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if iterations <= 1 {
			return errors.New("iterations cannot be <= 1")
		}
		if iterations&(iterations-1) != 0 {
			return errors.New("iterations must be a power of 2")
		}
		gen.iterations = iterations
		return nil
	}
}

// SetCPUCost sets the parallelism factor for key derivation from the default of 1.
func SetCPUCost(cost uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if cost < DefaultCpuCost {
			return errors.New("cpu cost must be at least 1")
		}
		gen.cpuCost = cost
		return nil
	}
}

// SetRelativeBlockSize sets the scrypt relative block size.
func SetRelativeBlockSize(size uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if size < DefaultRelBlockSize {
			return errors.New("relative block size must be at least 8")
		}
		gen.relativeBlockSize = size
		return nil
	}
}

// NewKeyGenerator creates a new KeyGenerator using the options provided as
// zero or more GeneratorOpt.
func NewKeyGenerator(opts ...GeneratorOpt) (*KeyGenerator, error) {
	gen := &KeyGenerator{
		iterations:        DefaultIterations,
		relativeBlockSize: DefaultRelBlockSize,
		cpuCost:           DefaultCpuCost,
	}
	for _, opt := range opts {
		if err := opt(gen); err != nil {
			return nil, err
		}
	}
	return gen, nil
}

// GenerateKey derives a master key and key segment from pass using a fresh
// random salt, and returns the salt so it can be stored alongside the payload.
func (g *KeyGenerator) GenerateKey(pass Passphrase) (key uint64, segment byte, salt Salt, err error) {
	if len(pass) == 0 {
		return 0, 0, nil, ErrEmptyPassPhrase
	}
	salt = make(Salt, SaltSize)
	if _, err = rand.Read(salt); err != nil {
		return 0, 0, nil, err
	}
	key, segment, err = g.derive(pass, salt)
	if err != nil {
		return 0, 0, nil, err
	}
	return key, segment, salt, nil
}

// DeriveKey recovers the key material for pass and a previously stored salt.
// This doesn't ensure that the given passphrase is the *correct* passphrase
// used to seal the payload.
func (g *KeyGenerator) DeriveKey(pass Passphrase, salt Salt) (key uint64, segment byte, err error) {
	if len(pass) == 0 {
		return 0, 0, ErrEmptyPassPhrase
	}
	if len(salt) != SaltSize {
		return 0, 0, fmt.Errorf("expected a %d byte salt, got %d", SaltSize, len(salt))
	}
	return g.derive(pass, salt)
}

func (g *KeyGenerator) derive(pass Passphrase, salt Salt) (uint64, byte, error) {
	buf, err := scrypt.Key(pass, salt, int(g.iterations), int(g.relativeBlockSize), int(g.cpuCost), derivedLen)
	if err != nil {
		return 0, 0, err
	}
	return binary.BigEndian.Uint64(buf[:8]), buf[8], nil
}
