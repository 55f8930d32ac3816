package fastblur

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStrategy is returned when a strategy value is out of range.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrInvalidThreshold is returned when a parallel threshold is not positive.
	ErrInvalidThreshold = errors.New("parallel threshold must be greater than 0")
)

const (
	// DefaultParallelThreshold is the minimum input length before an engine
	// built with WithParallel hands work to the fork/join executor (16 KiB).
	DefaultParallelThreshold = 16 * 1024

	// Leaf sizes for the fork/join executor. Ranges at or below the leaf size
	// are processed directly instead of being split further.
	leafSizeBatched = 4 * 1024
	leafSizeDirect  = 8 * 1024
	leafSizeLookup  = 16 * 1024

	// Adaptive dispatch boundaries by input length.
	smallInputMax  = 256
	mediumInputMax = 4096
)

// Strategy identifies one of the interchangeable transform implementations.
// All strategies produce byte-identical output for the same key material,
// mode, and input; they differ only in speed/memory trade-offs.
type Strategy uint8

const (
	// StrategyAdaptive picks one of the other strategies from the input
	// length: lookup tables up to 256 bytes, batched up to 4096, direct above.
	StrategyAdaptive Strategy = iota

	// StrategyDirect is the single-pass reference implementation.
	StrategyDirect

	// StrategyUnrolled replicates the loop body four bytes at a time, which
	// helps short inputs.
	StrategyUnrolled

	// StrategyLookup replaces runtime rotations with precomputed 8x256
	// rotation tables, trading memory for speed on small and medium inputs.
	StrategyLookup

	// StrategyBatched processes eight bytes per iteration with the shift
	// amounts precomputed per batch.
	StrategyBatched
)

func (s Strategy) String() string {
	switch s {
	case StrategyAdaptive:
		return "adaptive"
	case StrategyDirect:
		return "direct"
	case StrategyUnrolled:
		return "unrolled"
	case StrategyLookup:
		return "lookup"
	case StrategyBatched:
		return "batched"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a strategy name to its Strategy value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "adaptive":
		return StrategyAdaptive, nil
	case "direct":
		return StrategyDirect, nil
	case "unrolled":
		return StrategyUnrolled, nil
	case "lookup":
		return StrategyLookup, nil
	case "batched":
		return StrategyBatched, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Option is a function that configures an Engine.
type Option func(*config) error

type config struct {
	key               uint64
	segment           byte
	segmentSet        bool
	mode              Mode
	fixedShift        uint
	strategy          Strategy
	parallel          bool
	parallelThreshold int
}

func defaultConfig() *config {
	return &config{
		key:               DefaultKey,
		mode:              ModeDynamic,
		strategy:          StrategyAdaptive,
		parallelThreshold: DefaultParallelThreshold,
	}
}

// WithKey sets the 64-bit master key the key fragments are derived from.
func WithKey(key uint64) Option {
	return func(c *config) error {
		c.key = key
		return nil
	}
}

// WithKeySegment sets the key segment used as the shift mask in dynamic mode.
// When not set, the segment is the third byte of the master key.
func WithKeySegment(segment byte) Option {
	return func(c *config) error {
		c.segment = segment
		c.segmentSet = true
		return nil
	}
}

// WithFixedShift switches the engine to fixed mode with the given constant
// rotation amount. The shift is masked into the valid 0-7 range.
func WithFixedShift(shift uint) Option {
	return func(c *config) error {
		c.mode = ModeFixed
		c.fixedShift = shift & 0x7
		return nil
	}
}

// WithStrategy pins the engine to a single execution strategy instead of the
// default adaptive dispatch.
func WithStrategy(s Strategy) Option {
	return func(c *config) error {
		if s > StrategyBatched {
			return fmt.Errorf("%w: %d", ErrUnknownStrategy, s)
		}
		c.strategy = s
		return nil
	}
}

// WithParallel enables the fork/join executor for inputs at or above
// DefaultParallelThreshold.
func WithParallel() Option {
	return func(c *config) error {
		c.parallel = true
		return nil
	}
}

// WithParallelThreshold enables the fork/join executor and sets the minimum
// input length at which it engages.
func WithParallelThreshold(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidThreshold, n)
		}
		c.parallel = true
		c.parallelThreshold = n
		return nil
	}
}
