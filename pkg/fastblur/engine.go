package fastblur

// Engine applies the XOR+rotate transform to byte sequences. An Engine is
// constructed once, holds only immutable state, and is safe for concurrent
// use by multiple goroutines.
type Engine struct {
	key               keyMaterial
	mode              Mode
	strategy          Strategy
	parallel          bool
	parallelThreshold int
	tables            *shiftTables // built only when the lookup path is reachable
}

// rangeFunc transforms the half-open range [start, end) of data in place,
// using absolute slice indexes so disjoint ranges of one buffer can be
// processed independently.
type rangeFunc func(data []byte, start, end int)

// New constructs an Engine from the given options. Without options the engine
// uses DefaultKey in dynamic mode with adaptive strategy selection and no
// parallel processing.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	segment := cfg.segment
	if !cfg.segmentSet {
		segment = byte(cfg.key >> 16)
	}
	e := &Engine{
		key:               deriveKeyMaterial(cfg.key, segment, cfg.mode, cfg.fixedShift),
		mode:              cfg.mode,
		strategy:          cfg.strategy,
		parallel:          cfg.parallel,
		parallelThreshold: cfg.parallelThreshold,
	}
	if e.strategy == StrategyLookup || e.strategy == StrategyAdaptive {
		e.tables = buildShiftTables()
	}
	return e, nil
}

// Mode reports the engine's shift mode.
func (e *Engine) Mode() Mode { return e.mode }

// Strategy reports the engine's configured strategy.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Encrypt returns the obfuscated form of data. The input slice is never
// mutated; nil and empty inputs are returned unchanged.
func (e *Engine) Encrypt(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	out := make([]byte, len(data))
	copy(out, data)
	e.EncryptInPlace(out)
	return out
}

// Decrypt reverses Encrypt. The input slice is never mutated; nil and empty
// inputs are returned unchanged.
func (e *Engine) Decrypt(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	out := make([]byte, len(data))
	copy(out, data)
	e.DecryptInPlace(out)
	return out
}

// EncryptInPlace obfuscates data in the caller's buffer. An empty or nil
// slice is a no-op.
func (e *Engine) EncryptInPlace(data []byte) {
	if len(data) == 0 {
		return
	}
	e.run(data, false)
}

// DecryptInPlace reverses EncryptInPlace in the caller's buffer. An empty or
// nil slice is a no-op.
func (e *Engine) DecryptInPlace(data []byte) {
	if len(data) == 0 {
		return
	}
	e.run(data, true)
}

func (e *Engine) run(data []byte, inverse bool) {
	strat := e.strategy
	if strat == StrategyAdaptive {
		strat = pickStrategy(len(data))
	}
	fn := e.rangeFuncFor(strat, inverse)
	if e.parallel && len(data) >= e.parallelThreshold {
		forkJoin(0, len(data), leafSize(strat), func(start, end int) {
			fn(data, start, end)
		})
		return
	}
	fn(data, 0, len(data))
}

// pickStrategy is the adaptive dispatcher: a static size-based branch, not a
// cost model.
func pickStrategy(n int) Strategy {
	switch {
	case n <= smallInputMax:
		return StrategyLookup
	case n <= mediumInputMax:
		return StrategyBatched
	default:
		return StrategyDirect
	}
}

func (e *Engine) rangeFuncFor(s Strategy, inverse bool) rangeFunc {
	if inverse {
		switch s {
		case StrategyUnrolled:
			return e.decryptUnrolled
		case StrategyLookup:
			return e.decryptLookup
		case StrategyBatched:
			return e.decryptBatched
		default:
			return e.decryptDirect
		}
	}
	switch s {
	case StrategyUnrolled:
		return e.encryptUnrolled
	case StrategyLookup:
		return e.encryptLookup
	case StrategyBatched:
		return e.encryptBatched
	default:
		return e.encryptDirect
	}
}

// shiftAt returns the rotation amount for the byte at position i.
func (e *Engine) shiftAt(i int) uint {
	if e.mode == ModeFixed {
		return e.key.shift
	}
	return dynamicShift(i, e.key.mask)
}
