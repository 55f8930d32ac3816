package fastblur

import "golang.org/x/sync/errgroup"

// forkJoin splits [start, end) at its midpoint until ranges are no larger
// than leaf, running fn on the leaves concurrently. Each call to fn owns its
// range exclusively, so no two goroutines ever write the same byte and no
// locking is needed; the only blocking point is the join of the two halves.
func forkJoin(start, end, leaf int, fn func(start, end int)) {
	if end-start <= leaf {
		fn(start, end)
		return
	}
	mid := start + (end-start)/2
	var g errgroup.Group
	g.Go(func() error {
		forkJoin(start, mid, leaf, fn)
		return nil
	})
	forkJoin(mid, end, leaf, fn)
	// fn cannot fail; Wait is purely the join barrier.
	_ = g.Wait()
}

// leafSize is the largest range a strategy processes without splitting.
func leafSize(s Strategy) int {
	switch s {
	case StrategyBatched:
		return leafSizeBatched
	case StrategyLookup:
		return leafSizeLookup
	default:
		return leafSizeDirect
	}
}
