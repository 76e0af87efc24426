package sweep

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest range size worth forking into goroutines; below
// it, goroutine setup/join overhead outweighs the work being parallelized.
const minChunk = 64

// For calls fn(i) for every i in [0,n). When parallel is false, or n is too
// small to amortize goroutine overhead, it runs serially in index order.
// Otherwise it partitions [0,n) into contiguous chunks, one per
// runtime.GOMAXPROCS(0) worker, and runs them concurrently via an
// errgroup.Group, joining before returning.
//
// On the parallel path, a panic raised from within fn is recovered, the
// sweep still runs to completion (remaining chunks are not aborted
// mid-flight — only the panicking chunk's own remaining indices are
// skipped), and the first panic observed is re-raised on the calling
// goroutine after the join. On the serial path a panic is not recovered:
// it propagates at once and the remaining indices are not visited.
func For(n int, parallel bool, fn func(i int)) {
	if n == 0 {
		return
	}
	if !parallel || n < minChunk {
		runSerial(n, fn)
		return
	}
	runParallel(n, fn)
}

func runSerial(n int, fn func(i int)) {
	for i := 0; i < n; i++ {
		fn(i)
	}
}

func runParallel(n int, fn func(i int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var (
		g          errgroup.Group
		once       sync.Once
		firstPanic any
	)

	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}

		start, end := start, end
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					once.Do(func() { firstPanic = r })
				}
			}()
			for i := start; i < end; i++ {
				fn(i)
			}

			return nil
		})
	}

	_ = g.Wait()

	if firstPanic != nil {
		panic(firstPanic)
	}
}
