// SPDX-License-Identifier: MIT

package factor

import "sync"

// parallelRows splits [0, n) into at most workers contiguous chunks and runs fn on
// each. It returns true only if every chunk returned true. Chunks write disjoint
// rows, so no locking is needed. With one worker fn runs on the caller goroutine.
func parallelRows(n, workers int, fn func(lo, hi int) bool) bool {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return fn(0, n)
	}

	chunk := (n + workers - 1) / workers
	results := make([]bool, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			results[w] = true
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			results[w] = fn(lo, hi)
		}(w, lo, hi)
	}
	wg.Wait()

	for _, ok := range results {
		if !ok {
			return false
		}
	}

	return true
}
