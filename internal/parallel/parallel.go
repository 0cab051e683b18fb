// Package parallel splits elementwise tensor kernels across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config decides whether and how ForRange fans out.
type Config struct {
	Enabled      bool
	NumWorkers   int // upper bound on goroutines per call
	MinChunkSize int // no goroutine gets fewer elements than this
}

// DefaultConfig uses one worker per CPU.
//
// Elementwise kernels are memory bound, so the minimum chunk is much larger
// than a cache line: small tensors always run sequentially.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 16384,
	}
}

// Sequential returns a configuration that never spawns goroutines.
func Sequential() Config {
	return Config{NumWorkers: 1, MinChunkSize: 1}
}

// ForRange calls f(start, end) over disjoint sub-ranges covering [0, n).
// Falls back to a single f(0, n) call if parallelism is disabled or n is too small.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	workers := cfg.NumWorkers
	if !cfg.Enabled || workers <= 1 || n < 2*cfg.MinChunkSize {
		f(0, n)
		return
	}

	chunkSize := max((n+workers-1)/workers, cfg.MinChunkSize)

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunkSize {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			f(lo, hi)
		}(lo, min(lo+chunkSize, n))
	}
	wg.Wait()
}

// For calls f(i) for every i in [0, n), possibly from several goroutines.
func For(n int, f func(i int), cfg Config) {
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}
