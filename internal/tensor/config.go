package tensor

import (
	"sync/atomic"

	"github.com/born-ml/cell/internal/parallel"
)

var parallelConfig atomic.Pointer[parallel.Config]

func init() {
	cfg := parallel.DefaultConfig()
	parallelConfig.Store(&cfg)
}

// SetParallelConfig replaces the configuration used by elementwise kernels.
func SetParallelConfig(cfg parallel.Config) {
	parallelConfig.Store(&cfg)
}

// ParallelConfig returns the configuration used by elementwise kernels.
func ParallelConfig() parallel.Config {
	return *parallelConfig.Load()
}
