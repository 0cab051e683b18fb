package autodiff

import "github.com/pkg/errors"

var (
	// ErrNotForwarded reports Backward on a function that has no remembered
	// input, i.e. one that was never called.
	ErrNotForwarded = errors.New("backward called before forward")

	// ErrCycle reports a creator chain that leads back to itself.
	ErrCycle = errors.New("computation graph contains a cycle")

	// ErrStaleCreator reports a variable whose creator was called again after
	// producing it, so the creator's remembered input no longer matches.
	ErrStaleCreator = errors.New("creator was re-used after producing this variable")
)
