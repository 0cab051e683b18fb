package autodiff

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/cell/internal/tensor"
)

// Call applies f to x: it runs Forward on x's data, remembers a copy of the
// input, and returns a new variable whose creator is f.
//
// Calling an f that is already Ready replaces its remembered input; any
// variable produced by the earlier call can no longer be differentiated
// through f (Backward reports ErrStaleCreator).
func Call[T tensor.Float](f Function[T], x *Variable[T]) *Variable[T] {
	warnIfReused(f)
	y := f.Forward(x.Data())
	out := NewVariable(y)
	f.RememberInput(x.Data())
	rememberOutput(f, f.RememberOutput, y)
	f.link(x)
	out.SetCreator(f)
	return out
}

// CallBinary applies f to x0 and x1, like Call.
func CallBinary[T tensor.Float](f BinaryFunction[T], x0, x1 *Variable[T]) (*Variable[T], error) {
	y, err := f.Forward(x0.Data(), x1.Data())
	if err != nil {
		return nil, errors.Wrapf(err, "%s", f.Name())
	}
	warnIfReused(f)
	out := NewVariable(y)
	f.RememberInputs(x0.Data(), x1.Data())
	rememberOutput(f, f.RememberOutput, y)
	f.link(x0, x1)
	out.SetCreator(f)
	return out, nil
}

func rememberOutput[T tensor.Float](c Creator[T], remember func(*tensor.Tensor[T]), y *tensor.Tensor[T]) {
	if u, ok := c.(OutputUser); ok && u.UsesOutput() {
		remember(y)
	}
}

func warnIfReused[T tensor.Float](c Creator[T]) {
	if c.Ready() {
		klog.Warningf("%s called again: remembered input of the previous call is discarded", c.Name())
	}
}
