package autodiff

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/cell/internal/tensor"
)

// BackwardOption configures Variable.Backward.
type BackwardOption func(*backwardOptions)

type backwardOptions struct {
	seed       any
	retainGrad bool
}

// WithSeed sets the gradient fed to the output node. It must have the
// output's shape and element type. The default is a tensor of ones.
func WithSeed[T tensor.Float](seed *tensor.Tensor[T]) BackwardOption {
	return func(o *backwardOptions) {
		o.seed = seed
	}
}

// WithRetainGrad controls whether non-leaf variables keep their gradient.
// Defaults to true.
func WithRetainGrad(retain bool) BackwardOption {
	return func(o *backwardOptions) {
		o.retainGrad = retain
	}
}

// Backward propagates gradients from v to every variable it was computed from.
//
// Creators are visited in reverse topological order; a variable consumed by
// several functions receives the sum of their contributions. Gradients are
// added to whatever Grad already holds, so repeated passes accumulate; use
// ClearGrad to start over.
//
// Example:
//
//	x := autodiff.NewVariable(data)
//	y := autodiff.Call(ops.NewExp[float64](), x)
//	if err := y.Backward(); err != nil { ... }
//	dx := x.Grad()
func (v *Variable[T]) Backward(opts ...BackwardOption) error {
	o := backwardOptions{retainGrad: true}
	for _, opt := range opts {
		opt(&o)
	}

	seed := tensor.OnesLike(v.data)
	if o.seed != nil {
		s, ok := o.seed.(*tensor.Tensor[T])
		if !ok {
			return errors.Errorf("seed is %T, want %T", o.seed, seed)
		}
		if err := CheckGradShape(s, v.data); err != nil {
			return errors.WithMessage(err, "seed")
		}
		seed = s
	}

	tape, err := record(v)
	if err != nil {
		return err
	}
	grads, err := tape.backward(v, seed)
	if err != nil {
		return err
	}
	klog.V(1).Infof("backward: %d functions, %d variables reached", tape.NumOps(), len(grads))

	for x, g := range grads {
		if !o.retainGrad && !x.IsLeaf() {
			continue
		}
		if x.grad == nil {
			x.grad = g.Clone()
			continue
		}
		sum, err := x.grad.Add(g)
		if err != nil {
			return errors.WithMessagef(err, "accumulating into existing gradient of %s", x)
		}
		x.grad = sum
	}
	return nil
}
