package autodiff

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/cell/internal/tensor"
)

// entry is one recorded application: the creator and the variable it produced.
type entry[T tensor.Float] struct {
	creator Creator[T]
	output  *Variable[T]
}

// gradientTape holds the creators reachable from an output, ordered so that
// every creator comes after the creators of its inputs.
type gradientTape[T tensor.Float] struct {
	entries []entry[T]
}

// DFS visit states.
const (
	unvisited = iota
	onStack
	done
)

// frame is one level of the explicit DFS stack.
type frame[T tensor.Float] struct {
	entry[T]
	next int // index of the next input to visit
}

// record builds the tape for root by a depth-first walk of creator links.
// Creators are appended in post-order, so walking the tape in reverse visits
// every consumer of a variable before that variable's creator.
func record[T tensor.Float](root *Variable[T]) (*gradientTape[T], error) {
	tape := &gradientTape[T]{}
	if root.creator == nil {
		return tape, nil
	}

	state := make(map[Creator[T]]int)
	producer := make(map[Creator[T]]*Variable[T])

	push := func(stack []frame[T], v *Variable[T]) ([]frame[T], error) {
		c := v.creator
		if v.creatorEpoch != c.epoch() {
			return nil, errors.Wrapf(ErrStaleCreator, "%s (variable %q)", c.Name(), v.name)
		}
		if state[c] == onStack {
			return nil, errors.Wrapf(ErrCycle, "%s is its own ancestor", c.Name())
		}
		if prev, ok := producer[c]; ok && prev != v {
			return nil, errors.Wrapf(ErrStaleCreator, "%s produced more than one variable", c.Name())
		}
		if state[c] == done {
			return stack, nil
		}
		state[c] = onStack
		producer[c] = v
		return append(stack, frame[T]{entry: entry[T]{creator: c, output: v}}), nil
	}

	stack, err := push(nil, root)
	if err != nil {
		return nil, err
	}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		inputs := top.creator.Inputs()
		if top.next < len(inputs) {
			in := inputs[top.next]
			top.next++
			if in.creator == nil {
				continue
			}
			if stack, err = push(stack, in); err != nil {
				return nil, err
			}
			continue
		}
		state[top.creator] = done
		tape.entries = append(tape.entries, top.entry)
		stack = stack[:len(stack)-1]
	}
	return tape, nil
}

// backward walks the tape in reverse, starting from seed at the root, and
// returns the gradient of every variable reached.
func (t *gradientTape[T]) backward(root *Variable[T], seed *tensor.Tensor[T]) (map[*Variable[T]]*tensor.Tensor[T], error) {
	grads := map[*Variable[T]]*tensor.Tensor[T]{root: seed}

	for i := len(t.entries) - 1; i >= 0; i-- {
		e := t.entries[i]
		gy, ok := grads[e.output]
		if !ok {
			continue
		}
		klog.V(2).Infof("backward: %s (generation %d) output %v", e.creator.Name(), e.creator.Generation(), gy.Shape())

		inputGrads, err := computeInputGrads(e.creator, gy)
		if err != nil {
			return nil, errors.WithMessagef(err, "backward through %s", e.creator.Name())
		}
		if err := accumulateGrads(e.creator.Inputs(), inputGrads, grads); err != nil {
			return nil, errors.WithMessagef(err, "accumulating gradients of %s", e.creator.Name())
		}
	}
	return grads, nil
}

// computeInputGrads dispatches to the creator's Backward.
// Panics raised by a Function implementation are returned as errors,
// whatever the panic value.
func computeInputGrads[T tensor.Float](c Creator[T], gy *tensor.Tensor[T]) (inputGrads []*tensor.Tensor[T], err error) {
	exception := exceptions.TryCatch[any](func() {
		switch f := c.(type) {
		case Function[T]:
			var gx *tensor.Tensor[T]
			gx, err = f.Backward(gy)
			inputGrads = []*tensor.Tensor[T]{gx}
		case BinaryFunction[T]:
			var gx0, gx1 *tensor.Tensor[T]
			gx0, gx1, err = f.Backward(gy)
			inputGrads = []*tensor.Tensor[T]{gx0, gx1}
		default:
			err = errors.Errorf("%s (%T) implements neither Function nor BinaryFunction", c.Name(), c)
		}
	})
	if exception != nil {
		if e, ok := exception.(error); ok {
			return nil, errors.WithMessagef(e, "%s.Backward panicked", c.Name())
		}
		return nil, errors.Errorf("%s.Backward panicked: %v", c.Name(), exception)
	}
	return inputGrads, err
}

// accumulateGrads sums each input gradient into grads. A variable consumed
// more than once receives the sum of all contributions.
func accumulateGrads[T tensor.Float](inputs []*Variable[T], inputGrads []*tensor.Tensor[T], grads map[*Variable[T]]*tensor.Tensor[T]) error {
	for j, input := range inputs {
		if j >= len(inputGrads) {
			break
		}
		g := inputGrads[j]
		if g == nil {
			continue
		}
		if err := CheckGradShape(g, input.data); err != nil {
			return err
		}
		existing, ok := grads[input]
		if !ok {
			grads[input] = g
			continue
		}
		sum, err := existing.Add(g)
		if err != nil {
			return err
		}
		grads[input] = sum
	}
	return nil
}

// NumOps returns the number of recorded creators.
func (t *gradientTape[T]) NumOps() int {
	return len(t.entries)
}
