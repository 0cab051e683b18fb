package autodiff_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/cell/autodiff"
	"github.com/born-ml/cell/tensor"
)

// cube is a user-defined Function built on the exported Unary state.
type cube struct {
	autodiff.Unary[float64]
}

func (c *cube) Name() string { return "Cube" }

func (c *cube) Forward(x *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	return x.Map(func(v float64) float64 { return v * v * v })
}

func (c *cube) Backward(gy *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	x, err := c.Input()
	if err != nil {
		return nil, err
	}
	if err := autodiff.CheckGradShape(gy, x); err != nil {
		return nil, err
	}
	return gy.Mul(x.Map(func(v float64) float64 { return 3 * v * v }))
}

func TestExpSquareChain(t *testing.T) {
	x := autodiff.NewVariable(tensor.Scalar(0.5))
	y := autodiff.Call[float64](autodiff.Square[float64](), autodiff.Call[float64](autodiff.Exp[float64](), x))

	require.NoError(t, y.Backward())
	assert.InDelta(t, 2*math.E, x.Grad().Item(), 1e-12)
}

func TestCustomFunction(t *testing.T) {
	x := autodiff.NewVariable(tensor.MustFromSlice([]float64{1, 2}, tensor.Shape{2}))
	y := autodiff.Call[float64](&cube{}, x)
	z, err := autodiff.CallBinary[float64](autodiff.Mul[float64](), y, x)
	require.NoError(t, err)

	// z = x⁴, dz/dx = 4x³
	require.NoError(t, z.Backward())
	assert.Equal(t, []float64{4, 32}, x.Grad().Data())
}

func TestCustomFunctionBeforeCall(t *testing.T) {
	_, err := (&cube{}).Backward(tensor.Ones[float64](tensor.Shape{1}))
	assert.True(t, errors.Is(err, autodiff.ErrNotForwarded))
}

func TestPowerAndAdd(t *testing.T) {
	x := autodiff.NewVariable(tensor.MustFromSlice([]float64{2}, tensor.Shape{1}))
	a := autodiff.Call[float64](autodiff.Power[float64](3), x)
	y, err := autodiff.CallBinary[float64](autodiff.Add[float64](), a, x)
	require.NoError(t, err)

	// y = x³ + x, dy/dx = 3x² + 1
	require.NoError(t, y.Backward(autodiff.WithRetainGrad(false)))
	assert.Equal(t, 13.0, x.Grad().At(0))
	assert.Nil(t, a.Grad())
}

func TestSigmoidOfDifference(t *testing.T) {
	a := autodiff.NewVariable(tensor.Scalar(3.0))
	b := autodiff.NewVariable(tensor.Scalar(3.0))
	d, err := autodiff.CallBinary[float64](autodiff.Sub[float64](), a, b)
	require.NoError(t, err)
	y := autodiff.Call[float64](autodiff.Sigmoid[float64](), d)

	require.NoError(t, y.Backward())
	assert.Equal(t, 0.25, a.Grad().Item())
	assert.Equal(t, -0.25, b.Grad().Item())
}
