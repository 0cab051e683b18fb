package ops

import (
	"math"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/cell/internal/autodiff"
	"github.com/born-ml/cell/internal/tensor"
)

func matrix(values ...float64) *tensor.Tensor[float64] {
	return must.M1(tensor.FromSlice(values, tensor.Shape{2, 2}))
}

func input() *autodiff.Variable[float64] {
	return autodiff.NewVariable(matrix(1, 2, 3, 4))
}

func onesGrad() *tensor.Tensor[float64] {
	return tensor.Ones[float64](tensor.Shape{2, 2})
}

func TestExpOp_CallAndBackward(t *testing.T) {
	op := NewExp[float64]()
	want := matrix(math.Exp(1), math.Exp(2), math.Exp(3), math.Exp(4))

	out := autodiff.Call[float64](op, input())
	assert.True(t, out.Data().AllClose(want, 1e-12, 0), "forward: %+v", out.Data())

	gx, err := op.Backward(onesGrad())
	require.NoError(t, err)
	assert.True(t, gx.AllClose(want, 1e-12, 0), "backward: %+v", gx)
}

func TestExpOp_BackwardScalesUpstream(t *testing.T) {
	op := NewExp[float64]()
	autodiff.Call[float64](op, input())

	gx, err := op.Backward(matrix(2, 0, -1, 0.5))
	require.NoError(t, err)
	want := matrix(2*math.Exp(1), 0, -math.Exp(3), 0.5*math.Exp(4))
	assert.True(t, gx.AllClose(want, 1e-12, 0), "%+v", gx)
}

func TestPowerOp_CallAndBackward(t *testing.T) {
	op := NewPower[float64](5)

	out := autodiff.Call[float64](op, input())
	assert.Equal(t, []float64{1, 32, 243, 1024}, out.Data().Data())
	assert.Equal(t, tensor.Shape{2, 2}, out.Data().Shape())

	gx, err := op.Backward(onesGrad())
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 80, 405, 1280}, gx.Data())
}

func TestPowerOp_ZeroExponent(t *testing.T) {
	op := NewPower[float64](0)

	out := autodiff.Call[float64](op, input())
	assert.Equal(t, []float64{1, 1, 1, 1}, out.Data().Data())

	gx, err := op.Backward(matrix(3, 3, 3, 3))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, gx.Data())
}

func TestPowerOp_NegativeExponentPanics(t *testing.T) {
	assert.Panics(t, func() { NewPower[float64](-1) })
}

func TestPowerOp_Name(t *testing.T) {
	op := NewPower[float32](3)
	assert.Equal(t, "Pow(3)", op.Name())
	assert.Equal(t, 3, op.N())
}

func TestSquareOp_CallAndBackward(t *testing.T) {
	op := NewSquare[float64]()

	out := autodiff.Call[float64](op, input())
	assert.Equal(t, []float64{1, 4, 9, 16}, out.Data().Data())

	gx, err := op.Backward(onesGrad())
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6, 8}, gx.Data())
}

func TestSquareOp_Float32(t *testing.T) {
	op := NewSquare[float32]()
	x := autodiff.NewVariable(must.M1(tensor.FromSlice([]float32{1.5, -2}, tensor.Shape{2})))

	out := autodiff.Call[float32](op, x)
	assert.Equal(t, []float32{2.25, 4}, out.Data().Data())

	gx, err := op.Backward(tensor.Ones[float32](tensor.Shape{2}))
	require.NoError(t, err)
	assert.Equal(t, []float32{3, -4}, gx.Data())
}

func TestPowerTwoAgreesWithSquare(t *testing.T) {
	x := autodiff.NewVariable(must.M1(tensor.FromSlice(
		[]float64{-3, -0.5, 0, 0.25, 1, 7.5}, tensor.Shape{3, 2})))
	gy := must.M1(tensor.FromSlice([]float64{1, -2, 3, 0.5, 4, -1}, tensor.Shape{3, 2}))

	pow := NewPower[float64](2)
	sq := NewSquare[float64]()

	powOut := autodiff.Call[float64](pow, x)
	sqOut := autodiff.Call[float64](sq, x)
	assert.True(t, powOut.Data().AllClose(sqOut.Data(), 1e-12, 0))

	powGrad, err := pow.Backward(gy)
	require.NoError(t, err)
	sqGrad, err := sq.Backward(gy)
	require.NoError(t, err)
	assert.True(t, powGrad.AllClose(sqGrad, 1e-12, 0), "pow %+v square %+v", powGrad, sqGrad)
}

func TestBackwardBeforeCallFails(t *testing.T) {
	functions := []autodiff.Function[float64]{
		NewExp[float64](),
		NewPower[float64](3),
		NewSquare[float64](),
	}
	for _, f := range functions {
		t.Run(f.Name(), func(t *testing.T) {
			assert.False(t, f.Ready())
			gx, err := f.Backward(onesGrad())
			require.Error(t, err)
			assert.True(t, errors.Is(err, autodiff.ErrNotForwarded), "got %v", err)
			assert.Nil(t, gx)
		})
	}
}

func TestBackwardUsesMostRecentCall(t *testing.T) {
	op := NewSquare[float64]()
	autodiff.Call[float64](op, input())
	autodiff.Call[float64](op, autodiff.NewVariable(matrix(10, 20, 30, 40)))

	gx, err := op.Backward(onesGrad())
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 40, 60, 80}, gx.Data())
}

func TestBackwardShapeMismatch(t *testing.T) {
	op := NewExp[float64]()
	autodiff.Call[float64](op, input())

	_, err := op.Backward(tensor.Ones[float64](tensor.Shape{4}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))
	assert.False(t, errors.Is(err, autodiff.ErrNotForwarded))
}

func TestRememberInputWithoutCall(t *testing.T) {
	op := NewSquare[float64]()
	op.RememberInput(matrix(1, 1, 2, 2))
	assert.True(t, op.Ready())

	gx, err := op.Backward(onesGrad())
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 4, 4}, gx.Data())
}

func TestRememberedInputIsPrivateCopy(t *testing.T) {
	op := NewSquare[float64]()
	x := input()
	autodiff.Call[float64](op, x)

	x.Data().Set(100, 0, 0)

	gx, err := op.Backward(onesGrad())
	require.NoError(t, err)
	assert.Equal(t, 2.0, gx.At(0, 0))
}

func TestRememberOutput(t *testing.T) {
	op := NewExp[float64]()
	assert.Nil(t, op.Output())

	y := matrix(1, 2, 3, 4)
	op.RememberOutput(y)
	y.Set(9, 0, 0)
	assert.Equal(t, 1.0, op.Output().At(0, 0))
}

func TestForwardIsPure(t *testing.T) {
	op := NewExp[float64]()
	op.Forward(matrix(1, 2, 3, 4))
	assert.False(t, op.Ready(), "Forward must not remember its input")
}

func TestMulOp(t *testing.T) {
	op := NewMul[float64]()
	a := autodiff.NewVariable(matrix(1, 2, 3, 4))
	b := autodiff.NewVariable(matrix(5, 6, 7, 8))

	out, err := autodiff.CallBinary[float64](op, a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 12, 21, 32}, out.Data().Data())

	ga, gb, err := op.Backward(onesGrad())
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6, 7, 8}, ga.Data())
	assert.Equal(t, []float64{1, 2, 3, 4}, gb.Data())
}

func TestAddOp(t *testing.T) {
	op := NewAdd[float64]()
	a := autodiff.NewVariable(matrix(1, 2, 3, 4))
	b := autodiff.NewVariable(matrix(5, 6, 7, 8))

	out, err := autodiff.CallBinary[float64](op, a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 8, 10, 12}, out.Data().Data())

	gy := matrix(1, 2, 3, 4)
	ga, gb, err := op.Backward(gy)
	require.NoError(t, err)
	assert.Equal(t, gy.Data(), ga.Data())
	assert.Equal(t, gy.Data(), gb.Data())
}

func TestBinaryForwardShapeMismatch(t *testing.T) {
	op := NewAdd[float64]()
	a := autodiff.NewVariable(matrix(1, 2, 3, 4))
	b := autodiff.NewVariable(tensor.Ones[float64](tensor.Shape{2, 1}))

	out, err := autodiff.CallBinary[float64](op, a, b)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))
	assert.False(t, op.Ready())
}

func TestBinaryBackwardBeforeCallFails(t *testing.T) {
	_, _, err := NewMul[float64]().Backward(onesGrad())
	assert.True(t, errors.Is(err, autodiff.ErrNotForwarded))
}
