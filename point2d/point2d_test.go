package point2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vec2d/array2d"
	"github.com/katalvlaran/vec2d/point2d"
	"github.com/katalvlaran/vec2d/vector2d"
)

// TestDisplacement_PairwiseSub verifies the defining property: row i of the
// displacement equals p1_i − p2_i, typed as a Vector.
func TestDisplacement_PairwiseSub(t *testing.T) {
	p1, err := point2d.FromBuffer([]float64{3, 4, 1, 2})
	require.NoError(t, err)
	p2, err := point2d.FromBuffer([]float64{0, 0, 1, 1})
	require.NoError(t, err)

	d, err := p1.Displacement(p2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 0, 1}, d.Raw())
	assert.Equal(t, []float64{5, 1}, d.Norm(), "displacements are vectors with norms")
}

// TestDisplacement_RowMismatch rejects non-broadcastable pairs.
func TestDisplacement_RowMismatch(t *testing.T) {
	p1, _ := point2d.FromBuffer([]float64{1, 2, 3, 4})
	p2, _ := point2d.FromBuffer([]float64{1, 2, 3, 4, 5, 6})

	_, err := p1.Displacement(p2)
	assert.ErrorIs(t, err, array2d.ErrRowMismatch)
	_, err = p1.EuclidDist(p2)
	assert.ErrorIs(t, err, array2d.ErrRowMismatch)
}

// TestEuclidDist_OneToMany measures one origin against many targets.
func TestEuclidDist_OneToMany(t *testing.T) {
	origin, _ := point2d.FromBuffer([]float64{0, 0})
	targets, _ := point2d.FromBuffer([]float64{3, 4, 0, 2, -6, 8})

	dist, err := targets.EuclidDist(origin)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 2, 10}, dist, 1e-12)

	sq, err := targets.EuclidDistSquared(origin)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{25, 4, 100}, sq, 1e-12)
}

// TestTranslate_RoundTrip moves points out and back.
func TestTranslate_RoundTrip(t *testing.T) {
	p, err := point2d.FromRows([][2]float64{{1, 1}, {2, 2}})
	require.NoError(t, err)
	v, err := vector2d.FromBuffer([]float64{3, -1})
	require.NoError(t, err)

	moved, err := p.Translate(v) // broadcast one vector over both points
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0, 5, 1}, moved.Raw())

	back, err := moved.Translate(v.Scale(-1))
	require.NoError(t, err)
	assert.True(t, back.Equal(p.Array), "translate by -v must undo translate by v")
}

// TestFromBuffer_ShapeGuard keeps the two-column invariant.
func TestFromBuffer_ShapeGuard(t *testing.T) {
	_, err := point2d.FromBuffer([]float64{1, 2, 3})
	assert.ErrorIs(t, err, array2d.ErrBadShape)
}
