package xi_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wigner/littled"
	"github.com/katalvlaran/wigner/xi"
)

func ones(n int) []float64 {
	cl := make([]float64, n)
	for i := range cl {
		cl[i] = 1
	}

	return cl
}

// TestTransform_Monopole: C_0 = 1 alone gives ξ = 1/(4π) at every angle.
func TestTransform_Monopole(t *testing.T) {
	t.Parallel()

	got, err := xi.Transform(context.Background(), []float64{1}, 0, 0, 0, []float64{0, 0.3, 1.2, math.Pi})
	require.NoError(t, err)
	for _, v := range got {
		assert.InDelta(t, 1/(4*math.Pi), v, 1e-15)
	}
}

// TestTransform_ZeroSeparation checks ξ(0) = Σ(2l+1)/(4π) over l ≥ max(|m1|,|m2|)
// for diagonal orders, and ξ(0) = 0 off the diagonal.
func TestTransform_ZeroSeparation(t *testing.T) {
	t.Parallel()

	const L = 50
	cl := ones(L + 1)

	got, err := xi.Transform(context.Background(), cl, 0, 0, 0, []float64{0})
	require.NoError(t, err)
	assert.InDelta(t, float64((L+1)*(L+1))/(4*math.Pi), got[0], 1e-10)

	got, err = xi.Transform(context.Background(), cl, 0, 2, 2, []float64{0})
	require.NoError(t, err)
	assert.InDelta(t, float64((L+1)*(L+1)-4)/(4*math.Pi), got[0], 1e-8)

	got, err = xi.Transform(context.Background(), cl, 0, 2, -2, []float64{0})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got[0], 1e-12)
}

// TestTransform_MatchesDirectSum compares against a serial sum over littled.
func TestTransform_MatchesDirectSum(t *testing.T) {
	t.Parallel()

	const lMin, lMax, m1, m2 = 3, 400, 2, -1
	cl := make([]float64, lMax-lMin+1)
	for i := range cl {
		l := float64(lMin + i)
		cl[i] = 1 / (l * (l + 1))
	}
	thetas, err := xi.Grid(0, math.Pi, 37)
	require.NoError(t, err)

	want := make([]float64, len(thetas))
	for i, th := range thetas {
		d, err := littled.LittleD(lMin, lMax, m1, m2, th)
		require.NoError(t, err)
		for k := range d {
			want[i] += float64(2*(lMin+k)+1) / (4 * math.Pi) * cl[k] * d[k]
		}
	}

	for _, workers := range []int{1, 3, 16} {
		got, err := xi.Transform(context.Background(), cl, lMin, m1, m2, thetas, xi.WithWorkers(workers))
		require.NoError(t, err)
		if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-13)); diff != "" {
			t.Errorf("workers=%d (-want +got):\n%s", workers, diff)
		}
	}
}

// TestTransform_ClipsBelowOrder: degrees below max(|m1|,|m2|) contribute nothing.
func TestTransform_ClipsBelowOrder(t *testing.T) {
	t.Parallel()

	cl := []float64{5, 4, 3, 2, 1, 0.5}
	thetas := []float64{0.1, 0.7, 2.5}

	full, err := xi.Transform(context.Background(), cl, 0, 2, 1, thetas)
	require.NoError(t, err)
	clipped, err := xi.Transform(context.Background(), cl[2:], 2, 2, 1, thetas)
	require.NoError(t, err)
	assert.Equal(t, clipped, full)

	// Nothing left after clipping.
	got, err := xi.Transform(context.Background(), cl[:2], 0, 3, 0, thetas)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, got)
}

func TestTransform_Degrees(t *testing.T) {
	t.Parallel()

	cl := ones(20)
	rad, err := xi.Transform(context.Background(), cl, 0, 1, 1, []float64{0, math.Pi / 2, math.Pi})
	require.NoError(t, err)
	deg, err := xi.Transform(context.Background(), cl, 0, 1, 1, []float64{0, 90, 180}, xi.WithDegrees())
	require.NoError(t, err)
	if diff := cmp.Diff(rad, deg, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("degrees vs radians (-rad +deg):\n%s", diff)
	}
}

func TestTransform_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, err := xi.Transform(ctx, []float64{1}, -1, 0, 0, []float64{0})
	assert.ErrorIs(t, err, xi.ErrNegativeDegree)
	_, err = xi.Transform(ctx, nil, 0, 0, 0, []float64{0})
	assert.ErrorIs(t, err, xi.ErrEmptyRange)
	_, err = xi.Transform(ctx, []float64{1, math.Inf(1)}, 0, 0, 0, []float64{0})
	assert.ErrorIs(t, err, xi.ErrNaNInf)
	_, err = xi.Transform(ctx, []float64{1}, 0, 0, 0, []float64{0, math.NaN()})
	assert.ErrorIs(t, err, xi.ErrNaNInf)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = xi.Transform(cancelled, []float64{1}, 0, 0, 0, []float64{0})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithWorkers_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "xi: WithWorkers: n must be ≥ 1", func() { xi.WithWorkers(0) })
	assert.NotPanics(t, func() { xi.WithWorkers(1) })
}

func TestGrid(t *testing.T) {
	t.Parallel()

	g, err := xi.Grid(0, 10, 11)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, g)

	g, err = xi.Grid(0.1, 0.7, 7)
	require.NoError(t, err)
	assert.Len(t, g, 7)
	assert.Equal(t, 0.1, g[0])
	assert.Equal(t, 0.7, g[6])

	g, err = xi.Grid(3, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3}, g)

	for _, bad := range [][3]float64{{-1, 1, 5}, {2, 1, 5}, {0, 1, 1}} {
		_, err = xi.Grid(bad[0], bad[1], int(bad[2]))
		assert.ErrorIs(t, err, xi.ErrInvalidGrid, "%v", bad)
	}
	_, err = xi.Grid(0, math.Inf(1), 4)
	assert.ErrorIs(t, err, xi.ErrNaNInf)
}
