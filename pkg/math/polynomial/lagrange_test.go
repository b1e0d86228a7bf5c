package polynomial

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thandava3114/Catalog-Answers/pkg/math/arith"
	"github.com/Thandava3114/Catalog-Answers/pkg/math/rational"
)

func ints(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}

func randomPolynomial(r *mrand.Rand, degree int, bits uint) *Polynomial {
	bound := new(big.Int).Lsh(big.NewInt(1), bits)
	coefficients := make([]*big.Int, degree+1)
	for i := range coefficients {
		coefficients[i] = new(big.Int).Rand(r, bound)
		if r.Intn(2) == 0 {
			coefficients[i].Neg(coefficients[i])
		}
	}
	return New(coefficients...)
}

func TestLagrange(t *testing.T) {
	N := 10
	allIDs := ints(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	coefsEven, err := Lagrange(allIDs)
	require.NoError(t, err)
	coefsOdd, err := Lagrange(allIDs[:N-1])
	require.NoError(t, err)
	var sumEven, sumOdd rational.Fraction
	for _, c := range coefsEven {
		sumEven = sumEven.Add(c)
	}
	for _, c := range coefsOdd {
		sumOdd = sumOdd.Add(c)
	}
	assert.True(t, sumEven.Equal(rational.FromInt64(1)))
	assert.True(t, sumOdd.Equal(rational.FromInt64(1)))
}

func TestLagrangeFor(t *testing.T) {
	domain := ints(1, 2, 3)
	all, err := Lagrange(domain)
	require.NoError(t, err)
	// l₁ = 3, l₂ = -3, l₃ = 1
	assert.Equal(t, "3", all[0].String())
	assert.Equal(t, "-3", all[1].String())
	assert.Equal(t, "1", all[2].String())

	subset, err := LagrangeFor(domain, 2, 0)
	require.NoError(t, err)
	assert.Len(t, subset, 2)
	assert.True(t, subset[0].Equal(all[0]))
	assert.True(t, subset[2].Equal(all[2]))

	single, err := LagrangeSingle(domain, 1)
	require.NoError(t, err)
	assert.True(t, single.Equal(all[1]))

	_, err = LagrangeFor(domain, 3)
	assert.Error(t, err)

	// non integral coefficients
	half, err := Lagrange(ints(1, 3))
	require.NoError(t, err)
	assert.Equal(t, "3/2", half[0].String())
	assert.Equal(t, "-1/2", half[1].String())
}

func TestInterpolate_Quadratic(t *testing.T) {
	// f(x) = x² + 3
	points := New(big.NewInt(3), big.NewInt(0), big.NewInt(1)).Points(ints(1, 2, 3)...)
	secret, err := Interpolate(points)
	require.NoError(t, err)
	assert.Equal(t, int64(3), secret.Int64())

	// the line through the first two points is 3x + 1
	secret, err = Interpolate(points[:2])
	require.NoError(t, err)
	assert.Equal(t, int64(1), secret.Int64())
}

func TestInterpolate_RoundTrip(t *testing.T) {
	r := mrand.New(mrand.NewSource(0))
	for degree := 0; degree < 8; degree++ {
		poly := randomPolynomial(r, degree, 256)
		xs := make([]*big.Int, degree+1)
		for i := range xs {
			xs[i] = big.NewInt(int64(i*3 + 1))
		}
		r.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })

		secret, err := Interpolate(poly.Points(xs...))
		require.NoError(t, err, "degree %d", degree)
		assert.Equal(t, 0, secret.Cmp(poly.Constant()), "degree %d", degree)
	}
}

func TestInterpolate_SubsetInvariance(t *testing.T) {
	r := mrand.New(mrand.NewSource(1))
	poly := randomPolynomial(r, 2, 128)
	points := poly.Points(ints(1, 2, 3, 4, 5)...)

	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			for k := j + 1; k < len(points); k++ {
				secret, err := Interpolate([]Point{points[i], points[j], points[k]})
				require.NoError(t, err)
				assert.Equal(t, 0, secret.Cmp(poly.Constant()), "subset %d %d %d", i, j, k)
			}
		}
	}
}

// A 40 digit secret and x values past 2⁶⁴ lose precision in float64.
func TestInterpolate_LargeValues(t *testing.T) {
	secret, ok := new(big.Int).SetString("9876543210987654321098765432109876543210", 10)
	require.True(t, ok)
	a1, _ := new(big.Int).SetString("123456789012345678901234567", 10)
	a2, _ := new(big.Int).SetString("-98765432109876543210", 10)
	poly := New(secret, a1, a2)

	base := new(big.Int).Lsh(big.NewInt(1), 70)
	xs := []*big.Int{
		new(big.Int).Add(base, big.NewInt(1)),
		new(big.Int).Add(base, big.NewInt(5)),
		new(big.Int).Add(base, big.NewInt(11)),
	}
	got, err := Interpolate(poly.Points(xs...))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(secret), "got %s", got)
}

func TestInterpolate_Errors(t *testing.T) {
	_, err := Interpolate(nil)
	assert.ErrorIs(t, err, ErrNoPoints)

	_, err = Interpolate([]Point{
		{X: big.NewInt(4), Y: big.NewInt(1)},
		{X: big.NewInt(4), Y: big.NewInt(2)},
	})
	assert.ErrorIs(t, err, ErrDuplicateX)

	// the line through (1, 1) and (3, 2) crosses x = 0 at 1/2
	_, err = Interpolate([]Point{
		{X: big.NewInt(1), Y: big.NewInt(1)},
		{X: big.NewInt(3), Y: big.NewInt(2)},
	})
	assert.ErrorIs(t, err, ErrNonInteger)
}

func TestInterpolateMod(t *testing.T) {
	p, ok := new(big.Int).SetString("170141183460469231731687303715884105727", 10) // 2¹²⁷ - 1
	require.True(t, ok)
	field, err := arith.NewField(p)
	require.NoError(t, err)

	r := mrand.New(mrand.NewSource(2))
	for degree := 0; degree < 6; degree++ {
		poly := randomPolynomial(r, degree, 100)
		xs := make([]*big.Int, degree+1)
		for i := range xs {
			xs[i] = big.NewInt(int64(i + 1))
		}
		points := poly.Points(xs...)

		exact, err := Interpolate(points)
		require.NoError(t, err)
		mod, err := InterpolateMod(points, field)
		require.NoError(t, err)
		assert.Equal(t, 0, mod.Cmp(new(big.Int).Mod(exact, p)), "degree %d", degree)
	}
}

func TestInterpolateMod_Errors(t *testing.T) {
	field, err := arith.NewField(big.NewInt(11))
	require.NoError(t, err)

	_, err = InterpolateMod(nil, field)
	assert.ErrorIs(t, err, ErrNoPoints)

	// 1 ≡ 12 (mod 11)
	_, err = InterpolateMod([]Point{
		{X: big.NewInt(1), Y: big.NewInt(1)},
		{X: big.NewInt(12), Y: big.NewInt(2)},
	}, field)
	assert.ErrorIs(t, err, ErrDuplicateX)

	// the non integral 1/2 from the rational case is 6 in ℤ₁₁
	got, err := InterpolateMod([]Point{
		{X: big.NewInt(1), Y: big.NewInt(1)},
		{X: big.NewInt(3), Y: big.NewInt(2)},
	}, field)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got.Int64())
}
