package polynomial

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolynomial_Constant(t *testing.T) {
	secret := big.NewInt(42)
	poly := New(secret, big.NewInt(3), big.NewInt(5))
	require.Equal(t, 0, poly.Constant().Cmp(secret))

	// the polynomial owns its coefficients
	secret.SetInt64(0)
	require.Equal(t, int64(42), poly.Constant().Int64())
}

func TestPolynomial_Evaluate(t *testing.T) {
	polynomial := New(big.NewInt(1), big.NewInt(0), big.NewInt(1))

	for index := 0; index < 100; index++ {
		x := mrand.Uint32()
		result := big.NewInt(int64(x))
		result.Mul(result, result)
		result.Add(result, big.NewInt(1))
		computedResult := polynomial.Evaluate(big.NewInt(int64(x)))
		assert.Equal(t, 0, result.Cmp(computedResult))
	}
}

func TestPolynomial_Degree(t *testing.T) {
	assert.Equal(t, 0, New().Degree())
	assert.Equal(t, 0, New(big.NewInt(7)).Degree())
	assert.Equal(t, 2, New(big.NewInt(7), big.NewInt(0), big.NewInt(1)).Degree())
	assert.Equal(t, 1, New(big.NewInt(7), big.NewInt(2), big.NewInt(0)).Degree())
	assert.Equal(t, 0, New().Evaluate(big.NewInt(9)).Sign())
}

func TestPolynomial_Points(t *testing.T) {
	poly := New(big.NewInt(3), big.NewInt(0), big.NewInt(1))
	points := poly.Points(big.NewInt(1), big.NewInt(2), big.NewInt(3))
	want := []int64{4, 7, 12}
	for i, p := range points {
		assert.Equal(t, int64(i+1), p.X.Int64())
		assert.Equal(t, want[i], p.Y.Int64())
	}
}
