package polynomial

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/Thandava3114/Catalog-Answers/pkg/math/rational"
)

// Lagrange returns the Lagrange coefficients at 0 for every x in the interpolation domain,
// in the order of the domain.
func Lagrange(interpolationDomain []*big.Int) ([]rational.Fraction, error) {
	coefficients := make([]rational.Fraction, len(interpolationDomain))
	for j := range interpolationDomain {
		lJ, err := lagrange(interpolationDomain, j)
		if err != nil {
			return nil, err
		}
		coefficients[j] = lJ
	}
	return coefficients, nil
}

// LagrangeFor returns the Lagrange coefficients at 0 for the given subset of
// indices into the interpolation domain.
func LagrangeFor(interpolationDomain []*big.Int, subset ...int) (map[int]rational.Fraction, error) {
	coefficients := make(map[int]rational.Fraction, len(subset))
	for _, j := range subset {
		if j < 0 || j >= len(interpolationDomain) {
			return nil, fmt.Errorf("polynomial: index %d outside of domain of size %d", j, len(interpolationDomain))
		}
		lJ, err := lagrange(interpolationDomain, j)
		if err != nil {
			return nil, err
		}
		coefficients[j] = lJ
	}
	return coefficients, nil
}

// LagrangeSingle returns the lagrange coefficient at 0 of the point with index j.
func LagrangeSingle(interpolationDomain []*big.Int, j int) (rational.Fraction, error) {
	coefficients, err := LagrangeFor(interpolationDomain, j)
	if err != nil {
		return rational.Fraction{}, err
	}
	return coefficients[j], nil
}

// lagrange returns the Lagrange coefficient lⱼ(0), for j in the interpolation domain.
//
// The following formulas are taken from
// https://en.wikipedia.org/wiki/Lagrange_polynomial
//
//	lⱼ(0) = ∏_{m≠j} (0 - xₘ) / (xⱼ - xₘ)
//
// Every factor is kept as an exact fraction.
func lagrange(interpolationDomain []*big.Int, j int) (rational.Fraction, error) {
	xJ := interpolationDomain[j]
	lJ := rational.FromInt64(1)
	for m, xM := range interpolationDomain {
		if m == j {
			continue
		}
		// -xₘ
		num := rational.FromInt(new(big.Int).Neg(xM))
		// xⱼ - xₘ
		den := rational.FromInt(new(big.Int).Sub(xJ, xM))
		factor, err := num.Div(den)
		if errors.Is(err, rational.ErrDivisionByZero) {
			return rational.Fraction{}, fmt.Errorf("%w: x = %s", ErrDuplicateX, xJ)
		}
		if err != nil {
			return rational.Fraction{}, err
		}
		lJ = lJ.Mul(factor)
	}
	return lJ, nil
}

// Interpolate returns f(0) for the unique polynomial f of degree len(points)-1
// passing through all points.
//
//	f(0) = ∑ⱼ yⱼ⋅lⱼ(0)
//
// Points are combined in the order given. ErrNonInteger is returned when f(0)
// is not an integer, meaning the points do not lie on a common polynomial
// with integer coefficients.
func Interpolate(points []Point) (*big.Int, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	xs := make([]*big.Int, len(points))
	for i, p := range points {
		xs[i] = p.X
	}
	coefficients, err := Lagrange(xs)
	if err != nil {
		return nil, err
	}

	var sum rational.Fraction
	for j, p := range points {
		sum = sum.Add(rational.FromInt(p.Y).Mul(coefficients[j]))
	}

	secret, err := sum.Int()
	if err != nil {
		return nil, fmt.Errorf("%w: got %s", ErrNonInteger, sum)
	}
	return secret, nil
}
