package polynomial

import (
	"math/big"
)

// Point is a share (x, f(x)) of some polynomial f.
type Point struct {
	X *big.Int
	Y *big.Int
}

// Polynomial represents f(X) = a₀ + a₁⋅X + … + aₜ⋅Xᵗ with integer coefficients.
type Polynomial struct {
	coefficients []*big.Int
}

// New returns the polynomial with the given coefficients, constant first.
// The coefficients are copied. With no coefficients, f is the zero polynomial.
func New(coefficients ...*big.Int) *Polynomial {
	if len(coefficients) == 0 {
		return &Polynomial{coefficients: []*big.Int{new(big.Int)}}
	}
	p := &Polynomial{coefficients: make([]*big.Int, len(coefficients))}
	for i, c := range coefficients {
		p.coefficients[i] = new(big.Int).Set(c)
	}
	return p
}

// Evaluate evaluates a polynomial in a given variable index
// We use Horner's method: https://en.wikipedia.org/wiki/Horner%27s_method
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	result := new(big.Int)
	// reverse order
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		// bₙ₋₁ = bₙ * x + aₙ₋₁
		result.Mul(result, x)
		result.Add(result, p.coefficients[i])
	}
	return result
}

// Points evaluates p at every x.
func (p *Polynomial) Points(xs ...*big.Int) []Point {
	points := make([]Point, len(xs))
	for i, x := range xs {
		points[i] = Point{X: new(big.Int).Set(x), Y: p.Evaluate(x)}
	}
	return points
}

// Constant returns a copy of the constant coefficient of the polynomial.
func (p *Polynomial) Constant() *big.Int {
	return new(big.Int).Set(p.coefficients[0])
}

// Degree is the highest power of the Polynomial.
// Trailing zero coefficients are not counted.
func (p *Polynomial) Degree() int {
	for i := len(p.coefficients) - 1; i > 0; i-- {
		if p.coefficients[i].Sign() != 0 {
			return i
		}
	}
	return 0
}
