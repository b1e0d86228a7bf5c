package rational

import (
	"errors"
	"math/big"

	"github.com/Thandava3114/Catalog-Answers/pkg/math/arith"
)

var (
	ErrZeroDenominator = errors.New("rational: zero denominator")
	ErrDivisionByZero  = errors.New("rational: division by zero")
	ErrNonInteger      = errors.New("rational: value is not an integer")
)

// Fraction is an exact rational number num/den.
//
// A Fraction is always in lowest terms with den > 0. Fractions are values:
// every operation allocates its result and never modifies its operands,
// so they can be shared freely. The zero value is 0/1.
type Fraction struct {
	num *big.Int
	den *big.Int
}

// New returns num/den reduced to lowest terms.
func New(num, den *big.Int) (Fraction, error) {
	if den.Sign() == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	return reduce(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// FromInt returns n/1.
func FromInt(n *big.Int) Fraction {
	return Fraction{num: new(big.Int).Set(n), den: big.NewInt(1)}
}

// FromInt64 returns n/1.
func FromInt64(n int64) Fraction {
	return Fraction{num: big.NewInt(n), den: big.NewInt(1)}
}

// reduce takes ownership of num and den.
func reduce(num, den *big.Int) Fraction {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return Fraction{num: num, den: den.SetInt64(1)}
	}
	var gcd big.Int
	gcd.GCD(nil, nil, new(big.Int).Abs(num), den)
	if gcd.BitLen() > 1 {
		num.Quo(num, &gcd)
		den.Quo(den, &gcd)
	}
	return Fraction{num: num, den: den}
}

func (f Fraction) n() *big.Int {
	if f.num == nil {
		return new(big.Int)
	}
	return f.num
}

func (f Fraction) d() *big.Int {
	if f.den == nil {
		return big.NewInt(1)
	}
	return f.den
}

// Num returns a copy of the numerator.
func (f Fraction) Num() *big.Int { return new(big.Int).Set(f.n()) }

// Den returns a copy of the denominator, which is always positive.
func (f Fraction) Den() *big.Int { return new(big.Int).Set(f.d()) }

// Add returns f + g.
//
//	a/b + c/d = (a⋅d + c⋅b) / (b⋅d)
func (f Fraction) Add(g Fraction) Fraction {
	num := new(big.Int).Mul(f.n(), g.d())
	num.Add(num, new(big.Int).Mul(g.n(), f.d()))
	den := new(big.Int).Mul(f.d(), g.d())
	return reduce(num, den)
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) Fraction {
	return f.Add(g.Negate())
}

// Mul returns f ⋅ g.
func (f Fraction) Mul(g Fraction) Fraction {
	num := new(big.Int).Mul(f.n(), g.n())
	den := new(big.Int).Mul(f.d(), g.d())
	return reduce(num, den)
}

// Div returns f / g, or ErrDivisionByZero if g is 0.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	if g.IsZero() {
		return Fraction{}, ErrDivisionByZero
	}
	num := new(big.Int).Mul(f.n(), g.d())
	den := new(big.Int).Mul(f.d(), g.n())
	return reduce(num, den), nil
}

// Negate returns -f.
func (f Fraction) Negate() Fraction {
	return Fraction{num: new(big.Int).Neg(f.n()), den: new(big.Int).Set(f.d())}
}

// Int returns f as an integer, or ErrNonInteger if the denominator is not 1.
func (f Fraction) Int() (*big.Int, error) {
	if !f.IsInt() {
		return nil, ErrNonInteger
	}
	return f.Num(), nil
}

// IsInt returns true if the denominator is 1.
func (f Fraction) IsInt() bool {
	return f.d().Cmp(big.NewInt(1)) == 0
}

// IsZero returns true if f = 0.
func (f Fraction) IsZero() bool {
	return f.n().Sign() == 0
}

// Sign returns -1, 0 or +1 depending on the sign of f.
func (f Fraction) Sign() int {
	return f.n().Sign()
}

// Cmp compares f and g and returns -1, 0 or +1.
func (f Fraction) Cmp(g Fraction) int {
	lhs := new(big.Int).Mul(f.n(), g.d())
	rhs := new(big.Int).Mul(g.n(), f.d())
	return lhs.Cmp(rhs)
}

// Equal returns true if f = g.
func (f Fraction) Equal(g Fraction) bool {
	// both sides are in lowest terms
	return f.n().Cmp(g.n()) == 0 && f.d().Cmp(g.d()) == 0
}

// IsReduced reports whether f is in lowest terms with a positive denominator.
func (f Fraction) IsReduced() bool {
	return f.d().Sign() > 0 && (f.n().Sign() == 0 && f.d().Cmp(big.NewInt(1)) == 0 || arith.IsCoprime(f.n(), f.d()))
}

// String returns "n" for integers and "n/d" otherwise.
func (f Fraction) String() string {
	if f.IsInt() {
		return f.n().String()
	}
	return f.n().String() + "/" + f.d().String()
}
