package polynomial

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"

	"github.com/Thandava3114/Catalog-Answers/pkg/math/arith"
)

// InterpolateMod returns f(0) mod p for the unique polynomial f over ℤₚ of
// degree len(points)-1 passing through all points. Coordinates are reduced
// mod p first, so two x that are congruent mod p return ErrDuplicateX.
//
// The result is in [0, p).
func InterpolateMod(points []Point, field *arith.Field) (*big.Int, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	xs := make([]*saferith.Nat, len(points))
	for i, p := range points {
		xs[i] = field.Reduce(p.X)
	}

	sum := new(saferith.Nat).SetUint64(0)
	for j, p := range points {
		lJ, err := lagrangeMod(xs, j, field)
		if err != nil {
			return nil, fmt.Errorf("%w: x = %s", err, p.X)
		}
		// sum += yⱼ⋅lⱼ(0)
		term := new(saferith.Nat).ModMul(field.Reduce(p.Y), lJ, field.Modulus)
		sum.ModAdd(sum, term, field.Modulus)
	}
	return field.Big(sum), nil
}

// lagrangeMod returns lⱼ(0) in ℤₚ.
//
//	         ∏_{m≠j} -xₘ
//	lⱼ(0) = ---------------
//	        ∏_{m≠j} xⱼ - xₘ
//
// The denominator is inverted once, after the product.
func lagrangeMod(xs []*saferith.Nat, j int, field *arith.Field) (*saferith.Nat, error) {
	num := new(saferith.Nat).SetUint64(1)
	den := new(saferith.Nat).SetUint64(1)
	tmp := new(saferith.Nat)
	for m, xM := range xs {
		if m == j {
			continue
		}
		tmp.ModNeg(xM, field.Modulus)
		num.ModMul(num, tmp, field.Modulus)

		tmp.ModSub(xs[j], xM, field.Modulus)
		if field.IsZero(tmp) {
			return nil, ErrDuplicateX
		}
		den.ModMul(den, tmp, field.Modulus)
	}
	denInv := new(saferith.Nat).ModInverse(den, field.Modulus)
	return num.ModMul(num, denInv, field.Modulus), nil
}
