package arith

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"
)

// Field wraps a saferith.Modulus for a prime p and converts signed big
// integers into canonical residues of ℤₚ.
type Field struct {
	*saferith.Modulus
	// p as a big.Int, kept for reductions of signed values
	p *big.Int
}

// NewField creates the prime field ℤₚ.
// p must be an odd prime, otherwise ErrInvalidModulus is returned.
func NewField(p *big.Int) (*Field, error) {
	if p == nil || p.Sign() <= 0 || p.Bit(0) == 0 || !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModulus, p)
	}
	pCopy := new(big.Int).Set(p)
	return &Field{
		Modulus: saferith.ModulusFromBytes(pCopy.Bytes()),
		p:       pCopy,
	}, nil
}

// Prime returns a copy of p.
func (f *Field) Prime() *big.Int {
	return new(big.Int).Set(f.p)
}

// Reduce returns x (mod p) as a saferith.Nat, for any sign of x.
func (f *Field) Reduce(x *big.Int) *saferith.Nat {
	r := Mod(x, f.p)
	return new(saferith.Nat).SetBig(r, f.p.BitLen())
}

// Big converts a residue back to a big.Int in [0, p).
func (f *Field) Big(x *saferith.Nat) *big.Int {
	return x.Big()
}

// IsZero returns true if x ≡ 0 (mod p).
func (f *Field) IsZero(x *saferith.Nat) bool {
	return x.EqZero() == 1
}
