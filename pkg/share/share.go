package share

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"

	"github.com/Thandava3114/Catalog-Answers/pkg/math/arith"
	"github.com/Thandava3114/Catalog-Answers/pkg/math/polynomial"
)

// Share is one point of a secret sharing polynomial, with y encoded as a
// digit string in some base. A Share is immutable once created.
type Share struct {
	x     *big.Int
	base  int
	value string
	// y is Value decoded in Base
	y *big.Int
}

// New decodes value in the given base and returns the share at x.
// x must be at least 1.
func New(x *big.Int, base int, value string) (Share, error) {
	if x == nil || x.Sign() <= 0 {
		return Share{}, fmt.Errorf("%w: got %v", ErrInvalidIdentifier, x)
	}
	y, err := arith.Decode(value, base)
	if err != nil {
		return Share{}, err
	}
	return Share{
		x:     new(big.Int).Set(x),
		base:  base,
		value: value,
		y:     y,
	}, nil
}

// X returns a copy of the share identifier.
func (s Share) X() *big.Int { return new(big.Int).Set(s.x) }

// Base returns the base Value is written in.
func (s Share) Base() int { return s.base }

// Value returns the encoded y coordinate.
func (s Share) Value() string { return s.value }

// Y returns a copy of the decoded y coordinate.
func (s Share) Y() *big.Int { return new(big.Int).Set(s.y) }

// Point returns the decoded point (x, y).
func (s Share) Point() polynomial.Point {
	return polynomial.Point{X: s.X(), Y: s.Y()}
}

func (s Share) String() string {
	return fmt.Sprintf("%s: %s (base %d)", s.x, s.value, s.base)
}

// WriteTo implements io.WriterTo, writing x and the decoded y with a
// length prefix each.
func (s Share) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, v := range []*big.Int{s.x, s.y} {
		b, err := v.GobEncode()
		if err != nil {
			return total, err
		}
		lenBuffer := make([]byte, 4)
		binary.BigEndian.PutUint32(lenBuffer, uint32(len(b)))
		n, err := w.Write(lenBuffer)
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = w.Write(b)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Domain implements hash.WriterToWithDomain.
func (Share) Domain() string { return "Share" }
