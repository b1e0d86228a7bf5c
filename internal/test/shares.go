// Package test builds share sets from known polynomials for tests.
package test

import (
	"math/big"
	mrand "math/rand"
	"strconv"

	"github.com/Thandava3114/Catalog-Answers/pkg/math/arith"
	"github.com/Thandava3114/Catalog-Answers/pkg/math/polynomial"
	"github.com/Thandava3114/Catalog-Answers/pkg/share"
)

// Bases is the default rotation of bases used to encode y values.
var Bases = []int{10, 2, 16, 36, 8, 3}

// IDs returns the x coordinates 1 … n.
func IDs(n int) []*big.Int {
	ids := make([]*big.Int, n)
	for i := range ids {
		ids[i] = big.NewInt(int64(i + 1))
	}
	return ids
}

// Polynomial returns a random polynomial of the given degree whose
// coefficients, constant included, are signed and below 2^bits in absolute value.
func Polynomial(r *mrand.Rand, degree int, bits uint) *polynomial.Polynomial {
	bound := new(big.Int).Lsh(big.NewInt(1), bits)
	coefficients := make([]*big.Int, degree+1)
	for i := range coefficients {
		c := new(big.Int).Rand(r, bound)
		if r.Intn(2) == 1 {
			c.Neg(c)
		}
		coefficients[i] = c
	}
	return polynomial.New(coefficients...)
}

// Input evaluates poly at every x and returns the share set with threshold k,
// encoding the i-th y value in Bases[i % len(Bases)].
func Input(poly *polynomial.Polynomial, k int, xs ...*big.Int) share.Input {
	return InputWithBases(poly, k, Bases, xs...)
}

// InputWithBases is Input with an explicit rotation of bases.
func InputWithBases(poly *polynomial.Polynomial, k int, bases []int, xs ...*big.Int) share.Input {
	in := share.Input{
		Keys:   share.Meta{N: len(xs), K: k},
		Shares: make(map[string]share.RawShare, len(xs)),
	}
	for i, p := range poly.Points(xs...) {
		base := bases[i%len(bases)]
		value, err := arith.Encode(p.Y, base)
		if err != nil {
			panic(err)
		}
		in.Shares[p.X.String()] = share.RawShare{Base: strconv.Itoa(base), Value: value}
	}
	return in
}

// Tamper replaces the y value of share x by y+delta, keeping its base.
func Tamper(in share.Input, x int64, delta int64) share.Input {
	out := share.Input{Keys: in.Keys, Shares: make(map[string]share.RawShare, len(in.Shares))}
	for id, raw := range in.Shares {
		out.Shares[id] = raw
	}
	id := strconv.FormatInt(x, 10)
	raw := out.Shares[id]
	base, err := arith.ParseBase(raw.Base)
	if err != nil {
		panic(err)
	}
	y, err := arith.Decode(raw.Value, base)
	if err != nil {
		panic(err)
	}
	y.Add(y, big.NewInt(delta))
	raw.Value, _ = arith.Encode(y, base)
	out.Shares[id] = raw
	return out
}
