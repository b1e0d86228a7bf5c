package arith

import "math/big"

var one = big.NewInt(1)

// IsCoprime returns true if gcd(a,b) = 1.
func IsCoprime(a, b *big.Int) bool {
	var gcd big.Int
	return gcd.GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b)).Cmp(one) == 0
}

// Mod returns x mod m in [0, m), for m > 0.
func Mod(x, m *big.Int) *big.Int {
	return new(big.Int).Mod(x, m)
}
