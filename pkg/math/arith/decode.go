package arith

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	MinBase = 2
	MaxBase = 36
)

// Decode returns the integer represented by raw in the given base.
//
// Digits are taken from the alphabet 0-9a-z and are case-insensitive.
// A single leading sign is accepted. The result is exact regardless of the
// length of raw.
func Decode(raw string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBase, base)
	}
	digits := raw
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		digits = digits[1:]
	}
	if digits == "" {
		return nil, fmt.Errorf("%w: %q has no digits", ErrInvalidDigit, raw)
	}
	for i, c := range digits {
		if digitValue(c) >= base {
			return nil, fmt.Errorf("%w: %q at position %d of %q (base %d)", ErrInvalidDigit, c, i, raw, base)
		}
	}
	// every character was checked above, so SetString cannot fail here
	v, ok := new(big.Int).SetString(raw, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q (base %d)", ErrInvalidDigit, raw, base)
	}
	return v, nil
}

// Encode renders v in the given base using lower-case digits.
func Encode(v *big.Int, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", fmt.Errorf("%w: got %d", ErrInvalidBase, base)
	}
	return v.Text(base), nil
}

// ParseBase parses a decimal, string-encoded base.
func ParseBase(s string) (int, error) {
	base, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidBase, s)
	}
	if base < MinBase || base > MaxBase {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidBase, base)
	}
	return base, nil
}

// digitValue returns the value of c in the 0-9a-z alphabet, or MaxBase if c
// is not in it.
func digitValue(c rune) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return MaxBase
}
