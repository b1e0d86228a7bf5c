package arith

import "errors"

var (
	ErrInvalidBase    = errors.New("arith: base must be in [2, 36]")
	ErrInvalidDigit   = errors.New("arith: invalid digit for base")
	ErrInvalidModulus = errors.New("arith: modulus must be an odd prime")
)
