package polynomial

import "errors"

var (
	ErrNoPoints   = errors.New("polynomial: no points to interpolate")
	ErrDuplicateX = errors.New("polynomial: two points share the same x")
	ErrNonInteger = errors.New("polynomial: constant term is not an integer")
)
