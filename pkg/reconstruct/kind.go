package reconstruct

import (
	"errors"

	"github.com/Thandava3114/Catalog-Answers/pkg/math/arith"
	"github.com/Thandava3114/Catalog-Answers/pkg/math/polynomial"
	"github.com/Thandava3114/Catalog-Answers/pkg/share"
)

// Kind classifies the errors returned by share extraction and reconstruction.
type Kind string

const (
	KindNone                Kind = ""
	KindInvalidBase         Kind = "InvalidBase"
	KindInvalidDigit        Kind = "InvalidDigit"
	KindInvalidIdentifier   Kind = "InvalidIdentifier"
	KindInvalidThreshold    Kind = "InvalidThreshold"
	KindInvalidModulus      Kind = "InvalidModulus"
	KindDuplicateIdentifier Kind = "DuplicateIdentifier"
	KindDuplicateXValue     Kind = "DuplicateXValue"
	KindInsufficientShares  Kind = "InsufficientShares"
	KindShareCountMismatch  Kind = "ShareCountMismatch"
	KindInconsistentShares  Kind = "InconsistentShares"
	KindNonIntegerResult    Kind = "NonIntegerResult"
	KindUnknown             Kind = "Unknown"
)

// kinds is ordered: the first match wins, so an inconsistency caused by a
// non integral alternative subset is reported as InconsistentShares.
var kinds = []struct {
	kind Kind
	err  error
}{
	{KindInconsistentShares, ErrInconsistentShares},
	{KindInvalidBase, arith.ErrInvalidBase},
	{KindInvalidDigit, arith.ErrInvalidDigit},
	{KindInvalidModulus, arith.ErrInvalidModulus},
	{KindInvalidIdentifier, share.ErrInvalidIdentifier},
	{KindInvalidThreshold, share.ErrInvalidThreshold},
	{KindDuplicateIdentifier, share.ErrDuplicateIdentifier},
	{KindInsufficientShares, share.ErrInsufficientShares},
	{KindShareCountMismatch, share.ErrShareCountMismatch},
	{KindDuplicateXValue, polynomial.ErrDuplicateX},
	{KindNonIntegerResult, polynomial.ErrNonInteger},
}

// KindOf returns the Kind of err, KindNone for nil and KindUnknown for
// errors that do not come from this module.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}

// sentinel returns the error a Kind was derived from.
func (k Kind) sentinel() error {
	for _, entry := range kinds {
		if entry.kind == k {
			return entry.err
		}
	}
	return nil
}
