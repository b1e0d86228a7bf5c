package reconstruct

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var ErrInconsistentShares = errors.New("reconstruct: subsets of the shares disagree on the secret")

// InconsistencyError reports two k-subsets of a share set that do not
// reconstruct the same secret. The secrets themselves are not included.
type InconsistencyError struct {
	// Selected is the subset the secret was first computed from.
	Selected []*big.Int
	// Alternative is the subset that disagreed.
	Alternative []*big.Int
	// Err is set when the alternative subset failed to interpolate at all.
	Err error
}

func (e InconsistencyError) Error() string {
	msg := fmt.Sprintf("%s: shares {%s} and {%s}", ErrInconsistentShares, join(e.Selected), join(e.Alternative))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e InconsistencyError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInconsistentShares}
	}
	return []error{ErrInconsistentShares, e.Err}
}

func join(xs []*big.Int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = x.String()
	}
	return strings.Join(parts, ", ")
}
