package reconstruct

import (
	"fmt"
	"math/big"

	"github.com/Thandava3114/Catalog-Answers/internal/hash"
	"github.com/Thandava3114/Catalog-Answers/internal/types"
	"github.com/Thandava3114/Catalog-Answers/pkg/math/arith"
	"github.com/Thandava3114/Catalog-Answers/pkg/math/polynomial"
	"github.com/Thandava3114/Catalog-Answers/pkg/share"
)

const fingerprintContext = "sss/reconstruct/v1"

// Reconstruct recovers the secret of req from the first Threshold shares,
// by ascending x.
//
// When more shares than the threshold are present, the secret is checked
// against another k-subset (the last Threshold shares, or every subset up to
// a limit with WithExhaustiveCheck). Any disagreement returns an
// InconsistencyError and no secret.
//
// Reconstruct has no side effects besides logging, and calls with equal
// requests and options return equal results.
func Reconstruct(req *share.Request, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	k, n := req.Threshold, len(req.Shares)
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", share.ErrInvalidThreshold, k)
	}
	if n < k {
		return nil, fmt.Errorf("%w: need %d, got %d", share.ErrInsufficientShares, k, n)
	}

	interpolate := polynomial.Interpolate
	mode := types.ModeRational
	var modulus *big.Int
	if cfg.modulus != nil {
		field, err := arith.NewField(cfg.modulus)
		if err != nil {
			return nil, err
		}
		interpolate = func(points []polynomial.Point) (*big.Int, error) {
			return polynomial.InterpolateMod(points, field)
		}
		mode = types.ModeField
		modulus = field.Prime()
	}

	logger := cfg.logger.With().Int("threshold", k).Int("shares", n).Str("mode", string(mode)).Logger()

	selected := firstSubset(k)
	logger.Debug().Str("subset", join(req.IDs(selected...))).Msg("interpolating selected subset")
	secret, err := interpolate(req.Points(selected...))
	if err != nil {
		return nil, err
	}

	checked := 0
	if n > k {
		check := func(alternative []int) error {
			logger.Debug().Str("subset", join(req.IDs(alternative...))).Msg("checking alternative subset")
			other, err := interpolate(req.Points(alternative...))
			if err != nil || other.Cmp(secret) != 0 {
				return InconsistencyError{
					Selected:    req.IDs(selected...),
					Alternative: req.IDs(alternative...),
					Err:         err,
				}
			}
			checked++
			return nil
		}

		if cfg.exhaustiveLimit > 0 {
			alternative := firstSubset(k)
			for checked < cfg.exhaustiveLimit && nextSubset(alternative, n) {
				if err := check(alternative); err != nil {
					return nil, err
				}
			}
		} else if err := check(lastSubset(n, k)); err != nil {
			return nil, err
		}
	}
	logger.Debug().Int("checked", checked).Msg("reconstructed secret")

	digest, err := fingerprint(req, selected, mode, modulus)
	if err != nil {
		return nil, err
	}

	diagnostics := make([]error, len(req.Diagnostics))
	copy(diagnostics, req.Diagnostics)
	return &Result{
		Secret:      secret,
		Threshold:   k,
		Used:        req.IDs(selected...),
		Checked:     checked,
		Modulus:     modulus,
		Fingerprint: digest,
		Diagnostics: diagnostics,
	}, nil
}

// fingerprint binds the mode, the threshold and the selected shares.
func fingerprint(req *share.Request, selected []int, mode types.ModeWrapper, modulus *big.Int) ([]byte, error) {
	h := hash.New(fingerprintContext)
	if err := h.WriteAny(mode, types.ThresholdWrapper(req.Threshold)); err != nil {
		return nil, err
	}
	if modulus != nil {
		if err := h.WriteAny(modulus); err != nil {
			return nil, err
		}
	}
	for _, idx := range selected {
		if err := h.WriteAny(req.Shares[idx]); err != nil {
			return nil, err
		}
	}
	return h.Sum(), nil
}
