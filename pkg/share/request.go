package share

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/Thandava3114/Catalog-Answers/pkg/math/arith"
	"github.com/Thandava3114/Catalog-Answers/pkg/math/polynomial"
)

// MetaKey is the reserved entry of the input holding n and k.
const MetaKey = "keys"

// Meta is the declared shape of a share set.
type Meta struct {
	// N is the number of shares that were issued.
	N int `json:"n"`
	// K is the number of shares needed to reconstruct.
	K int `json:"k"`
}

// RawShare is a share entry as it appears in the input, before validation.
type RawShare struct {
	Base  string `json:"base"`
	Value string `json:"value"`
}

// Input is a parsed but unvalidated share set.
type Input struct {
	Keys   Meta
	Shares map[string]RawShare
}

// Request is a validated reconstruction request.
//
// Shares are sorted by ascending x and all x are distinct.
// 1 ≤ Threshold ≤ len(Shares) always holds.
type Request struct {
	// Threshold is k, the number of shares interpolated.
	Threshold int
	// Declared is the n announced by the input. It may differ from len(Shares),
	// in which case Diagnostics holds ErrShareCountMismatch.
	Declared int
	Shares   []Share
	// Diagnostics are non-fatal problems found while extracting the request.
	Diagnostics []error
}

// Extract validates in and returns the corresponding Request.
func Extract(in Input) (*Request, error) {
	return ExtractMap(in.Shares, in.Keys)
}

// ExtractMap validates every raw share, except the one stored under MetaKey,
// and returns the corresponding Request.
//
// A declared meta.N that does not match the number of shares is not fatal;
// it is recorded in Request.Diagnostics.
func ExtractMap(raw map[string]RawShare, meta Meta) (*Request, error) {
	if meta.K < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreshold, meta.K)
	}

	ids := maps.Keys(raw)
	sort.Strings(ids)

	shares := make([]Share, 0, len(ids))
	for _, id := range ids {
		if id == MetaKey {
			continue
		}
		x, err := parseIdentifier(id)
		if err != nil {
			return nil, Error{ID: id, Err: err}
		}
		entry := raw[id]
		base, err := arith.ParseBase(entry.Base)
		if err != nil {
			return nil, Error{ID: id, Err: err}
		}
		s, err := New(x, base, entry.Value)
		if err != nil {
			return nil, Error{ID: id, Err: err}
		}
		shares = append(shares, s)
	}

	req, err := NewRequest(meta.K, shares...)
	if err != nil {
		return nil, err
	}
	req.Declared = meta.N
	if meta.N != len(shares) {
		req.Diagnostics = append(req.Diagnostics,
			fmt.Errorf("%w: declared %d, found %d", ErrShareCountMismatch, meta.N, len(shares)))
	}
	return req, nil
}

// NewRequest validates shares against the threshold k and returns a Request
// with shares sorted by x. Declared is set to len(shares).
func NewRequest(k int, shares ...Share) (*Request, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreshold, k)
	}
	sorted := make([]Share, len(shares))
	for i, s := range shares {
		// the zero Share was not built by New
		if s.x == nil || s.y == nil {
			return nil, fmt.Errorf("%w: share %d is empty", ErrInvalidIdentifier, i)
		}
		sorted[i] = s
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].x.Cmp(sorted[j].x) < 0
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].x.Cmp(sorted[i].x) == 0 {
			return nil, Error{ID: sorted[i].x.String(), Err: ErrDuplicateIdentifier}
		}
	}
	if len(sorted) < k {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientShares, k, len(sorted))
	}
	return &Request{
		Threshold: k,
		Declared:  len(sorted),
		Shares:    sorted,
	}, nil
}

// Points returns the decoded points of the shares at the given indices,
// in that order.
func (r *Request) Points(indices ...int) []polynomial.Point {
	points := make([]polynomial.Point, len(indices))
	for i, idx := range indices {
		points[i] = r.Shares[idx].Point()
	}
	return points
}

// IDs returns the x of the shares at the given indices.
func (r *Request) IDs(indices ...int) []*big.Int {
	ids := make([]*big.Int, len(indices))
	for i, idx := range indices {
		ids[i] = r.Shares[idx].X()
	}
	return ids
}

// parseIdentifier parses a share key as a positive decimal integer.
// Leading zeros are accepted, signs are not.
func parseIdentifier(id string) (*big.Int, error) {
	if id == "" || strings.TrimLeft(id, "0123456789") != "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	x, ok := new(big.Int).SetString(id, 10)
	if !ok || x.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	return x, nil
}
