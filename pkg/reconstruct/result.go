package reconstruct

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Result is a successfully reconstructed secret.
type Result struct {
	// Secret is the constant term of the interpolated polynomial.
	Secret *big.Int
	// Threshold is the number of shares interpolated.
	Threshold int
	// Used holds the x of the interpolated shares, ascending.
	Used []*big.Int
	// Checked is the number of other k-subsets that produced the same secret.
	Checked int
	// Modulus is the prime the secret was computed modulo, or nil for exact
	// rational interpolation.
	Modulus *big.Int
	// Fingerprint is a digest of the interpolated shares and parameters.
	Fingerprint []byte
	// Diagnostics are non-fatal problems of the request.
	Diagnostics []error
}

// Equal returns true if r and other describe the same reconstruction.
// Diagnostics are compared by message.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	// *r and not r: cmp would otherwise call this method again
	return cmp.Equal(*r, *other,
		cmpopts.EquateEmpty(),
		cmp.Comparer(func(a, b *big.Int) bool {
			if a == nil || b == nil {
				return a == b
			}
			return a.Cmp(b) == 0
		}),
		cmp.Comparer(func(a, b error) bool {
			if a == nil || b == nil {
				return a == b
			}
			return a.Error() == b.Error()
		}),
	)
}

// wireDiagnostic keeps the kind so that errors.Is still works after decoding.
type wireDiagnostic struct {
	Kind    Kind   `cbor:"kind" json:"kind"`
	Message string `cbor:"message" json:"message"`
}

type wireResult struct {
	Secret      string           `cbor:"secret" json:"secret"`
	Threshold   int              `cbor:"threshold" json:"threshold"`
	Used        []string         `cbor:"used" json:"used"`
	Checked     int              `cbor:"checked" json:"checked"`
	Modulus     string           `cbor:"modulus,omitempty" json:"modulus,omitempty"`
	Fingerprint []byte           `cbor:"fingerprint" json:"-"`
	FingerHex   string           `cbor:"-" json:"fingerprint"`
	Diagnostics []wireDiagnostic `cbor:"diagnostics,omitempty" json:"diagnostics,omitempty"`
}

func (r *Result) toWire() wireResult {
	w := wireResult{
		Secret:      r.Secret.String(),
		Threshold:   r.Threshold,
		Used:        make([]string, len(r.Used)),
		Checked:     r.Checked,
		Fingerprint: r.Fingerprint,
		FingerHex:   hex.EncodeToString(r.Fingerprint),
	}
	for i, x := range r.Used {
		w.Used[i] = x.String()
	}
	if r.Modulus != nil {
		w.Modulus = r.Modulus.String()
	}
	for _, d := range r.Diagnostics {
		w.Diagnostics = append(w.Diagnostics, wireDiagnostic{Kind: KindOf(d), Message: d.Error()})
	}
	return w
}

func parseInt(s string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("reconstruct: invalid integer %q", s)
	}
	return x, nil
}

func (r *Result) fromWire(w wireResult) error {
	secret, err := parseInt(w.Secret)
	if err != nil {
		return err
	}
	used := make([]*big.Int, len(w.Used))
	for i, s := range w.Used {
		if used[i], err = parseInt(s); err != nil {
			return err
		}
	}
	var modulus *big.Int
	if w.Modulus != "" {
		if modulus, err = parseInt(w.Modulus); err != nil {
			return err
		}
	}
	diagnostics := make([]error, 0, len(w.Diagnostics))
	for _, d := range w.Diagnostics {
		diagnostics = append(diagnostics, decodeDiagnostic(d))
	}
	*r = Result{
		Secret:      secret,
		Threshold:   w.Threshold,
		Used:        used,
		Checked:     w.Checked,
		Modulus:     modulus,
		Fingerprint: w.Fingerprint,
		Diagnostics: diagnostics,
	}
	return nil
}

// decodedDiagnostic restores a diagnostic with its original message,
// still matching its sentinel with errors.Is.
type decodedDiagnostic struct {
	msg      string
	sentinel error
}

func (d decodedDiagnostic) Error() string { return d.msg }
func (d decodedDiagnostic) Unwrap() error { return d.sentinel }

func decodeDiagnostic(d wireDiagnostic) error {
	if sentinel := d.Kind.sentinel(); sentinel != nil {
		return decodedDiagnostic{msg: d.Message, sentinel: sentinel}
	}
	return errors.New(d.Message)
}

// MarshalCBOR implements cbor.Marshaler.
func (r *Result) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(r.toWire())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (r *Result) UnmarshalCBOR(data []byte) error {
	var w wireResult
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}
	return r.fromWire(w)
}

// MarshalJSON implements json.Marshaler. Integers are written as decimal
// strings and the fingerprint as hex.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toWire())
}
