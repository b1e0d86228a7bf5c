package types

import (
	"encoding/binary"
	"io"
)

// ThresholdWrapper wraps the reconstruction threshold k and enables writing with domain.
type ThresholdWrapper uint32

// WriteTo implements io.WriterTo interface.
func (t ThresholdWrapper) WriteTo(w io.Writer) (int64, error) {
	intBuffer := make([]byte, 4)
	binary.BigEndian.PutUint32(intBuffer, uint32(t))
	n, err := w.Write(intBuffer)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (ThresholdWrapper) Domain() string { return "Threshold" }

// ModeWrapper names the arithmetic a secret was interpolated with,
// so fingerprints of rational and field reconstructions never collide.
type ModeWrapper string

const (
	ModeRational ModeWrapper = "rational"
	ModeField    ModeWrapper = "field"
)

// WriteTo implements io.WriterTo interface.
func (m ModeWrapper) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(m))
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (ModeWrapper) Domain() string { return "Mode" }
