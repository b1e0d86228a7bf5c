package hash

import (
	"bytes"
	"encoding/binary"
	"io"
)

// WriterToWithDomain represents a type writing itself, and knowing its domain.
//
// Providing a domain string lets us distinguish the output of different types
// implementing this same interface.
type WriterToWithDomain interface {
	io.WriterTo

	// Domain returns a context string, which should be unique for each implementor
	Domain() string
}

// writeWithDomain writes out `(<domain><data>)`.
// Parentheses alone would be ambiguous if data contains them, so the domain
// and the data are also length prefixed.
func writeWithDomain(w io.Writer, object WriterToWithDomain) error {
	domain := object.Domain()
	var data bytes.Buffer
	if _, err := object.WriteTo(&data); err != nil {
		return err
	}
	for _, chunk := range [][]byte{
		[]byte("("),
		lengthPrefix(len(domain)), []byte(domain),
		lengthPrefix(data.Len()), data.Bytes(),
		[]byte(")"),
	} {
		if _, err := w.Write(chunk); err != nil {
			return err
		}
	}
	return nil
}

func lengthPrefix(n int) []byte {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, uint32(n))
	return out
}

// BytesWithDomain is a useful wrapper to annotate some chunk of data with a domain.
type BytesWithDomain struct {
	TheDomain string
	Bytes     []byte
}

// WriteTo implements io.WriterTo.
func (b BytesWithDomain) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes)
	return int64(n), err
}

// Domain implements WriterToWithDomain.
func (b BytesWithDomain) Domain() string {
	return b.TheDomain
}
