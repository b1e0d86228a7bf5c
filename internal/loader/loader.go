// Package loader reads share sets from their JSON representation:
//
//	{
//	  "keys": {"n": 4, "k": 3},
//	  "1": {"base": "10", "value": "4"},
//	  "2": {"base": "2", "value": "111"},
//	  ...
//	}
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Thandava3114/Catalog-Answers/pkg/share"
)

var (
	ErrMissingMeta = errors.New("loader: missing \"keys\" entry")
	ErrMalformed   = errors.New("loader: malformed share file")
)

type rawShare struct {
	// Base is usually a string, but plain numbers are accepted too.
	Base  json.RawMessage `json:"base"`
	Value string          `json:"value"`
}

// Load parses a share set from r.
//
// A key that appears twice in the object, "keys" included, is rejected with
// share.ErrDuplicateIdentifier rather than letting the last entry win.
func Load(r io.Reader) (share.Input, error) {
	entries, err := readObject(json.NewDecoder(r))
	if err != nil {
		return share.Input{}, err
	}

	metaRaw, ok := entries[share.MetaKey]
	if !ok {
		return share.Input{}, ErrMissingMeta
	}
	var in share.Input
	if err := json.Unmarshal(metaRaw, &in.Keys); err != nil {
		return share.Input{}, fmt.Errorf("%w: %q: %v", ErrMalformed, share.MetaKey, err)
	}

	in.Shares = make(map[string]share.RawShare, len(entries)-1)
	for id, data := range entries {
		if id == share.MetaKey {
			continue
		}
		var raw rawShare
		if err := json.Unmarshal(data, &raw); err != nil {
			return share.Input{}, fmt.Errorf("%w: share %q: %v", ErrMalformed, id, err)
		}
		base, err := baseString(raw.Base)
		if err != nil {
			return share.Input{}, fmt.Errorf("%w: share %q: %v", ErrMalformed, id, err)
		}
		in.Shares[id] = share.RawShare{Base: base, Value: raw.Value}
	}
	return in, nil
}

// readObject reads the top-level object entry by entry, so that repeated
// keys are seen.
func readObject(dec *json.Decoder) (map[string]json.RawMessage, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformed)
	}
	entries := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		id, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected %v", ErrMalformed, tok)
		}
		var data json.RawMessage
		if err := dec.Decode(&data); err != nil {
			return nil, fmt.Errorf("%w: entry %q: %v", ErrMalformed, id, err)
		}
		if _, seen := entries[id]; seen {
			return nil, share.Error{ID: id, Err: share.ErrDuplicateIdentifier}
		}
		entries[id] = data
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return entries, nil
}

// LoadFile parses the share set stored at path.
func LoadFile(path string) (share.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return share.Input{}, err
	}
	defer f.Close()
	in, err := Load(f)
	if err != nil {
		return share.Input{}, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// baseString returns the base as text, whether it was written as a JSON
// string or a JSON number. A missing base is returned as "".
func baseString(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}
