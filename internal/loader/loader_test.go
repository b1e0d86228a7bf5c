package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thandava3114/Catalog-Answers/pkg/share"
)

const testcase = `{
  "keys": {"n": 4, "k": 3},
  "1": {"base": "10", "value": "4"},
  "2": {"base": "2", "value": "111"},
  "3": {"base": "10", "value": "12"},
  "6": {"base": 4, "value": "213", "comment": "ignored"}
}`

func TestLoad(t *testing.T) {
	in, err := Load(strings.NewReader(testcase))
	require.NoError(t, err)
	assert.Equal(t, share.Meta{N: 4, K: 3}, in.Keys)
	assert.Len(t, in.Shares, 4)
	assert.Equal(t, share.RawShare{Base: "2", Value: "111"}, in.Shares["2"])
	assert.Equal(t, share.RawShare{Base: "4", Value: "213"}, in.Shares["6"])

	req, err := share.Extract(in)
	require.NoError(t, err)
	assert.Equal(t, int64(39), req.Shares[3].Y().Int64())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(strings.NewReader(`{"1": {"base": "10", "value": "4"}}`))
	assert.ErrorIs(t, err, ErrMissingMeta)

	for _, input := range []string{
		``,
		`[]`,
		`null`,
		`{"keys": {"n": "four", "k": 3}}`,
		`{"keys": {"n": 1, "k": 1}, "1": "4"}`,
		`{"keys": {"n": 1, "k": 1}, "1": {"base": true, "value": "4"}}`,
		`{"keys": {"n": 1, "k": 1}, "1": {"base": "10", "value": "4"}`,
	} {
		_, err := Load(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrMalformed, input)
	}
}

func TestLoad_DuplicateKey(t *testing.T) {
	for _, input := range []string{
		`{"keys": {"n": 3, "k": 2},
		  "4": {"base": "10", "value": "9"},
		  "4": {"base": "10", "value": "100"},
		  "5": {"base": "10", "value": "11"}}`,
		`{"keys": {"n": 2, "k": 2},
		  "1": {"base": "10", "value": "9"},
		  "keys": {"n": 1, "k": 1},
		  "2": {"base": "10", "value": "11"}}`,
	} {
		_, err := Load(strings.NewReader(input))
		require.ErrorIs(t, err, share.ErrDuplicateIdentifier, input)
		assert.NotErrorIs(t, err, ErrMalformed)
	}

	_, err := Load(strings.NewReader(`{"keys": {"n": 2, "k": 2}, "4": {"base": "10", "value": "9"}, "4": {"base": "10", "value": "9"}}`))
	var shareErr share.Error
	require.ErrorAs(t, err, &shareErr)
	assert.Equal(t, "4", shareErr.ID)
}

func TestLoad_MissingBase(t *testing.T) {
	in, err := Load(strings.NewReader(`{"keys": {"n": 1, "k": 1}, "1": {"value": "4"}}`))
	require.NoError(t, err)
	assert.Equal(t, "", in.Shares["1"].Base)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testcase.json")
	require.NoError(t, os.WriteFile(path, []byte(testcase), 0o600))

	in, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, in.Keys.K)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
