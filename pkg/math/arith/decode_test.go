package arith

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		raw  string
		base int
		want int64
	}{
		{"ff", 16, 255},
		{"FF", 16, 255},
		{"101", 2, 5},
		{"z", 36, 35},
		{"Z", 36, 35},
		{"0", 10, 0},
		{"-7", 8, -7},
		{"+12", 10, 12},
		{"0007", 10, 7},
		{"111", 2, 7},
	}
	for _, tt := range tests {
		got, err := Decode(tt.raw, tt.base)
		require.NoError(t, err, "%q base %d", tt.raw, tt.base)
		assert.Equal(t, 0, got.Cmp(big.NewInt(tt.want)), "%q base %d: got %s", tt.raw, tt.base, got)
	}
}

func TestDecode_Large(t *testing.T) {
	// 40 decimal digits does not fit in 64 bits
	raw := "1234567890123456789012345678901234567890"
	want, _ := new(big.Int).SetString(raw, 10)

	got, err := Decode(raw, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(want))

	hex, err := Encode(want, 16)
	require.NoError(t, err)
	got, err = Decode(hex, 16)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(want))
}

func TestDecode_InvalidDigit(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		base int
	}{
		{"1g", 16},
		{"2", 2},
		{"", 10},
		{"-", 10},
		{"1 0", 10},
		{"--1", 10},
		{"1_000", 10},
		{"é", 36},
	} {
		_, err := Decode(tc.raw, tc.base)
		assert.ErrorIs(t, err, ErrInvalidDigit, "%q base %d", tc.raw, tc.base)
	}
}

func TestDecode_InvalidBase(t *testing.T) {
	for _, base := range []int{-1, 0, 1, 37, 64} {
		_, err := Decode("1", base)
		assert.ErrorIs(t, err, ErrInvalidBase, "base %d", base)
	}
	_, err := Encode(big.NewInt(1), 1)
	assert.ErrorIs(t, err, ErrInvalidBase)
}

func TestParseBase(t *testing.T) {
	base, err := ParseBase("16")
	require.NoError(t, err)
	assert.Equal(t, 16, base)

	base, err = ParseBase(" 2 ")
	require.NoError(t, err)
	assert.Equal(t, 2, base)

	for _, s := range []string{"", "x", "1", "37", "1.5"} {
		_, err = ParseBase(s)
		assert.ErrorIs(t, err, ErrInvalidBase, s)
	}
}

func TestEncode(t *testing.T) {
	s, err := Encode(big.NewInt(255), 16)
	require.NoError(t, err)
	assert.Equal(t, "ff", s)

	s, err = Encode(big.NewInt(35), 36)
	require.NoError(t, err)
	assert.Equal(t, "z", s)
}
