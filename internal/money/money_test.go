package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input     string
		wantCents int64
		wantErr   bool
	}{
		{"100.50", 10050, false},
		{"100", 10000, false},
		{"0.07", 7, false},
		{"1.5", 150, false},
		{".5", 50, false},
		{"-12.34", -1234, false},
		{"+3", 300, false},
		{"0", 0, false},
		{"abc", 0, true},
		{"", 0, true},
		{"   ", 0, true},
		{"1.234", 0, true},
		{"1.2.3", 0, true},
		{"-", 0, true},
		{"12a", 0, true},
		{"1.-5", 0, true},
		{"1.+5", 0, true},
		{"1.a", 0, true},
		{"-1.-5", 0, true},
		{"92233720368547758.99", 0, true},
		{"92233720368547757.99", 9223372036854775799, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCents, got.Cents)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	m, err := Parse("100.50")
	require.NoError(t, err)
	assert.Equal(t, 100.50, m.Float64())
	assert.Equal(t, "100.50", m.String())
}

func TestFromFloat(t *testing.T) {
	m, err := FromFloat(120.01)
	require.NoError(t, err)
	assert.Equal(t, int64(12001), m.Cents)

	m, err = FromFloat(-99.999)
	require.NoError(t, err)
	assert.Equal(t, int64(-10000), m.Cents)

	_, err = FromFloat(math.NaN())
	assert.ErrorIs(t, err, ErrNotFinite)
	_, err = FromFloat(math.Inf(1))
	assert.ErrorIs(t, err, ErrNotFinite)
}

func TestArithmetic(t *testing.T) {
	a := FromCents(5000)
	b := FromCents(-3000)
	assert.Equal(t, int64(2000), a.Add(b).Cents)
	assert.Equal(t, int64(3000), b.Abs().Cents)
	assert.Equal(t, int64(-5000), a.Neg().Cents)
	assert.True(t, a.IsPositive())
	assert.False(t, b.IsPositive())
	assert.False(t, FromCents(0).IsPositive())
}

func TestString(t *testing.T) {
	assert.Equal(t, "0.07", FromCents(7).String())
	assert.Equal(t, "-0.07", FromCents(-7).String())
	assert.Equal(t, "580.00", FromCents(58000).String())
}
