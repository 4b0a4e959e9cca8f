package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCents(t *testing.T) {
	tests := []struct {
		input   string
		want    Cents
		wantErr bool
	}{
		{"100", 10000, false},
		{"100.00", 10000, false},
		{"0.01", 1, false},
		{"12.5", 1250, false},
		{"1.500", 150, false}, // trailing zeros carry no value
		{"-3.25", -325, false},
		{"0", 0, false},
		{"1.505", 0, true},
		{"0.001", 0, true},
		{"92233720368547758.08", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ToCents(decimal.RequireFromString(tt.input))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("4.00")
	require.NoError(t, err)
	assert.Equal(t, Cents(400), c)

	_, err = Parse("four")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = Parse("4.001")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestFromCents(t *testing.T) {
	assert.True(t, FromCents(1234).Equal(decimal.RequireFromString("12.34")))
	assert.Equal(t, "12.34", Cents(1234).String())
	assert.Equal(t, "-0.05", Cents(-5).String())
	assert.Equal(t, "0.00", Cents(0).String())
	assert.Equal(t, "100.00", Cents(10000).String())
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []Cents{0, 1, 99, 100, 333, -4711, 123456789} {
		back, err := ToCents(c.Decimal())
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
}

func TestRequirePositive(t *testing.T) {
	assert.NoError(t, RequirePositive(1))
	assert.ErrorIs(t, RequirePositive(0), ErrInvalidAmount)
	assert.ErrorIs(t, RequirePositive(-100), ErrInvalidAmount)
}
