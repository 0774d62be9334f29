package amount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAtomic(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr error
	}{
		{"1.5", 1_500_000_000_000, nil},
		{"0.000000000001", 1, nil},
		{"0", 0, nil},
		{"18446744.073709551615", 18446744073709551615, nil},
		{"18446744.073709551616", 0, ErrOverflow},
		{"0.0000000000001", 0, ErrPrecision},
		{"-1", 0, ErrNegative},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToAtomic(decimal.RequireFromString(tt.in))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromAtomic(t *testing.T) {
	assert.True(t, FromAtomic(1_500_000_000_000).Equal(decimal.RequireFromString("1.5")))
	assert.Equal(t, "1.4", Format(FromAtomic(1_400_000_000_000)))
	assert.Equal(t, "0.000000000001", Format(FromAtomic(1)))
	assert.Equal(t, "0", Format(FromAtomic(0)))
}

func TestRoundTrip(t *testing.T) {
	for _, atomic := range []uint64{0, 1, 999, 1_000_000_000_000, 123_456_789_012_345} {
		back, err := ToAtomic(FromAtomic(atomic))
		require.NoError(t, err)
		assert.Equal(t, atomic, back)
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2.25")
	require.NoError(t, err)
	assert.Equal(t, "2.25", Format(d))

	_, err = Parse("abc")
	assert.Error(t, err)

	_, err = Parse("0.1234567890123")
	assert.ErrorIs(t, err, ErrPrecision)
}
