package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lzww0608/guuid/v2/uuiderr"
)

func TestNewHexadecimal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "lower case", input: "0800200c9a66", want: "0800200c9a66"},
		{name: "upper case is lowered", input: "ABCDEF", want: "abcdef"},
		{name: "0x prefix is dropped", input: "0x1f", want: "1f"},
		{name: "upper 0X prefix is dropped", input: "0X1F", want: "1f"},
		{name: "empty", input: "", wantErr: true},
		{name: "prefix only", input: "0x", wantErr: true},
		{name: "non hex", input: "12g4", wantErr: true},
		{name: "sign", input: "-1f", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewHexadecimal(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHexadecimal)
				assert.ErrorIs(t, err, uuiderr.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestHexadecimal_Pad(t *testing.T) {
	h := MustHexadecimal("1b21")
	assert.Equal(t, "00001b21", h.Pad(8).String())
	assert.Equal(t, "1b21", h.Pad(2).String())
	assert.True(t, Hexadecimal{}.IsZero())
	assert.False(t, h.IsZero())
}

func TestNewInteger(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		want         string
		wantNegative bool
		wantErr      bool
	}{
		{name: "plain", input: "12345", want: "12345"},
		{name: "leading zeros", input: "000420", want: "420"},
		{name: "all zeros", input: "0000", want: "0"},
		{name: "plus sign", input: "+17", want: "17"},
		{name: "negative", input: "-17", want: "-17", wantNegative: true},
		{name: "negative zero", input: "-000", want: "0"},
		{name: "beyond 64 bits", input: "340282366920938463463374607431768211455", want: "340282366920938463463374607431768211455"},
		{name: "empty", input: "", wantErr: true},
		{name: "sign only", input: "-", wantErr: true},
		{name: "fraction", input: "1.5", wantErr: true},
		{name: "hex digits", input: "ff", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewInteger(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInteger)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.wantNegative, got.IsNegative())
		})
	}
}

func TestInteger_Int64(t *testing.T) {
	n, err := MustInteger("-9223372036854775808").Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(-9223372036854775808), n)

	_, err = MustInteger("9223372036854775808").Int64()
	assert.ErrorIs(t, err, ErrInvalidInteger)

	assert.Equal(t, "0", Integer{}.String())
	assert.Equal(t, "18446744073709551615", IntegerFromUint64(^uint64(0)).String())
	assert.True(t, IntegerFromInt64(-3).IsNegative())
}

func TestNewDecimal(t *testing.T) {
	tests := []struct {
		input        string
		want         string
		wantNegative bool
		wantErr      bool
	}{
		{input: "1341368074.491000", want: "1341368074.491000"},
		{input: "-12.5", want: "-12.5", wantNegative: true},
		{input: "-0.000", want: "0.000"},
		{input: ".5", want: ".5"},
		{input: "42", want: "42"},
		{input: "5.", wantErr: true},
		{input: "1.2.3", wantErr: true},
		{input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewDecimal(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDecimal)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.wantNegative, got.IsNegative())
		})
	}
}

func TestTime(t *testing.T) {
	now := time.Date(2012, 7, 4, 2, 14, 34, 491000123, time.UTC)

	ts := TimeOf(now)
	assert.Equal(t, "1341368074", ts.Seconds().String())
	assert.Equal(t, "491000", ts.Microseconds().String())

	back, err := ts.StdTime()
	require.NoError(t, err)
	assert.True(t, back.Equal(now.Truncate(time.Microsecond)))

	neg := TimeOf(time.Date(1969, 12, 31, 23, 59, 59, 500000000, time.UTC))
	assert.Equal(t, "-1", neg.Seconds().String())
	assert.Equal(t, "500000", neg.Microseconds().String())
}
