package guuid

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Lzww0608/guuid/v2/convert"
	"github.com/Lzww0608/guuid/v2/types"
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122 and RFC 9562.
// The UUID is a 128-bit (16 byte) value that is used to uniquely identify information.
//
// A UUID carries the Fields holding its bytes, the Codec that formats it and
// the converters used for its integer and time values. UUIDs are immutable
// and safe for concurrent use. The zero value is the nil UUID.
//
// Use Equal or Compare to compare UUIDs: == also compares the codec and the
// converters a UUID was built with.
type UUID struct {
	fields  Fields
	codec   Codec
	numbers convert.NumberConverter
	times   convert.TimeConverter
}

var nilFields Fields = RFC4122Fields{}

func (u UUID) fieldsOrNil() Fields {
	if u.fields == nil {
		return nilFields
	}
	return u.fields
}

func (u UUID) codecOrDefault() Codec {
	if u.codec == nil {
		return defaultFactory.codec
	}
	return u.codec
}

func (u UUID) numbersOrDefault() convert.NumberConverter {
	if u.numbers == nil {
		return defaultFactory.conv.numbers
	}
	return u.numbers
}

// Fields returns the fields of the UUID.
func (u UUID) Fields() Fields {
	return u.fieldsOrNil()
}

// Codec returns the codec that formats the UUID.
func (u UUID) Codec() Codec {
	return u.codecOrDefault()
}

// Version returns the version of the UUID. It reports false for the nil and
// max UUIDs and for nonstandard UUIDs.
func (u UUID) Version() (Version, bool) {
	return u.fieldsOrNil().Version()
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	return u.fieldsOrNil().Variant()
}

// String returns the string form of the UUID as written by its codec, by
// default the canonical xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	return u.codecOrDefault().Encode(u)
}

// URN returns the string form prefixed with "urn:uuid:".
func (u UUID) URN() string {
	return "urn:uuid:" + u.String()
}

// Bytes returns the binary form of the UUID as written by its codec
func (u UUID) Bytes() []byte {
	return u.codecOrDefault().EncodeBinary(u)
}

// Hex returns the string form without hyphens.
func (u UUID) Hex() types.Hexadecimal {
	return types.MustHexadecimal(strings.ReplaceAll(u.String(), "-", ""))
}

// Integer returns the 128-bit value of Hex as a decimal integer.
func (u UUID) Integer() (types.Integer, error) {
	return u.numbersOrDefault().FromHex(u.Hex())
}

// value returns the 128 bits behind Hex.
func (u UUID) value() [16]byte {
	var (
		b      [16]byte
		digits [32]byte
		n      int
	)
	s := u.String()
	for i := 0; i < len(s) && n < len(digits); i++ {
		if s[i] != '-' {
			digits[n] = s[i]
			n++
		}
	}
	_, _ = hex.Decode(b[:], digits[:n])
	return b
}

// MostSignificantBits returns the first 64 bits of the UUID.
func (u UUID) MostSignificantBits() uint64 {
	b := u.value()
	return binary.BigEndian.Uint64(b[0:8])
}

// LeastSignificantBits returns the last 64 bits of the UUID.
func (u UUID) LeastSignificantBits() uint64 {
	b := u.value()
	return binary.BigEndian.Uint64(b[8:16])
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u.fieldsOrNil().IsNil()
}

// IsMax returns true if the UUID is the max UUID (all ones)
func (u UUID) IsMax() bool {
	return u.fieldsOrNil().IsMax()
}

// Compare returns an integer comparing the string values of two UUIDs as
// unsigned 128-bit numbers. UUIDs of different layouts or codecs are equal
// when they print the same, whatever their stored bytes.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	a, b := u.MostSignificantBits(), other.MostSignificantBits()
	if a == b {
		a, b = u.LeastSignificantBits(), other.LeastSignificantBits()
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal returns true if u and other print the same UUID string
func (u UUID) Equal(other UUID) bool {
	return u.Compare(other) == 0
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The text
// is decoded with the codec of u, or the default codec for the zero UUID.
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := u.codecOrDefault().Decode(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	id, err := u.codecOrDefault().DecodeBytes(data)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		return u.UnmarshalText([]byte(src))
	case []byte:
		if len(src) == 16 {
			return u.UnmarshalBinary(src)
		}
		if len(src) == 0 {
			return nil
		}
		return u.UnmarshalText(src)
	default:
		return fmt.Errorf("%w: cannot scan type %T into UUID", ErrInvalidArgument, src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}
