package guuid

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/Lzww0608/guuid/v2/types"
)

// Fields exposes the named RFC 4122 fields of a UUID.
//
// Every accessor reports the logical, big-endian value of the field, so two
// Fields with different physical layouts but the same logical value cannot be
// told apart through the accessors. Bytes is the only exception: it returns
// the bytes as stored by the layout.
type Fields interface {
	// Bytes returns the 16 stored bytes in the layout's physical order.
	Bytes() []byte

	TimeLow() types.Hexadecimal
	TimeMid() types.Hexadecimal
	TimeHiAndVersion() types.Hexadecimal
	ClockSeqHiAndReserved() types.Hexadecimal
	ClockSeqLow() types.Hexadecimal
	Node() types.Hexadecimal

	// ClockSeq returns the 14-bit clock sequence as four hex digits.
	ClockSeq() types.Hexadecimal

	// Timestamp returns the raw timestamp bits: 60 bits for versions 1, 2
	// and 6, 48 bits for version 7.
	Timestamp() types.Hexadecimal

	Variant() Variant

	// Version returns false for the nil and max UUIDs and for layouts
	// that carry no version.
	Version() (Version, bool)

	IsNil() bool
	IsMax() bool
	Layout() Layout
}

// octets holds the logical big-endian value shared by all layouts.
type octets [16]byte

var maxOctets = octets{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

func toOctets(b []byte) (octets, error) {
	var o octets
	if len(b) != 16 {
		return o, fmt.Errorf("%w: received %d bytes", ErrInvalidLength, len(b))
	}
	copy(o[:], b)
	return o, nil
}

func (o *octets) hex(from, to int) types.Hexadecimal {
	return types.MustHexadecimal(hex.EncodeToString(o[from:to]))
}

func (o *octets) isNil() bool {
	return *o == octets{}
}

func (o *octets) isMax() bool {
	return *o == maxOctets
}

func (o *octets) variant() Variant {
	return variantOf(o[8])
}

func (o *octets) version() (Version, bool) {
	if o.isNil() || o.isMax() {
		return 0, false
	}
	return Version(o[6] >> 4), true
}

func (o *octets) clockSeq() types.Hexadecimal {
	switch {
	case o.isMax():
		return types.MustHexadecimal("ffff")
	case o.isNil():
		return types.MustHexadecimal("0000")
	}
	return types.MustHexadecimal(fmt.Sprintf("%04x", binary.BigEndian.Uint16(o[8:10])&0x3fff))
}

func (o *octets) timestamp(v Version) types.Hexadecimal {
	low := binary.BigEndian.Uint32(o[0:4])
	mid := binary.BigEndian.Uint16(o[4:6])
	hi := binary.BigEndian.Uint16(o[6:8]) & 0x0fff

	var s string
	switch v {
	case VersionDCESecurity:
		// time_low holds the local identifier
		s = fmt.Sprintf("%03x%04x%08x", hi, mid, 0)
	case VersionReorderedTime:
		s = fmt.Sprintf("%08x%04x%03x", low, mid, hi)
	case VersionTimeSorted:
		s = hex.EncodeToString(o[0:6])
	default:
		s = fmt.Sprintf("%03x%04x%08x", hi, mid, low)
	}
	return types.MustHexadecimal(s)
}

// validate enforces the RFC 4122 and Microsoft variant and version rules.
// The nil and max UUIDs are always valid.
func (o *octets) validate() error {
	if o.isNil() || o.isMax() {
		return nil
	}
	if v := o.variant(); v != VariantRFC4122 && v != VariantMicrosoft {
		return fmt.Errorf("%w: %w: %s", ErrInvalidLayout, ErrInvalidVariant, v)
	}
	if v, _ := o.version(); !v.Valid() {
		return fmt.Errorf("%w: %w: %d", ErrInvalidLayout, ErrInvalidVersion, byte(v))
	}
	return nil
}

// swapGUID converts between the big-endian and the GUID little-endian
// orders of time_low, time_mid and time_hi_and_version. It is its own inverse.
func swapGUID(b [16]byte) [16]byte {
	b[0], b[1], b[2], b[3] = b[3], b[2], b[1], b[0]
	b[4], b[5] = b[5], b[4]
	b[6], b[7] = b[7], b[6]
	return b
}

// RFC4122Fields stores the fields big-endian, in canonical string order.
type RFC4122Fields struct {
	o octets
}

// NewFields validates b as the bytes of an RFC 4122 UUID.
func NewFields(b []byte) (RFC4122Fields, error) {
	o, err := toOctets(b)
	if err != nil {
		return RFC4122Fields{}, err
	}
	if err := o.validate(); err != nil {
		return RFC4122Fields{}, err
	}
	return RFC4122Fields{o: o}, nil
}

func (f RFC4122Fields) Bytes() []byte {
	b := f.o
	return b[:]
}

func (f RFC4122Fields) TimeLow() types.Hexadecimal {
	return f.o.hex(0, 4)
}

func (f RFC4122Fields) TimeMid() types.Hexadecimal {
	return f.o.hex(4, 6)
}

func (f RFC4122Fields) TimeHiAndVersion() types.Hexadecimal {
	return f.o.hex(6, 8)
}

func (f RFC4122Fields) ClockSeqHiAndReserved() types.Hexadecimal {
	return f.o.hex(8, 9)
}

func (f RFC4122Fields) ClockSeqLow() types.Hexadecimal {
	return f.o.hex(9, 10)
}

func (f RFC4122Fields) Node() types.Hexadecimal {
	return f.o.hex(10, 16)
}

func (f RFC4122Fields) ClockSeq() types.Hexadecimal {
	return f.o.clockSeq()
}

func (f RFC4122Fields) Variant() Variant {
	return f.o.variant()
}

func (f RFC4122Fields) Version() (Version, bool) {
	return f.o.version()
}

func (f RFC4122Fields) IsNil() bool {
	return f.o.isNil()
}

func (f RFC4122Fields) IsMax() bool {
	return f.o.isMax()
}

func (f RFC4122Fields) Layout() Layout {
	return LayoutRFC4122
}

func (f RFC4122Fields) Timestamp() types.Hexadecimal {
	v, _ := f.o.version()
	return f.o.timestamp(v)
}

// GUIDFields stores time_low, time_mid and time_hi_and_version
// little-endian, as Microsoft platforms keep GUIDs in memory.
type GUIDFields struct {
	o octets // logical order
}

// NewGUIDFields validates b, given in GUID storage order.
func NewGUIDFields(b []byte) (GUIDFields, error) {
	o, err := toOctets(b)
	if err != nil {
		return GUIDFields{}, err
	}
	o = swapGUID(o)
	if err := o.validate(); err != nil {
		return GUIDFields{}, err
	}
	return GUIDFields{o: o}, nil
}

func (f GUIDFields) Bytes() []byte {
	b := swapGUID(f.o)
	return b[:]
}

func (f GUIDFields) TimeLow() types.Hexadecimal {
	return f.o.hex(0, 4)
}

func (f GUIDFields) TimeMid() types.Hexadecimal {
	return f.o.hex(4, 6)
}

func (f GUIDFields) TimeHiAndVersion() types.Hexadecimal {
	return f.o.hex(6, 8)
}

func (f GUIDFields) ClockSeqHiAndReserved() types.Hexadecimal {
	return f.o.hex(8, 9)
}

func (f GUIDFields) ClockSeqLow() types.Hexadecimal {
	return f.o.hex(9, 10)
}

func (f GUIDFields) Node() types.Hexadecimal {
	return f.o.hex(10, 16)
}

func (f GUIDFields) ClockSeq() types.Hexadecimal {
	return f.o.clockSeq()
}

func (f GUIDFields) Variant() Variant {
	return f.o.variant()
}

func (f GUIDFields) Version() (Version, bool) {
	return f.o.version()
}

func (f GUIDFields) IsNil() bool {
	return f.o.isNil()
}

func (f GUIDFields) IsMax() bool {
	return f.o.isMax()
}

func (f GUIDFields) Layout() Layout {
	return LayoutGUID
}

func (f GUIDFields) Timestamp() types.Hexadecimal {
	v, _ := f.o.version()
	return f.o.timestamp(v)
}

// NonstandardFields accepts any 16 bytes. It reports no version, and its
// timestamp is read the way version 1 lays it out.
type NonstandardFields struct {
	o octets
}

// NewNonstandardFields fails only when b is not 16 bytes long.
func NewNonstandardFields(b []byte) (NonstandardFields, error) {
	o, err := toOctets(b)
	if err != nil {
		return NonstandardFields{}, err
	}
	return NonstandardFields{o: o}, nil
}

func (f NonstandardFields) Bytes() []byte {
	b := f.o
	return b[:]
}

func (f NonstandardFields) TimeLow() types.Hexadecimal {
	return f.o.hex(0, 4)
}

func (f NonstandardFields) TimeMid() types.Hexadecimal {
	return f.o.hex(4, 6)
}

func (f NonstandardFields) TimeHiAndVersion() types.Hexadecimal {
	return f.o.hex(6, 8)
}

func (f NonstandardFields) ClockSeqHiAndReserved() types.Hexadecimal {
	return f.o.hex(8, 9)
}

func (f NonstandardFields) ClockSeqLow() types.Hexadecimal {
	return f.o.hex(9, 10)
}

func (f NonstandardFields) Node() types.Hexadecimal {
	return f.o.hex(10, 16)
}

func (f NonstandardFields) ClockSeq() types.Hexadecimal {
	return f.o.clockSeq()
}

func (f NonstandardFields) Timestamp() types.Hexadecimal {
	return f.o.timestamp(VersionTimeBased)
}

func (f NonstandardFields) Variant() Variant {
	return f.o.variant()
}

func (f NonstandardFields) Version() (Version, bool) {
	return 0, false
}

func (f NonstandardFields) IsNil() bool {
	return f.o.isNil()
}

func (f NonstandardFields) IsMax() bool {
	return f.o.isMax()
}

func (f NonstandardFields) Layout() Layout {
	return LayoutNonstandard
}

// logical returns the big-endian value behind any Fields.
func logical(f Fields) [16]byte {
	switch f := f.(type) {
	case RFC4122Fields:
		return f.o
	case GUIDFields:
		return f.o
	case NonstandardFields:
		return f.o
	}
	var b [16]byte
	copy(b[:], f.Bytes())
	if f.Layout() == LayoutGUID {
		b = swapGUID(b)
	}
	return b
}
