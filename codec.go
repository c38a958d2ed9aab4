package guuid

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// Codec converts UUIDs to and from their string and binary forms.
//
// Codecs define mutually incompatible binary forms: bytes produced by one
// codec's EncodeBinary must be decoded with the same codec's DecodeBytes.
type Codec interface {
	Encode(u UUID) string
	EncodeBinary(u UUID) []byte
	Decode(s string) (UUID, error)
	DecodeBytes(b []byte) (UUID, error)
}

var canonicalPattern = regexp.MustCompile(`^[0-9A-Fa-f]{8}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{12}$`)

var decorations = strings.NewReplacer("urn:", "", "URN:", "", "uuid:", "", "UUID:", "", "{", "", "}", "")

// stripDecorations removes every urn:uuid: prefix and brace from s.
func stripDecorations(s string) string {
	return decorations.Replace(s)
}

// normalize returns the canonical hyphenated form of s. Decorations and
// hyphens are dropped wherever they appear; the 32 digits left are split at
// the canonical offsets.
func normalize(s string) (string, bool) {
	t := strings.ReplaceAll(stripDecorations(s), "-", "")
	if len(t) != 32 {
		return "", false
	}
	t = t[0:8] + "-" + t[8:12] + "-" + t[12:16] + "-" + t[16:20] + "-" + t[20:]
	if !canonicalPattern.MatchString(t) {
		return "", false
	}
	return t, true
}

// parseCanonical decodes any accepted textual form into its 16 bytes, in
// string order.
func parseCanonical(s string) ([16]byte, error) {
	var b [16]byte
	t, ok := normalize(s)
	if !ok {
		return b, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	digits := strings.ReplaceAll(t, "-", "")
	if _, err := hex.Decode(b[:], []byte(digits)); err != nil {
		return b, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return b, nil
}

// formatCanonical encodes UUID bytes to the canonical hex representation
func formatCanonical(b [16]byte) string {
	var dst [36]byte
	hex.Encode(dst[0:8], b[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], b[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], b[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], b[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], b[10:16])
	return string(dst[:])
}

func checkLength(b []byte) error {
	if len(b) != 16 {
		return fmt.Errorf("%w: received %d bytes", ErrInvalidLength, len(b))
	}
	return nil
}

func stored(u UUID) [16]byte {
	var b [16]byte
	copy(b[:], u.fieldsOrNil().Bytes())
	return b
}

// StringCodec is the canonical codec: the string and the binary form both
// follow the stored byte order.
type StringCodec struct {
	builder Builder
}

// NewStringCodec returns a StringCodec that builds decoded UUIDs with b.
func NewStringCodec(b Builder) *StringCodec {
	return &StringCodec{builder: b}
}

func (c *StringCodec) Encode(u UUID) string {
	return formatCanonical(stored(u))
}

func (c *StringCodec) EncodeBinary(u UUID) []byte {
	b := stored(u)
	return b[:]
}

func (c *StringCodec) Decode(s string) (UUID, error) {
	b, err := parseCanonical(s)
	if err != nil {
		return UUID{}, err
	}
	return c.builder.Build(c, b[:])
}

func (c *StringCodec) DecodeBytes(b []byte) (UUID, error) {
	if err := checkLength(b); err != nil {
		return UUID{}, err
	}
	return c.builder.Build(c, b)
}

// GUIDStringCodec reads and writes strings in logical big-endian order while
// the binary form keeps the GUID little-endian storage order.
type GUIDStringCodec struct {
	builder Builder
}

// NewGUIDStringCodec returns a GUIDStringCodec that builds decoded UUIDs with b.
func NewGUIDStringCodec(b Builder) *GUIDStringCodec {
	return &GUIDStringCodec{builder: b}
}

func (c *GUIDStringCodec) Encode(u UUID) string {
	return formatCanonical(swapGUID(stored(u)))
}

func (c *GUIDStringCodec) EncodeBinary(u UUID) []byte {
	b := stored(u)
	return b[:]
}

func (c *GUIDStringCodec) Decode(s string) (UUID, error) {
	b, err := parseCanonical(s)
	if err != nil {
		return UUID{}, err
	}
	b = swapGUID(b)
	return c.builder.Build(c, b[:])
}

func (c *GUIDStringCodec) DecodeBytes(b []byte) (UUID, error) {
	if err := checkLength(b); err != nil {
		return UUID{}, err
	}
	return c.builder.Build(c, b)
}

// OrderedTimeCodec keeps the canonical string but moves time_hi_and_version
// and time_mid in front of time_low in the binary form, so the binary forms
// of version 1 UUIDs sort by time.
type OrderedTimeCodec struct {
	builder Builder
}

// NewOrderedTimeCodec returns an OrderedTimeCodec that builds decoded UUIDs with b.
func NewOrderedTimeCodec(b Builder) *OrderedTimeCodec {
	return &OrderedTimeCodec{builder: b}
}

func (c *OrderedTimeCodec) Encode(u UUID) string {
	return formatCanonical(stored(u))
}

func (c *OrderedTimeCodec) EncodeBinary(u UUID) []byte {
	b := stored(u)
	out := make([]byte, 0, 16)
	out = append(out, b[6:8]...)
	out = append(out, b[4:6]...)
	out = append(out, b[0:4]...)
	return append(out, b[8:16]...)
}

func (c *OrderedTimeCodec) Decode(s string) (UUID, error) {
	b, err := parseCanonical(s)
	if err != nil {
		return UUID{}, err
	}
	return c.builder.Build(c, b[:])
}

func (c *OrderedTimeCodec) DecodeBytes(b []byte) (UUID, error) {
	if err := checkLength(b); err != nil {
		return UUID{}, err
	}
	out := make([]byte, 0, 16)
	out = append(out, b[4:8]...)
	out = append(out, b[2:4]...)
	out = append(out, b[0:2]...)
	out = append(out, b[8:16]...)
	return c.builder.Build(c, out)
}

// swapComb exchanges the first and the last 48 bits. It is its own inverse.
func swapComb(b [16]byte) [16]byte {
	var out [16]byte
	copy(out[0:6], b[10:16])
	copy(out[6:10], b[6:10])
	copy(out[10:16], b[0:6])
	return out
}

// TimestampFirstCombCodec presents COMB UUIDs, whose stored bytes end with
// a 48-bit timestamp, with the timestamp first in both the string and the
// binary form.
type TimestampFirstCombCodec struct {
	builder Builder
}

// NewTimestampFirstCombCodec returns a TimestampFirstCombCodec that builds
// decoded UUIDs with b.
func NewTimestampFirstCombCodec(b Builder) *TimestampFirstCombCodec {
	return &TimestampFirstCombCodec{builder: b}
}

func (c *TimestampFirstCombCodec) Encode(u UUID) string {
	return formatCanonical(swapComb(stored(u)))
}

func (c *TimestampFirstCombCodec) EncodeBinary(u UUID) []byte {
	b := swapComb(stored(u))
	return b[:]
}

func (c *TimestampFirstCombCodec) Decode(s string) (UUID, error) {
	b, err := parseCanonical(s)
	if err != nil {
		return UUID{}, err
	}
	b = swapComb(b)
	return c.builder.Build(c, b[:])
}

func (c *TimestampFirstCombCodec) DecodeBytes(b []byte) (UUID, error) {
	if err := checkLength(b); err != nil {
		return UUID{}, err
	}
	var in [16]byte
	copy(in[:], b)
	in = swapComb(in)
	return c.builder.Build(c, in[:])
}

// TimestampLastCombCodec presents COMB UUIDs as stored, with the timestamp
// in the last 48 bits.
type TimestampLastCombCodec struct {
	builder Builder
}

// NewTimestampLastCombCodec returns a TimestampLastCombCodec that builds
// decoded UUIDs with b.
func NewTimestampLastCombCodec(b Builder) *TimestampLastCombCodec {
	return &TimestampLastCombCodec{builder: b}
}

func (c *TimestampLastCombCodec) Encode(u UUID) string {
	return formatCanonical(stored(u))
}

func (c *TimestampLastCombCodec) EncodeBinary(u UUID) []byte {
	b := stored(u)
	return b[:]
}

func (c *TimestampLastCombCodec) Decode(s string) (UUID, error) {
	b, err := parseCanonical(s)
	if err != nil {
		return UUID{}, err
	}
	return c.builder.Build(c, b[:])
}

func (c *TimestampLastCombCodec) DecodeBytes(b []byte) (UUID, error) {
	if err := checkLength(b); err != nil {
		return UUID{}, err
	}
	return c.builder.Build(c, b)
}
