package guuid

import (
	"github.com/Lzww0608/guuid/v2/convert"
)

// Builder turns the stored bytes produced by a Codec into a UUID.
type Builder interface {
	Build(codec Codec, b []byte) (UUID, error)
}

// converters groups the collaborators every built UUID carries.
type converters struct {
	numbers   convert.NumberConverter
	gregorian convert.TimeConverter
	unix      convert.TimeConverter
}

func (c converters) uuid(f Fields, codec Codec) UUID {
	times := c.gregorian
	if v, ok := f.Version(); ok && v == VersionTimeSorted {
		times = c.unix
	}
	return UUID{fields: f, codec: codec, numbers: c.numbers, times: times}
}

// RFC4122Builder builds UUIDs whose bytes follow the RFC 4122 layout. It
// rejects bytes with a foreign variant or an undefined version.
type RFC4122Builder struct {
	conv converters
}

// NewRFC4122Builder returns a builder for the RFC 4122 layout. gregorian
// serves versions 1, 2 and 6, unix serves version 7.
func NewRFC4122Builder(numbers convert.NumberConverter, gregorian, unix convert.TimeConverter) *RFC4122Builder {
	return &RFC4122Builder{conv: converters{numbers: numbers, gregorian: gregorian, unix: unix}}
}

func (b *RFC4122Builder) Build(codec Codec, raw []byte) (UUID, error) {
	f, err := NewFields(raw)
	if err != nil {
		return UUID{}, err
	}
	return b.conv.uuid(f, codec), nil
}

// GUIDBuilder builds UUIDs from bytes in GUID storage order.
type GUIDBuilder struct {
	conv converters
}

// NewGUIDBuilder returns a builder for the GUID layout.
func NewGUIDBuilder(numbers convert.NumberConverter, gregorian, unix convert.TimeConverter) *GUIDBuilder {
	return &GUIDBuilder{conv: converters{numbers: numbers, gregorian: gregorian, unix: unix}}
}

func (b *GUIDBuilder) Build(codec Codec, raw []byte) (UUID, error) {
	f, err := NewGUIDFields(raw)
	if err != nil {
		return UUID{}, err
	}
	return b.conv.uuid(f, codec), nil
}

// NonstandardBuilder accepts any 16 bytes.
type NonstandardBuilder struct {
	conv converters
}

// NewNonstandardBuilder returns a builder for the nonstandard layout.
func NewNonstandardBuilder(numbers convert.NumberConverter, gregorian convert.TimeConverter) *NonstandardBuilder {
	return &NonstandardBuilder{conv: converters{numbers: numbers, gregorian: gregorian, unix: gregorian}}
}

func (b *NonstandardBuilder) Build(codec Codec, raw []byte) (UUID, error) {
	f, err := NewNonstandardFields(raw)
	if err != nil {
		return UUID{}, err
	}
	return b.conv.uuid(f, codec), nil
}

// DegradedBuilder builds UUIDs that can be parsed and formatted but refuse
// every operation needing big-integer arithmetic. Bytes that do not form a
// valid UUID in the given layout are kept as nonstandard.
type DegradedBuilder struct {
	layout Layout
	conv   converters
}

// NewDegradedBuilder returns a degraded builder for LayoutRFC4122 or LayoutGUID.
func NewDegradedBuilder(layout Layout) *DegradedBuilder {
	return &DegradedBuilder{
		layout: layout,
		conv: converters{
			numbers:   convert.DegradedNumberConverter{},
			gregorian: convert.DegradedTimeConverter{},
			unix:      convert.DegradedTimeConverter{},
		},
	}
}

func (b *DegradedBuilder) Build(codec Codec, raw []byte) (UUID, error) {
	var (
		f   Fields
		err error
	)
	if b.layout == LayoutGUID {
		f, err = NewGUIDFields(raw)
	} else {
		f, err = NewFields(raw)
	}
	if err != nil {
		if f, err = NewNonstandardFields(raw); err != nil {
			return UUID{}, err
		}
	}
	return b.conv.uuid(f, codec), nil
}

// FallbackBuilder tries each builder in turn and returns the first UUID
// built. When every builder fails it returns ErrNoSuitableBuilder alone;
// the individual failures are not reported.
type FallbackBuilder struct {
	builders []Builder
}

// NewFallbackBuilder returns a builder trying builders in order.
func NewFallbackBuilder(builders ...Builder) *FallbackBuilder {
	return &FallbackBuilder{builders: builders}
}

func (b *FallbackBuilder) Build(codec Codec, raw []byte) (UUID, error) {
	for _, builder := range b.builders {
		u, err := builder.Build(codec, raw)
		if err == nil {
			return u, nil
		}
	}
	return UUID{}, ErrNoSuitableBuilder
}
