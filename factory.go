package guuid

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/Lzww0608/guuid/v2/calc"
	"github.com/Lzww0608/guuid/v2/convert"
	"github.com/Lzww0608/guuid/v2/types"
)

// CodecKind selects the codec of a Factory using the RFC 4122 layout.
type CodecKind byte

const (
	CodecString CodecKind = iota
	CodecOrderedTime
	CodecTimestampFirstComb
	CodecTimestampLastComb
)

func (k CodecKind) String() string {
	switch k {
	case CodecString:
		return "string"
	case CodecOrderedTime:
		return "ordered-time"
	case CodecTimestampFirstComb:
		return "timestamp-first-comb"
	case CodecTimestampLastComb:
		return "timestamp-last-comb"
	}
	return fmt.Sprintf("CodecKind(%d)", byte(k))
}

// ParseCodecKind parses the names returned by CodecKind.String.
func ParseCodecKind(s string) (CodecKind, error) {
	for k := CodecString; k <= CodecTimestampLastComb; k++ {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown codec %q", ErrInvalidArgument, s)
}

type options struct {
	guid             bool
	codec            CodecKind
	calculator       calc.Calculator
	degraded         bool
	strict           bool
	comb             bool
	random           RandomGenerator
	nodes            NodeProvider
	ignoreSystemNode bool
	clock            TimeProvider
	dce              DCESecurityProvider
	logger           *slog.Logger
}

// Option configures a Factory.
type Option func(*options)

// WithGUIDs stores UUIDs in the GUID layout and formats them with the GUID codec.
func WithGUIDs() Option {
	return func(o *options) { o.guid = true }
}

// WithCodec selects the codec used with the RFC 4122 layout.
func WithCodec(kind CodecKind) Option {
	return func(o *options) { o.codec = kind }
}

// WithCalculator replaces the math/big calculator.
func WithCalculator(c calc.Calculator) Option {
	return func(o *options) { o.calculator = c }
}

// WithDegraded builds UUIDs that refuse integer and time conversions.
func WithDegraded() Option {
	return func(o *options) { o.degraded = true }
}

// WithStrict rejects bytes that are not valid RFC 4122 UUIDs instead of
// keeping them as nonstandard UUIDs.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithRandomGenerator replaces the crypto/rand random source.
func WithRandomGenerator(g RandomGenerator) Option {
	return func(o *options) { o.random = g }
}

// WithReader reads random bytes from r.
// This is primarily useful for testing with deterministic random sources.
func WithReader(r io.Reader) Option {
	return func(o *options) { o.random = NewReaderGenerator(r) }
}

// WithCombGenerator embeds a timestamp in the random bytes of version 4
// UUIDs. It is usually paired with one of the COMB codecs.
func WithCombGenerator() Option {
	return func(o *options) { o.comb = true }
}

// WithNodeProvider replaces the node provider of time-based UUIDs.
func WithNodeProvider(p NodeProvider) Option {
	return func(o *options) { o.nodes = p }
}

// WithoutSystemNode never reads hardware addresses; nodes are random.
func WithoutSystemNode() Option {
	return func(o *options) { o.ignoreSystemNode = true }
}

// WithTimeProvider replaces the system clock.
func WithTimeProvider(p TimeProvider) Option {
	return func(o *options) { o.clock = p }
}

// WithDCESecurityProvider replaces the process UID and GID lookup.
func WithDCESecurityProvider(p DCESecurityProvider) Option {
	return func(o *options) { o.dce = p }
}

// WithLogger sets the logger for diagnostics. Output is discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Factory decodes and generates UUIDs with one fixed configuration.
// A Factory is safe for concurrent use.
type Factory struct {
	layout  Layout
	codec   Codec
	builder Builder
	conv    converters
	random  RandomGenerator
	clock   TimeProvider
	timeGen *TimeGenerator
	dceGen  *DCESecurityGenerator
	unixGen *UnixTimeGenerator
	logger  *slog.Logger
}

// NewFactory assembles a Factory. Without options it produces RFC 4122
// UUIDs formatted canonically, keeps unrecognized bytes as nonstandard
// UUIDs and uses crypto/rand, the system clock and the first hardware
// address found.
func NewFactory(opts ...Option) *Factory {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.calculator == nil {
		o.calculator = calc.NewBigCalculator()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.random == nil {
		o.random = NewReaderGenerator(nil)
	}
	if o.clock == nil {
		o.clock = SystemTimeProvider{}
	}
	if o.dce == nil {
		o.dce = SystemDCESecurityProvider{}
	}
	if o.nodes == nil {
		if o.ignoreSystemNode {
			o.nodes = NewRandomNodeProvider(o.random)
		} else {
			o.nodes = NewFallbackNodeProvider(o.logger, NewSystemNodeProvider(), NewRandomNodeProvider(o.random))
		}
	}

	conv := converters{
		numbers:   convert.NewNumberConverter(o.calculator),
		gregorian: convert.NewGenericTimeConverter(o.calculator),
		unix:      convert.NewUnixTimeConverter(o.calculator),
	}
	if o.degraded {
		conv = converters{
			numbers:   convert.DegradedNumberConverter{},
			gregorian: convert.DegradedTimeConverter{},
			unix:      convert.DegradedTimeConverter{},
		}
	}

	f := &Factory{conv: conv, clock: o.clock, logger: o.logger}

	switch {
	case o.degraded && o.guid:
		f.builder = NewDegradedBuilder(LayoutGUID)
	case o.degraded:
		f.builder = NewDegradedBuilder(LayoutRFC4122)
	case o.guid:
		f.builder = NewGUIDBuilder(conv.numbers, conv.gregorian, conv.unix)
	case o.strict:
		f.builder = NewRFC4122Builder(conv.numbers, conv.gregorian, conv.unix)
	default:
		f.builder = NewFallbackBuilder(
			NewRFC4122Builder(conv.numbers, conv.gregorian, conv.unix),
			NewNonstandardBuilder(conv.numbers, conv.gregorian),
		)
	}

	f.layout = LayoutRFC4122
	if o.guid {
		f.layout = LayoutGUID
		f.codec = NewGUIDStringCodec(f.builder)
	} else {
		f.codec = newCodec(o.codec, f.builder)
	}

	f.random = o.random
	if o.comb {
		f.random = NewCombGenerator(o.random, conv.numbers, o.clock)
	}
	f.timeGen = NewTimeGenerator(conv.gregorian, o.clock, o.nodes, o.random)
	f.dceGen = NewDCESecurityGenerator(conv.numbers, f.timeGen, o.dce)
	f.unixGen = NewUnixTimeGenerator(o.random, conv.unix, o.clock, o.logger)

	o.logger.Debug("uuid factory assembled",
		"layout", f.layout.String(),
		"codec", fmt.Sprintf("%T", f.codec),
		"degraded", o.degraded,
		"strict", o.strict,
		"comb", o.comb,
	)
	return f
}

func newCodec(kind CodecKind, b Builder) Codec {
	switch kind {
	case CodecOrderedTime:
		return NewOrderedTimeCodec(b)
	case CodecTimestampFirstComb:
		return NewTimestampFirstCombCodec(b)
	case CodecTimestampLastComb:
		return NewTimestampLastCombCodec(b)
	}
	return NewStringCodec(b)
}

// Codec returns the codec of the UUIDs the factory produces.
func (f *Factory) Codec() Codec { return f.codec }

// Layout returns the storage layout of the UUIDs the factory generates.
func (f *Factory) Layout() Layout { return f.layout }

// FromString decodes a UUID in any of the forms accepted by Parse.
func (f *Factory) FromString(s string) (UUID, error) {
	return f.codec.Decode(s)
}

// FromBytes decodes the 16-byte binary form written by the factory's codec.
func (f *Factory) FromBytes(b []byte) (UUID, error) {
	return f.codec.DecodeBytes(b)
}

// FromHexadecimal decodes the 32 hex digits returned by UUID.Hex.
func (f *Factory) FromHexadecimal(h types.Hexadecimal) (UUID, error) {
	return f.codec.Decode(h.String())
}

// FromInteger decodes the 128-bit value returned by UUID.Integer.
func (f *Factory) FromInteger(i types.Integer) (UUID, error) {
	h, err := f.conv.numbers.ToHex(i)
	if err != nil {
		return UUID{}, err
	}
	if len(h.String()) > 32 {
		return UUID{}, fmt.Errorf("%w: %s exceeds 128 bits", ErrInvalidFormat, i)
	}
	return f.codec.Decode(h.Pad(32).String())
}

// build stores the logical bytes b in the factory's layout.
func (f *Factory) build(b [16]byte) (UUID, error) {
	if f.layout == LayoutGUID {
		b = swapGUID(b)
	}
	return f.builder.Build(f.codec, b[:])
}

// NewV1 generates a time-based UUID.
func (f *Factory) NewV1(opts ...TimeOption) (UUID, error) {
	b, err := f.timeGen.Generate(collect(opts))
	if err != nil {
		return UUID{}, err
	}
	return f.build(b)
}

// NewV2 generates a DCE Security UUID for the local domain.
func (f *Factory) NewV2(domain Domain, opts ...TimeOption) (UUID, error) {
	b, err := f.dceGen.Generate(domain, collect(opts))
	if err != nil {
		return UUID{}, err
	}
	return f.build(b)
}

// NewV3 generates a name-based UUID using MD5.
func (f *Factory) NewV3(ns UUID, name string) (UUID, error) {
	return f.build(generateName(ns, name, VersionNameBasedMD5))
}

// NewV4 generates a random UUID.
func (f *Factory) NewV4() (UUID, error) {
	r, err := f.random.Generate(16)
	if err != nil {
		return UUID{}, err
	}
	var b [16]byte
	copy(b[:], r)
	setVersion(&b, VersionRandom)
	return f.build(b)
}

// NewV5 generates a name-based UUID using SHA-1.
func (f *Factory) NewV5(ns UUID, name string) (UUID, error) {
	return f.build(generateName(ns, name, VersionNameBasedSHA1))
}

// NewV6 generates a reordered-time UUID.
func (f *Factory) NewV6(opts ...TimeOption) (UUID, error) {
	b, err := f.timeGen.Generate(collect(opts))
	if err != nil {
		return UUID{}, err
	}
	return f.build(v1ToV6(b))
}

// NewV7 generates a Unix-time UUID for the current time.
func (f *Factory) NewV7() (UUID, error) {
	b, err := f.unixGen.Generate()
	if err != nil {
		return UUID{}, err
	}
	return f.build(b)
}

// NewV7At generates a Unix-time UUID for t.
func (f *Factory) NewV7At(t time.Time) (UUID, error) {
	b, err := f.unixGen.GenerateAt(types.TimeOf(t))
	if err != nil {
		return UUID{}, err
	}
	return f.build(b)
}

// NewV8 generates a custom UUID from 16 caller-chosen bytes. Only the
// version and variant bits are overwritten.
func (f *Factory) NewV8(custom []byte) (UUID, error) {
	if err := checkLength(custom); err != nil {
		return UUID{}, err
	}
	var b [16]byte
	copy(b[:], custom)
	setVersion(&b, VersionCustom)
	return f.build(b)
}
