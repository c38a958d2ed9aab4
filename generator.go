package guuid

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"time"

	"github.com/Lzww0608/guuid/v2/convert"
	"github.com/Lzww0608/guuid/v2/types"
)

// TimeOption customizes a single time-based UUID.
type TimeOption func(*timeParams)

type timeParams struct {
	node        types.Hexadecimal
	clockSeq    int
	hasClockSeq bool
	at          *types.Time
	localID     *types.Integer
}

// NodeID uses node instead of the configured node provider.
func NodeID(node types.Hexadecimal) TimeOption {
	return func(p *timeParams) { p.node = node }
}

// ClockSequence uses seq instead of a random clock sequence.
func ClockSequence(seq int) TimeOption {
	return func(p *timeParams) {
		p.clockSeq = seq
		p.hasClockSeq = true
	}
}

// At uses t instead of the time provider.
func At(t time.Time) TimeOption {
	return func(p *timeParams) {
		tt := types.TimeOf(t)
		p.at = &tt
	}
}

// LocalID sets the local identifier of a version 2 UUID. It is required for
// DomainOrg; DomainPerson and DomainGroup default to the process UID and GID.
func LocalID(id types.Integer) TimeOption {
	return func(p *timeParams) { p.localID = &id }
}

func collect(opts []TimeOption) timeParams {
	var p timeParams
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// setVersion writes the version nibble and the RFC 4122 variant bits.
func setVersion(b *[16]byte, v Version) {
	b[6] = (b[6] & 0x0f) | byte(v)<<4
	b[8] = (b[8] & 0x3f) | 0x80
}

// TimeGenerator produces the bytes of version 1 UUIDs.
type TimeGenerator struct {
	times  convert.TimeConverter
	clock  TimeProvider
	nodes  NodeProvider
	random RandomGenerator
}

func NewTimeGenerator(times convert.TimeConverter, clock TimeProvider, nodes NodeProvider, random RandomGenerator) *TimeGenerator {
	return &TimeGenerator{times: times, clock: clock, nodes: nodes, random: random}
}

// Generate returns the logical bytes of a version 1 UUID. A clock sequence
// must fit in 14 bits.
func (g *TimeGenerator) Generate(p timeParams) ([16]byte, error) {
	var b [16]byte

	node := p.node
	if node.IsZero() {
		n, err := g.nodes.Node()
		if err != nil {
			return b, err
		}
		node = n
	}
	nb, err := nodeBytes(node)
	if err != nil {
		return b, err
	}

	seq := p.clockSeq
	if !p.hasClockSeq {
		r, err := g.random.Generate(2)
		if err != nil {
			return b, err
		}
		seq = int(binary.BigEndian.Uint16(r) & 0x3fff)
	}
	if seq < 0 || seq > 0x3fff {
		return b, fmt.Errorf("%w: %d is not between 0 and 16383", ErrInvalidClockSeq, seq)
	}

	t := g.clock.Time()
	if p.at != nil {
		t = *p.at
	}
	ts, err := g.times.CalculateTime(t)
	if err != nil {
		return b, err
	}
	var tb [8]byte
	if _, err := hex.Decode(tb[:], []byte(ts.Pad(16).String())); err != nil {
		return b, err
	}

	copy(b[0:4], tb[4:8])
	copy(b[4:6], tb[2:4])
	copy(b[6:8], tb[0:2])
	b[8] = byte(seq >> 8)
	b[9] = byte(seq)
	copy(b[10:16], nb[:])
	setVersion(&b, VersionTimeBased)
	return b, nil
}

// DCESecurityGenerator produces the bytes of version 2 UUIDs: version 1
// bytes with time_low replaced by a local identifier and clock_seq_low by
// the domain.
type DCESecurityGenerator struct {
	numbers convert.NumberConverter
	times   *TimeGenerator
	dce     DCESecurityProvider
}

func NewDCESecurityGenerator(numbers convert.NumberConverter, times *TimeGenerator, dce DCESecurityProvider) *DCESecurityGenerator {
	return &DCESecurityGenerator{numbers: numbers, times: times, dce: dce}
}

// Generate returns the logical bytes of a version 2 UUID. The clock
// sequence must be between 0 and 63.
func (g *DCESecurityGenerator) Generate(domain Domain, p timeParams) ([16]byte, error) {
	var b [16]byte
	if !domain.Valid() {
		return b, fmt.Errorf("%w: %d", ErrInvalidDomain, byte(domain))
	}
	if p.hasClockSeq {
		if p.clockSeq < 0 || p.clockSeq > 63 {
			return b, fmt.Errorf("%w: %d is not between 0 and 63", ErrInvalidClockSeq, p.clockSeq)
		}
		p.clockSeq <<= 8
	}

	id, err := g.localIdentifier(domain, p.localID)
	if err != nil {
		return b, err
	}
	if id.IsNegative() {
		return b, fmt.Errorf("%w: %s", ErrInvalidLocalIdentifier, id)
	}
	idHex, err := g.numbers.ToHex(id)
	if err != nil {
		return b, err
	}
	if len(idHex.String()) > 8 {
		return b, fmt.Errorf("%w: %s", ErrInvalidLocalIdentifier, id)
	}

	if b, err = g.times.Generate(p); err != nil {
		return b, err
	}
	if _, err := hex.Decode(b[0:4], []byte(idHex.Pad(8).String())); err != nil {
		return b, err
	}
	b[9] = byte(domain)
	setVersion(&b, VersionDCESecurity)
	return b, nil
}

func (g *DCESecurityGenerator) localIdentifier(domain Domain, id *types.Integer) (types.Integer, error) {
	if id != nil {
		return *id, nil
	}
	switch domain {
	case DomainPerson:
		return g.dce.UID()
	case DomainGroup:
		return g.dce.GID()
	}
	return types.Integer{}, fmt.Errorf("%w: a local identifier must be provided for the org domain", ErrInvalidLocalIdentifier)
}

// generateName returns the logical bytes of a version 3 (MD5) or version 5
// (SHA-1) UUID of name within namespace ns.
func generateName(ns UUID, name string, v Version) [16]byte {
	var h hash.Hash
	if v == VersionNameBasedMD5 {
		h = md5.New()
	} else {
		h = sha1.New()
	}
	space := logical(ns.fieldsOrNil())
	h.Write(space[:])
	h.Write([]byte(name))

	var b [16]byte
	copy(b[:], h.Sum(nil))
	setVersion(&b, v)
	return b
}

// CombGenerator is a RandomGenerator whose output ends with 48 bits of
// wall-clock time counted in 10 microsecond units, so random UUIDs built
// from it sort by creation time.
type CombGenerator struct {
	random  RandomGenerator
	numbers convert.NumberConverter
	clock   TimeProvider
}

const combTimestampBytes = 6

func NewCombGenerator(random RandomGenerator, numbers convert.NumberConverter, clock TimeProvider) *CombGenerator {
	return &CombGenerator{random: random, numbers: numbers, clock: clock}
}

func (g *CombGenerator) Generate(n int) ([]byte, error) {
	if n < combTimestampBytes {
		return nil, fmt.Errorf("%w: length must be at least %d", ErrInvalidArgument, combTimestampBytes)
	}
	out := make([]byte, n)
	if n > combTimestampBytes {
		r, err := g.random.Generate(n - combTimestampBytes)
		if err != nil {
			return nil, err
		}
		copy(out, r)
	}

	stamp, err := g.timestamp()
	if err != nil {
		return nil, err
	}
	if _, err := hex.Decode(out[n-combTimestampBytes:], []byte(stamp)); err != nil {
		return nil, err
	}
	return out, nil
}

// timestamp returns the current time as 12 hex digits of 10µs units.
func (g *CombGenerator) timestamp() (string, error) {
	t := g.clock.Time()
	usec, err := t.Microseconds().Int64()
	if err != nil {
		return "", err
	}
	units, err := types.NewInteger(t.Seconds().String() + fmt.Sprintf("%05d", usec/10))
	if err != nil {
		return "", err
	}
	if units.IsNegative() {
		return "", fmt.Errorf("%w: %s precedes the Unix epoch", ErrTimeOutOfRange, t.Seconds())
	}
	h, err := g.numbers.ToHex(units)
	if err != nil {
		return "", err
	}
	s := h.Pad(2 * combTimestampBytes).String()
	return s[len(s)-2*combTimestampBytes:], nil
}
