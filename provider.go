package guuid

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/Lzww0608/guuid/v2/types"
)

// RandomGenerator produces random bytes for UUID generation.
type RandomGenerator interface {
	Generate(n int) ([]byte, error)
}

// ReaderGenerator reads random bytes from an io.Reader.
type ReaderGenerator struct {
	r io.Reader
}

// NewReaderGenerator returns a RandomGenerator over r, or over crypto/rand
// when r is nil.
func NewReaderGenerator(r io.Reader) *ReaderGenerator {
	if r == nil {
		r = rand.Reader
	}
	return &ReaderGenerator{r: r}
}

func (g *ReaderGenerator) Generate(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(g.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// NodeProvider supplies the 48-bit node of time-based UUIDs.
type NodeProvider interface {
	Node() (types.Hexadecimal, error)
}

// RandomNodeProvider returns a fresh random node on every call, with the
// multicast bit set so it cannot collide with a hardware address.
type RandomNodeProvider struct {
	random RandomGenerator
}

func NewRandomNodeProvider(random RandomGenerator) *RandomNodeProvider {
	return &RandomNodeProvider{random: random}
}

func (p *RandomNodeProvider) Node() (types.Hexadecimal, error) {
	b, err := p.random.Generate(6)
	if err != nil {
		return types.Hexadecimal{}, fmt.Errorf("guuid: random node: %w", err)
	}
	b[0] |= 0x01
	return types.MustHexadecimal(hex.EncodeToString(b)), nil
}

// StaticNodeProvider always returns the same node. The multicast bit is set
// on the node it was given.
type StaticNodeProvider struct {
	node types.Hexadecimal
}

// NewStaticNodeProvider validates node, which must be at most 12 hex digits.
func NewStaticNodeProvider(node types.Hexadecimal) (*StaticNodeProvider, error) {
	b, err := nodeBytes(node)
	if err != nil {
		return nil, err
	}
	b[0] |= 0x01
	return &StaticNodeProvider{node: types.MustHexadecimal(hex.EncodeToString(b[:]))}, nil
}

func (p *StaticNodeProvider) Node() (types.Hexadecimal, error) {
	return p.node, nil
}

// SystemNodeProvider returns the hardware address of the first network
// interface that is not a loopback and has a 48-bit address. The address
// is looked up once.
type SystemNodeProvider struct {
	once       sync.Once
	node       types.Hexadecimal
	err        error
	interfaces func() ([]net.Interface, error)
}

func NewSystemNodeProvider() *SystemNodeProvider {
	return &SystemNodeProvider{interfaces: net.Interfaces}
}

func (p *SystemNodeProvider) Node() (types.Hexadecimal, error) {
	p.once.Do(func() {
		p.node, p.err = p.lookup()
	})
	return p.node, p.err
}

func (p *SystemNodeProvider) lookup() (types.Hexadecimal, error) {
	ifaces, err := p.interfaces()
	if err != nil {
		return types.Hexadecimal{}, fmt.Errorf("%w: %w", ErrNoNode, err)
	}
	zero := make([]byte, 6)
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if len(iface.HardwareAddr) != 6 || bytes.Equal(iface.HardwareAddr, zero) {
			continue
		}
		return types.MustHexadecimal(hex.EncodeToString(iface.HardwareAddr)), nil
	}
	return types.Hexadecimal{}, fmt.Errorf("%w: no interface with a 48-bit hardware address", ErrNoNode)
}

// FallbackNodeProvider asks each provider in turn and returns the first node.
type FallbackNodeProvider struct {
	providers []NodeProvider
	logger    *slog.Logger
}

func NewFallbackNodeProvider(logger *slog.Logger, providers ...NodeProvider) *FallbackNodeProvider {
	return &FallbackNodeProvider{providers: providers, logger: logger}
}

func (p *FallbackNodeProvider) Node() (types.Hexadecimal, error) {
	for _, provider := range p.providers {
		node, err := provider.Node()
		if err == nil {
			return node, nil
		}
		if p.logger != nil {
			p.logger.Debug("node provider failed", "provider", fmt.Sprintf("%T", provider), "error", err)
		}
	}
	return types.Hexadecimal{}, ErrNoNode
}

// nodeBytes validates node and left-pads it to 48 bits.
func nodeBytes(node types.Hexadecimal) ([6]byte, error) {
	var b [6]byte
	if node.IsZero() || len(node.String()) > 12 {
		return b, fmt.Errorf("%w: %q must be 1 to 12 hexadecimal digits", ErrInvalidNode, node.String())
	}
	if _, err := hex.Decode(b[:], []byte(node.Pad(12).String())); err != nil {
		return b, fmt.Errorf("%w: %w", ErrInvalidNode, err)
	}
	return b, nil
}

// TimeProvider supplies the current time to time-based generators.
type TimeProvider interface {
	Time() types.Time
}

// SystemTimeProvider reads the system clock.
type SystemTimeProvider struct{}

func (SystemTimeProvider) Time() types.Time {
	return types.TimeOf(time.Now())
}

// FixedTimeProvider always returns the same time.
type FixedTimeProvider struct {
	t types.Time
}

func NewFixedTimeProvider(t types.Time) *FixedTimeProvider {
	return &FixedTimeProvider{t: t}
}

func (p *FixedTimeProvider) Time() types.Time {
	return p.t
}

// DCESecurityProvider supplies the local identifiers of version 2 UUIDs.
type DCESecurityProvider interface {
	UID() (types.Integer, error)
	GID() (types.Integer, error)
}

// SystemDCESecurityProvider returns the user and group IDs of the process.
type SystemDCESecurityProvider struct{}

func (SystemDCESecurityProvider) UID() (types.Integer, error) {
	return localID(os.Getuid(), "user")
}

func (SystemDCESecurityProvider) GID() (types.Integer, error) {
	return localID(os.Getgid(), "group")
}

func localID(id int, kind string) (types.Integer, error) {
	// -1 on platforms without POSIX identifiers
	if id < 0 {
		return types.Integer{}, fmt.Errorf("%w: no %s ID on this platform", ErrNoLocalIdentifier, kind)
	}
	return types.IntegerFromInt64(int64(id)), nil
}

// StaticDCESecurityProvider returns fixed identifiers.
type StaticDCESecurityProvider struct {
	uid, gid types.Integer
}

func NewStaticDCESecurityProvider(uid, gid types.Integer) *StaticDCESecurityProvider {
	return &StaticDCESecurityProvider{uid: uid, gid: gid}
}

func (p *StaticDCESecurityProvider) UID() (types.Integer, error) { return p.uid, nil }
func (p *StaticDCESecurityProvider) GID() (types.Integer, error) { return p.gid, nil }
