package guuid

import (
	"bytes"
	"errors"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lzww0608/guuid/v2/types"
)

func TestReaderGenerator(t *testing.T) {
	g := NewReaderGenerator(bytes.NewReader([]byte{1, 2, 3, 4}))

	b, err := g.Generate(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)

	_, err = g.Generate(3)
	assert.Error(t, err)

	b, err = NewReaderGenerator(nil).Generate(16)
	require.NoError(t, err)
	assert.Len(t, b, 16)
}

func TestRandomNodeProvider(t *testing.T) {
	p := NewRandomNodeProvider(NewReaderGenerator(bytes.NewReader(mustHexBytes(t, "0800200c9a66"))))

	node, err := p.Node()
	require.NoError(t, err)
	assert.Equal(t, "0900200c9a66", node.String())

	_, err = p.Node()
	assert.Error(t, err)
}

func TestStaticNodeProvider(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0800200c9a66", "0900200c9a66"},
		{"1", "010000000001"},
		{"ffffffffffff", "ffffffffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := NewStaticNodeProvider(types.MustHexadecimal(tt.input))
			require.NoError(t, err)
			node, err := p.Node()
			require.NoError(t, err)
			assert.Equal(t, tt.want, node.String())
		})
	}

	_, err := NewStaticNodeProvider(types.MustHexadecimal("1234567890abc"))
	assert.ErrorIs(t, err, ErrInvalidNode)

	_, err = NewStaticNodeProvider(types.Hexadecimal{})
	assert.ErrorIs(t, err, ErrInvalidNode)
}

func TestSystemNodeProvider(t *testing.T) {
	calls := 0
	p := &SystemNodeProvider{interfaces: func() ([]net.Interface, error) {
		calls++
		return []net.Interface{
			{Name: "lo", Flags: net.FlagLoopback, HardwareAddr: net.HardwareAddr{1, 2, 3, 4, 5, 6}},
			{Name: "tun0"},
			{Name: "zero", HardwareAddr: make(net.HardwareAddr, 6)},
			{Name: "ib0", HardwareAddr: make(net.HardwareAddr, 20)},
			{Name: "eth0", HardwareAddr: net.HardwareAddr{0x08, 0x00, 0x20, 0x0c, 0x9a, 0x66}},
		}, nil
	}}

	node, err := p.Node()
	require.NoError(t, err)
	assert.Equal(t, "0800200c9a66", node.String())

	_, err = p.Node()
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "interfaces are looked up once")
}

func TestSystemNodeProvider_NoNode(t *testing.T) {
	p := &SystemNodeProvider{interfaces: func() ([]net.Interface, error) {
		return []net.Interface{{Name: "lo", Flags: net.FlagLoopback}}, nil
	}}
	_, err := p.Node()
	assert.ErrorIs(t, err, ErrNoNode)

	boom := errors.New("boom")
	p = &SystemNodeProvider{interfaces: func() ([]net.Interface, error) { return nil, boom }}
	_, err = p.Node()
	assert.ErrorIs(t, err, ErrNoNode)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, ErrUnsatisfiedDependency)
}

func TestFallbackNodeProvider(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	failing := &SystemNodeProvider{interfaces: func() ([]net.Interface, error) { return nil, nil }}
	static, err := NewStaticNodeProvider(testNode)
	require.NoError(t, err)

	p := NewFallbackNodeProvider(logger, failing, static)
	node, err := p.Node()
	require.NoError(t, err)
	assert.Equal(t, "0900200c9a66", node.String())
	assert.True(t, strings.Contains(buf.String(), "node provider failed"), buf.String())

	_, err = NewFallbackNodeProvider(nil, failing).Node()
	assert.ErrorIs(t, err, ErrNoNode)
}

func TestFixedTimeProvider(t *testing.T) {
	at := types.TimeFromInt64(1341368074, 491000)
	p := NewFixedTimeProvider(at)
	assert.Equal(t, at, p.Time())
	assert.Equal(t, at, p.Time())

	now := SystemTimeProvider{}.Time()
	sec, err := now.Seconds().Int64()
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Unix(), sec, 2)
}

func TestDCESecurityProviders(t *testing.T) {
	p := NewStaticDCESecurityProvider(types.IntegerFromInt64(501), types.IntegerFromInt64(20))

	uid, err := p.UID()
	require.NoError(t, err)
	assert.Equal(t, "501", uid.String())

	gid, err := p.GID()
	require.NoError(t, err)
	assert.Equal(t, "20", gid.String())

	_, err = localID(-1, "user")
	assert.ErrorIs(t, err, ErrNoLocalIdentifier)
	assert.ErrorIs(t, err, ErrUnsatisfiedDependency)

	id, err := localID(0, "group")
	require.NoError(t, err)
	assert.Equal(t, "0", id.String())
}
