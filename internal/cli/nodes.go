package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/Lzww0608/guuid/v2"
	"github.com/Lzww0608/guuid/v2/internal/config"
	"github.com/Lzww0608/guuid/v2/nodes"
)

const defaultZKTimeout = 5 * time.Second

// nodeProvider builds the provider selected by src. It returns a nil
// provider when no source is configured. The closer releases the
// connection and is never nil.
func nodeProvider(src config.NodeSource, logger *slog.Logger) (guuid.NodeProvider, io.Closer, error) {
	switch strings.ToLower(src.Kind) {
	case "":
		return nil, nopCloser{}, nil

	case "mysql":
		if src.DSN == "" || src.Tag == "" {
			return nil, nil, fmt.Errorf("node_source: mysql needs a dsn and a tag")
		}
		db, err := nodes.OpenMySQL(src.DSN)
		if err != nil {
			return nil, nil, err
		}
		alloc := nodes.NewAllocator(nodes.NewSegmentDAO(db), src.Tag)
		return nodes.NewSegmentNodeProvider(alloc, logger), db, nil

	case "zookeeper":
		if len(src.Servers) == 0 {
			return nil, nil, fmt.Errorf("node_source: zookeeper needs at least one server")
		}
		timeout := src.Timeout
		if timeout <= 0 {
			timeout = defaultZKTimeout
		}
		conn, err := nodes.DialZooKeeper(src.Servers, timeout, logger)
		if err != nil {
			return nil, nil, err
		}
		p, err := nodes.NewZooKeeperNodeProvider(conn, nodes.ZooKeeperConfig{
			Root:     src.Root,
			Service:  src.Service,
			Address:  src.Address,
			CacheDir: src.CacheDir,
		}, logger)
		if err != nil {
			conn.Close()
			return nil, nil, err
		}
		return p, closerFunc(conn.Close), nil
	}
	return nil, nil, fmt.Errorf("node_source: unknown kind %q", src.Kind)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

// heartbeat keeps the zookeeper registration fresh while a long batch runs.
func heartbeat(ctx context.Context, p guuid.NodeProvider, interval time.Duration) {
	if zp, ok := p.(*nodes.ZooKeeperNodeProvider); ok {
		go func() { _ = zp.Heartbeat(ctx, interval) }()
	}
}
