package nodes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-zookeeper/zk"

	"github.com/Lzww0608/guuid/v2/types"
)

// DefaultZKRoot is the znode under which services register.
const DefaultZKRoot = "/guuid/nodes"

// ZKConn is the subset of *zk.Conn used for registration.
type ZKConn interface {
	Exists(path string) (bool, *zk.Stat, error)
	Get(path string) ([]byte, *zk.Stat, error)
	Set(path string, data []byte, version int32) (*zk.Stat, error)
	Create(path string, data []byte, flags int32, acl []zk.ACL) (string, error)
}

var _ ZKConn = (*zk.Conn)(nil)

// DialZooKeeper connects to the ensemble. Client messages go to logger at
// debug level.
func DialZooKeeper(servers []string, timeout time.Duration, logger *slog.Logger) (*zk.Conn, error) {
	conn, _, err := zk.Connect(servers, timeout, zk.WithLogger(zkLogger{orDiscard(logger)}))
	if err != nil {
		return nil, fmt.Errorf("nodes: connect zookeeper: %w", err)
	}
	return conn, nil
}

type zkLogger struct {
	l *slog.Logger
}

func (z zkLogger) Printf(format string, args ...any) {
	z.l.Debug(fmt.Sprintf(format, args...), "component", "zookeeper")
}

// NodeInfo is the registration of one process, stored as JSON in its znode
// and in the local cache file. Times are unix milliseconds.
type NodeInfo struct {
	WorkerID   int64 `json:"worker_id"`
	CreateTime int64 `json:"create_time"`
	LastTime   int64 `json:"last_time"`
}

// ZooKeeperConfig identifies a process within the ensemble.
type ZooKeeperConfig struct {
	// Root defaults to DefaultZKRoot.
	Root    string
	Service string

	// Address is unique per process of a service, such as host:port.
	Address string

	// CacheDir keeps the last registration for restarts while the ensemble
	// is unreachable. Empty disables the cache.
	CacheDir string
}

// ZooKeeperNodeProvider returns the node registered for this process.
//
// A process seen before recovers its worker id from its znode. A new process
// takes the next number of a sequential znode, so ids are never shared
// within a service.
type ZooKeeperNodeProvider struct {
	conn   ZKConn
	cfg    ZooKeeperConfig
	logger *slog.Logger
	now    func() time.Time

	mu   sync.Mutex
	info NodeInfo
	node types.Hexadecimal
}

// NewZooKeeperNodeProvider registers the process and returns its provider.
func NewZooKeeperNodeProvider(conn ZKConn, cfg ZooKeeperConfig, logger *slog.Logger) (*ZooKeeperNodeProvider, error) {
	return newZooKeeperNodeProvider(conn, cfg, logger, time.Now)
}

func newZooKeeperNodeProvider(conn ZKConn, cfg ZooKeeperConfig, logger *slog.Logger, now func() time.Time) (*ZooKeeperNodeProvider, error) {
	if cfg.Service == "" || cfg.Address == "" {
		return nil, errors.New("nodes: zookeeper registration needs a service and an address")
	}
	if cfg.Root == "" {
		cfg.Root = DefaultZKRoot
	}
	p := &ZooKeeperNodeProvider{conn: conn, cfg: cfg, logger: orDiscard(logger), now: now}
	if err := p.register(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ZooKeeperNodeProvider) Node() (types.Hexadecimal, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.node, nil
}

// Info returns the current registration.
func (p *ZooKeeperNodeProvider) Info() NodeInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.info
}

func (p *ZooKeeperNodeProvider) servicePath() string {
	return path.Join(p.cfg.Root, p.cfg.Service)
}

func (p *ZooKeeperNodeProvider) nodeKey() string {
	return path.Join(p.servicePath(), "addr-"+escapeName(p.cfg.Address))
}

func (p *ZooKeeperNodeProvider) register() error {
	now := p.now().UnixMilli()
	key := p.nodeKey()

	if err := p.ensurePath(p.servicePath()); err != nil {
		return p.recoverFromCache(now, err)
	}
	exists, _, err := p.conn.Exists(key)
	if err != nil {
		return p.recoverFromCache(now, err)
	}

	var info NodeInfo
	if exists {
		data, _, err := p.conn.Get(key)
		if err != nil {
			return fmt.Errorf("nodes: read registration: %w", err)
		}
		if err := json.Unmarshal(data, &info); err != nil {
			return fmt.Errorf("nodes: decode registration %s: %w", key, err)
		}
		if now < info.LastTime {
			return fmt.Errorf("%w: %d < %d", ErrClockBackwards, now, info.LastTime)
		}
		p.logger.Info("recovered worker id from zookeeper", "worker_id", info.WorkerID)
	} else {
		cached, err := p.loadCache()
		switch {
		case err == nil:
			if now < cached.LastTime {
				return fmt.Errorf("%w: %d < %d", ErrClockBackwards, now, cached.LastTime)
			}
			info = cached
			p.logger.Info("recovered worker id from local cache", "worker_id", info.WorkerID)
		default:
			id, err := p.nextSequence()
			if err != nil {
				return err
			}
			info = NodeInfo{WorkerID: id, CreateTime: now}
		}
	}
	info.LastTime = now

	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("nodes: encode registration: %w", err)
	}
	if exists {
		_, err = p.conn.Set(key, data, -1)
	} else {
		_, err = p.conn.Create(key, data, 0, zk.WorldACL(zk.PermAll))
	}
	if err != nil {
		return fmt.Errorf("nodes: write registration %s: %w", key, err)
	}
	return p.adopt(info)
}

// recoverFromCache uses the cached registration when the ensemble could not
// be reached.
func (p *ZooKeeperNodeProvider) recoverFromCache(now int64, cause error) error {
	info, err := p.loadCache()
	if err != nil {
		return fmt.Errorf("nodes: zookeeper: %w", cause)
	}
	if now < info.LastTime {
		return fmt.Errorf("%w: %d < %d", ErrClockBackwards, now, info.LastTime)
	}
	p.logger.Warn("zookeeper unavailable, using cached worker id", "worker_id", info.WorkerID, "error", cause)
	info.LastTime = now
	return p.adopt(info)
}

func (p *ZooKeeperNodeProvider) adopt(info NodeInfo) error {
	node, err := FromID(info.WorkerID)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.info = info
	p.node = node
	p.mu.Unlock()
	p.saveCache(info)
	return nil
}

// nextSequence creates a sequential znode and returns its number.
func (p *ZooKeeperNodeProvider) nextSequence() (int64, error) {
	prefix := path.Join(p.servicePath(), "seq-")
	created, err := p.conn.Create(prefix, nil, zk.FlagSequence, zk.WorldACL(zk.PermAll))
	if err != nil {
		return 0, fmt.Errorf("nodes: allocate worker id: %w", err)
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(created, prefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("nodes: unexpected sequential znode %q: %w", created, err)
	}
	return id, nil
}

// ensurePath creates every missing znode along p.
func (p *ZooKeeperNodeProvider) ensurePath(full string) error {
	cur := ""
	for _, part := range strings.Split(strings.Trim(full, "/"), "/") {
		cur += "/" + part
		exists, _, err := p.conn.Exists(cur)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := p.conn.Create(cur, nil, 0, zk.WorldACL(zk.PermAll)); err != nil && !errors.Is(err, zk.ErrNodeExists) {
			return err
		}
	}
	return nil
}

// Heartbeat refreshes the last time of the registration every interval
// until ctx is done.
func (p *ZooKeeperNodeProvider) Heartbeat(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.beat()
		}
	}
}

func (p *ZooKeeperNodeProvider) beat() {
	now := p.now().UnixMilli()

	p.mu.Lock()
	if now < p.info.LastTime {
		last := p.info.LastTime
		p.mu.Unlock()
		p.logger.Error("clock rollback detected during heartbeat", "now", now, "last", last)
		return
	}
	p.info.LastTime = now
	info := p.info
	p.mu.Unlock()

	data, err := json.Marshal(info)
	if err != nil {
		return
	}
	// The ensemble may be briefly unavailable; the next beat retries.
	if _, err := p.conn.Set(p.nodeKey(), data, -1); err != nil {
		p.logger.Warn("heartbeat failed", "error", err)
	}
	p.saveCache(info)
}

func (p *ZooKeeperNodeProvider) cacheFile() string {
	name := fmt.Sprintf("guuid_node_%s_%s.json", escapeName(p.cfg.Service), escapeName(p.cfg.Address))
	return filepath.Join(p.cfg.CacheDir, name)
}

func (p *ZooKeeperNodeProvider) saveCache(info NodeInfo) {
	if p.cfg.CacheDir == "" {
		return
	}
	data, err := json.Marshal(info)
	if err == nil {
		err = os.WriteFile(p.cacheFile(), data, 0o644)
	}
	if err != nil {
		p.logger.Warn("could not write node cache", "file", p.cacheFile(), "error", err)
	}
}

func (p *ZooKeeperNodeProvider) loadCache() (NodeInfo, error) {
	if p.cfg.CacheDir == "" {
		return NodeInfo{}, os.ErrNotExist
	}
	data, err := os.ReadFile(p.cacheFile())
	if err != nil {
		return NodeInfo{}, err
	}
	var info NodeInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return NodeInfo{}, err
	}
	return info, nil
}

func escapeName(s string) string {
	return strings.NewReplacer("/", "_", ":", "_").Replace(s)
}
