package nodes

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/Lzww0608/guuid/v2/types"
)

// DefaultTable is the allocation table used by NewSegmentDAO.
const DefaultTable = "guuid_node_alloc"

// OpenMySQL opens a connection pool for the MySQL DSN.
func OpenMySQL(dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("nodes: %w", err)
	}
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("nodes: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)
	return db, nil
}

// Segment is the range of ids (Base, Max] reserved by one allocation.
type Segment struct {
	Base   int64
	Max    int64
	Step   int
	Cursor int64
}

// Remaining returns how many ids of the segment are still unused.
func (s *Segment) Remaining() int64 {
	return s.Max - s.Cursor
}

// SegmentDAO reserves segments from a table shaped like
//
//	CREATE TABLE guuid_node_alloc (
//	    biz_tag VARCHAR(128) NOT NULL PRIMARY KEY,
//	    max_id  BIGINT       NOT NULL DEFAULT 0,
//	    step    INT          NOT NULL DEFAULT 1
//	);
//
// with one row per tag. Every process sharing a tag draws disjoint ids.
type SegmentDAO struct {
	db    *sql.DB
	table string
}

func NewSegmentDAO(db *sql.DB) *SegmentDAO {
	return &SegmentDAO{db: db, table: DefaultTable}
}

// FetchNextSegment advances max_id of tag by its step and returns the
// reserved range.
func (d *SegmentDAO) FetchNextSegment(ctx context.Context, tag string) (*Segment, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("nodes: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "UPDATE "+d.table+" SET max_id = max_id + step WHERE biz_tag = ?", tag)
	if err != nil {
		return nil, fmt.Errorf("nodes: reserve segment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("%w %q", ErrUnknownTag, tag)
	}

	var (
		maxID int64
		step  int
	)
	err = tx.QueryRowContext(ctx, "SELECT max_id, step FROM "+d.table+" WHERE biz_tag = ?", tag).Scan(&maxID, &step)
	if err != nil {
		return nil, fmt.Errorf("nodes: read segment: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("nodes: commit: %w", err)
	}

	base := maxID - int64(step)
	return &Segment{Base: base, Max: maxID, Step: step, Cursor: base}, nil
}

// Allocator hands out the ids of successive segments of one tag.
type Allocator struct {
	dao *SegmentDAO
	tag string

	mu      sync.Mutex
	current *Segment
}

func NewAllocator(dao *SegmentDAO, tag string) *Allocator {
	return &Allocator{dao: dao, tag: tag}
}

// NextID returns the next unused id, reserving a new segment when the
// current one is exhausted.
func (a *Allocator) NextID(ctx context.Context) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil || a.current.Remaining() <= 0 {
		seg, err := a.dao.FetchNextSegment(ctx, a.tag)
		if err != nil {
			return 0, err
		}
		a.current = seg
	}
	a.current.Cursor++
	return a.current.Cursor, nil
}

// SegmentNodeProvider leases one node per process from an Allocator. The
// lease is taken on the first call to Node and kept until Renew.
type SegmentNodeProvider struct {
	alloc  *Allocator
	logger *slog.Logger

	mu   sync.Mutex
	node types.Hexadecimal
}

func NewSegmentNodeProvider(alloc *Allocator, logger *slog.Logger) *SegmentNodeProvider {
	return &SegmentNodeProvider{alloc: alloc, logger: orDiscard(logger)}
}

func (p *SegmentNodeProvider) Node() (types.Hexadecimal, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.node.IsZero() {
		return p.node, nil
	}
	return p.lease(context.Background())
}

// Renew drops the current lease and takes a new one.
func (p *SegmentNodeProvider) Renew(ctx context.Context) (types.Hexadecimal, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.lease(ctx)
}

func (p *SegmentNodeProvider) lease(ctx context.Context) (types.Hexadecimal, error) {
	id, err := p.alloc.NextID(ctx)
	if err != nil {
		return types.Hexadecimal{}, err
	}
	node, err := FromID(id)
	if err != nil {
		return types.Hexadecimal{}, err
	}
	p.node = node
	p.logger.Info("leased node", "tag", p.alloc.tag, "id", id, "node", node.String())
	return node, nil
}
