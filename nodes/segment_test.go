package nodes

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lzww0608/guuid/v2/uuiderr"
)

var (
	reserveSQL = regexp.QuoteMeta("UPDATE guuid_node_alloc SET max_id = max_id + step WHERE biz_tag = ?")
	readSQL    = regexp.QuoteMeta("SELECT max_id, step FROM guuid_node_alloc WHERE biz_tag = ?")
)

func expectSegment(mock sqlmock.Sqlmock, tag string, maxID int64, step int) {
	mock.ExpectBegin()
	mock.ExpectExec(reserveSQL).WithArgs(tag).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(readSQL).WithArgs(tag).
		WillReturnRows(sqlmock.NewRows([]string{"max_id", "step"}).AddRow(maxID, step))
	mock.ExpectCommit()
}

func newMockDAO(t *testing.T) (*SegmentDAO, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSegmentDAO(db), mock
}

func TestFromID(t *testing.T) {
	node, err := FromID(0)
	require.NoError(t, err)
	assert.Equal(t, "010000000000", node.String())

	node, err = FromID(0xabcdef)
	require.NoError(t, err)
	assert.Equal(t, "010000abcdef", node.String())

	node, err = FromID(MaxID)
	require.NoError(t, err)
	assert.Equal(t, "01ffffffffff", node.String())

	for _, id := range []int64{-1, MaxID + 1} {
		_, err := FromID(id)
		assert.ErrorIs(t, err, ErrIDOutOfRange)
		assert.ErrorIs(t, err, uuiderr.ErrInvalidArgument)
	}
}

func TestFetchNextSegment(t *testing.T) {
	dao, mock := newMockDAO(t)
	expectSegment(mock, "orders", 30, 10)

	seg, err := dao.FetchNextSegment(context.Background(), "orders")
	require.NoError(t, err)
	assert.Equal(t, &Segment{Base: 20, Max: 30, Step: 10, Cursor: 20}, seg)
	assert.Equal(t, int64(10), seg.Remaining())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchNextSegment_UnknownTag(t *testing.T) {
	dao, mock := newMockDAO(t)
	mock.ExpectBegin()
	mock.ExpectExec(reserveSQL).WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := dao.FetchNextSegment(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUnknownTag)
	assert.ErrorIs(t, err, uuiderr.ErrUnsatisfiedDependency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchNextSegment_Errors(t *testing.T) {
	boom := errors.New("connection reset")

	t.Run("begin", func(t *testing.T) {
		dao, mock := newMockDAO(t)
		mock.ExpectBegin().WillReturnError(boom)

		_, err := dao.FetchNextSegment(context.Background(), "orders")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("update", func(t *testing.T) {
		dao, mock := newMockDAO(t)
		mock.ExpectBegin()
		mock.ExpectExec(reserveSQL).WithArgs("orders").WillReturnError(boom)
		mock.ExpectRollback()

		_, err := dao.FetchNextSegment(context.Background(), "orders")
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("select", func(t *testing.T) {
		dao, mock := newMockDAO(t)
		mock.ExpectBegin()
		mock.ExpectExec(reserveSQL).WithArgs("orders").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(readSQL).WithArgs("orders").WillReturnError(boom)
		mock.ExpectRollback()

		_, err := dao.FetchNextSegment(context.Background(), "orders")
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAllocator_NextID(t *testing.T) {
	dao, mock := newMockDAO(t)
	expectSegment(mock, "orders", 2, 2)
	expectSegment(mock, "orders", 4, 2)

	alloc := NewAllocator(dao, "orders")
	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := alloc.NextID(context.Background())
		require.NoError(t, err)
		ids = append(ids, id)
	}

	assert.Equal(t, []int64{1, 2, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSegmentNodeProvider(t *testing.T) {
	dao, mock := newMockDAO(t)
	expectSegment(mock, "orders", 7, 1)
	expectSegment(mock, "orders", 8, 1)

	p := NewSegmentNodeProvider(NewAllocator(dao, "orders"), nil)

	node, err := p.Node()
	require.NoError(t, err)
	assert.Equal(t, "010000000007", node.String())

	// The lease is kept across calls.
	again, err := p.Node()
	require.NoError(t, err)
	assert.Equal(t, node, again)

	renewed, err := p.Renew(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "010000000008", renewed.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSegmentNodeProvider_Error(t *testing.T) {
	dao, mock := newMockDAO(t)
	mock.ExpectBegin().WillReturnError(errors.New("down"))

	p := NewSegmentNodeProvider(NewAllocator(dao, "orders"), nil)
	_, err := p.Node()
	assert.Error(t, err)
}

func TestOpenMySQL(t *testing.T) {
	db, err := OpenMySQL("guuid:secret@tcp(127.0.0.1:3306)/guuid?timeout=1s")
	require.NoError(t, err)
	assert.NoError(t, db.Close())

	_, err = OpenMySQL("not a dsn")
	assert.Error(t, err)
}
