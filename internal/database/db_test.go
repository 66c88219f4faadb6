package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type emptyRow struct{}

func (emptyRow) Scan(dest ...any) error { return pgx.ErrNoRows }

func TestFakeDBPanicsWhenUnset(t *testing.T) {
	db := &FakeDB{}
	ctx := context.Background()
	require.PanicsWithValue(t, "unexpected Exec: DELETE FROM members", func() { _, _ = db.Exec(ctx, "DELETE FROM members") })
	require.PanicsWithValue(t, "unexpected Query: SELECT 1", func() { _, _ = db.Query(ctx, "SELECT 1") })
	require.PanicsWithValue(t, "unexpected QueryRow: SELECT 1", func() { db.QueryRow(ctx, "SELECT 1") })
	require.PanicsWithValue(t, "unexpected Ping", func() { _ = db.Ping(ctx) })
	require.NotPanics(t, db.Close)
}

func TestFakeDBDelegates(t *testing.T) {
	ctx := context.Background()
	var gotSQL []string
	var gotArgs []any
	closed := false

	db := &FakeDB{
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			gotSQL = append(gotSQL, sql)
			gotArgs = append(gotArgs, args...)
			return pgconn.NewCommandTag("DELETE 1"), nil
		},
		QueryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
			gotSQL = append(gotSQL, sql)
			return nil, errors.New("query failed")
		},
		QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
			gotSQL = append(gotSQL, sql)
			return emptyRow{}
		},
		PingFn:  func(context.Context) error { return errors.New("down") },
		CloseFn: func() { closed = true },
	}

	tag, err := db.Exec(ctx, "DELETE FROM members WHERE id = $1", 3)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
	require.Equal(t, []any{3}, gotArgs)

	_, err = db.Query(ctx, "SELECT id FROM members")
	require.EqualError(t, err, "query failed")

	err = db.QueryRow(ctx, "SELECT id FROM fees").Scan()
	require.ErrorIs(t, err, pgx.ErrNoRows)

	require.EqualError(t, db.Ping(ctx), "down")
	db.Close()
	require.True(t, closed)
	require.Len(t, gotSQL, 3)
}
