package store

import (
	"context"
	"testing"
	"time"

	"gym-admin/internal/database"
	"gym-admin/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func timep(t time.Time) *time.Time { return &t }

func feeVals(f model.Fee) []any {
	return []any{f.ID, f.MemberID, f.Amount, f.PaidOn, f.NextDue, f.Status}
}

func TestFeeStore(t *testing.T) {
	ctx := context.Background()
	paid := model.Fee{ID: 3, MemberID: 1, Amount: 1200, PaidOn: timep(day(2025, 1, 1)), NextDue: timep(day(2025, 2, 1)), Status: model.FeeStatusPaid}
	open := model.Fee{ID: 4, MemberID: 1, Amount: 1200, PaidOn: (*time.Time)(nil), NextDue: (*time.Time)(nil), Status: model.FeeStatusPending}

	t.Run("ListFees", func(t *testing.T) {
		db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{data: [][]any{feeVals(paid), feeVals(open)}}, nil
		}}
		got, err := ListFees(ctx, db)
		require.NoError(t, err)
		require.Equal(t, []model.Fee{paid, open}, got)
	})

	t.Run("ListFeesByMember", func(t *testing.T) {
		db := &database.FakeDB{QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "member_id = $1")
			require.Equal(t, []any{1}, args)
			return &fakeRows{data: [][]any{feeVals(paid)}}, nil
		}}
		got, err := ListFeesByMember(ctx, db, 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("GetLatestFee orders by next_due then id", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
			require.Contains(t, sql, "ORDER BY next_due DESC NULLS LAST, id DESC")
			return fakeRow{vals: feeVals(paid)}
		}}
		got, err := GetLatestFee(ctx, db, 1)
		require.NoError(t, err)
		require.Equal(t, paid, *got)
	})

	t.Run("GetLatestFee none", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeRow{err: pgx.ErrNoRows}
		}}
		_, err := GetLatestFee(ctx, db, 1)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("CreateFee", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, model.FeeStatusPending, args[4])
			return fakeRow{vals: []any{9}}
		}}
		in := open
		got, err := CreateFee(ctx, db, &in)
		require.NoError(t, err)
		require.Equal(t, 9, got.ID)

		db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
			return fakeRow{err: &pgconn.PgError{Code: "23503"}}
		}
		_, err = CreateFee(ctx, db, &in)
		require.ErrorIs(t, err, ErrNotFound)
	})
}
