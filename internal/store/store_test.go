package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	err := wrap("GetMember", pgx.ErrNoRows)
	require.ErrorIs(t, err, ErrNotFound)
	require.EqualError(t, err, "GetMember: not found")

	err = wrap("CreatePlan", &pgconn.PgError{Code: "23505"})
	require.ErrorIs(t, err, ErrConflict)

	err = wrap("CreateFee", &pgconn.PgError{Code: "23503"})
	require.ErrorIs(t, err, ErrNotFound)

	boom := errors.New("boom")
	err = wrap("ListFees", boom)
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, ErrNotFound)
	require.EqualError(t, err, "ListFees: boom")
}

func TestExpectOne(t *testing.T) {
	require.NoError(t, expectOne("DeletePlan", pgconn.NewCommandTag("DELETE 1"), nil))
	require.ErrorIs(t, expectOne("DeletePlan", pgconn.NewCommandTag("DELETE 0"), nil), ErrNotFound)
	require.EqualError(t, expectOne("DeletePlan", pgconn.CommandTag{}, errors.New("x")), "DeletePlan: x")
}

func TestCollect(t *testing.T) {
	scanInt := func(s scanner) (int, error) {
		var v int
		err := s.Scan(&v)
		return v, err
	}

	rows := &fakeRows{data: [][]any{{1}, {2}}}
	got, err := collect("op", rows, scanInt)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, got)
	require.True(t, rows.closed)

	got, err = collect("op", &fakeRows{}, scanInt)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)

	_, err = collect("op", &fakeRows{data: [][]any{{1}}, scanErr: errors.New("scan")}, scanInt)
	require.EqualError(t, err, "op: scan")

	_, err = collect("op", &fakeRows{err: errors.New("iter")}, scanInt)
	require.EqualError(t, err, "op: iter")
}

