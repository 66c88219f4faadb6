package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"gym-admin/internal/database"
	"gym-admin/internal/model"
	"gym-admin/internal/store"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestGate(t *testing.T, logOut io.Writer) *Gate {
	t.Helper()
	now := epoch
	tk := newTestTokens(t, time.Hour, &now)
	if logOut == nil {
		logOut = io.Discard
	}
	return NewGate(&database.FakeDB{}, tk, bcrypt.MinCost, slog.New(slog.NewJSONHandler(logOut, nil)))
}

func mustHash(t *testing.T, p string) string {
	t.Helper()
	h, err := HashPassword(p, bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestSentinelsAreAuthErrors(t *testing.T) {
	for _, err := range []error{ErrInvalidCredentials, ErrAccountNotFound, ErrIncorrectPassword, ErrPasswordMismatch, ErrAccountExists} {
		require.ErrorIs(t, err, ErrAuth)
	}
}

func TestLogin(t *testing.T) {
	admin := &model.Admin{ID: 3, Username: "admin", Email: "admin@gym.test", PasswordHash: mustHash(t, "Secret123!")}

	t.Run("unknown account", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getAdminByLogin = func(context.Context, database.DB, string) (*model.Admin, error) {
			return nil, store.ErrNotFound
		}
		_, err := newTestGate(t, nil).Login(context.Background(), "ghost", "x")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password is indistinguishable", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getAdminByLogin = func(context.Context, database.DB, string) (*model.Admin, error) { return admin, nil }
		var logs bytes.Buffer
		_, err := newTestGate(t, &logs).Login(context.Background(), "admin", "wrong-pass")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.NotContains(t, logs.String(), "wrong-pass")
	})

	t.Run("store failure", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		boom := errors.New("db down")
		getAdminByLogin = func(context.Context, database.DB, string) (*model.Admin, error) { return nil, boom }
		_, err := newTestGate(t, nil).Login(context.Background(), "admin", "x")
		require.ErrorIs(t, err, boom)
		require.NotErrorIs(t, err, ErrAuth)
	})

	t.Run("ok by email", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		var gotIdent string
		getAdminByLogin = func(_ context.Context, _ database.DB, ident string) (*model.Admin, error) {
			gotIdent = ident
			return admin, nil
		}
		var logs bytes.Buffer
		g := newTestGate(t, &logs)
		res, err := g.Login(context.Background(), "admin@gym.test", "Secret123!")
		require.NoError(t, err)
		require.Equal(t, "admin@gym.test", gotIdent)
		require.True(t, epoch.Add(time.Hour).Equal(res.ExpiresAt))
		require.NotContains(t, logs.String(), "Secret123!")
		require.NotContains(t, logs.String(), res.Token)

		claims, ok := g.Authenticate(res.Token)
		require.True(t, ok)
		require.Equal(t, "admin", claims.Subject)
		require.Equal(t, 3, claims.AdminID)
	})
}

func TestRegister(t *testing.T) {
	in := RegisterInput{Username: "new", Email: "new@gym.test", Password: "Secret123!", ConfirmPassword: "Secret123!"}

	t.Run("mismatch", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		bad := in
		bad.ConfirmPassword = "other"
		_, err := newTestGate(t, nil).Register(context.Background(), bad)
		require.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("duplicate", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		createAdmin = func(context.Context, database.DB, *model.Admin) (*model.Admin, error) {
			return nil, store.ErrConflict
		}
		_, err := newTestGate(t, nil).Register(context.Background(), in)
		require.ErrorIs(t, err, ErrAccountExists)
	})

	t.Run("hash failure", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) { return nil, errors.New("gen") }
		_, err := newTestGate(t, nil).Register(context.Background(), in)
		require.ErrorContains(t, err, "hash password")
	})

	t.Run("multi-byte password over 72 bytes", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		createAdmin = func(context.Context, database.DB, *model.Admin) (*model.Admin, error) {
			t.Fatal("admin must not be created")
			return nil, nil
		}
		long := strings.Repeat("é", 40)
		bad := in
		bad.Password, bad.ConfirmPassword = long, long
		_, err := newTestGate(t, nil).Register(context.Background(), bad)
		require.ErrorIs(t, err, ErrPasswordTooLong)
		require.NotErrorIs(t, err, ErrAuth)
	})

	t.Run("bcrypt length error maps to sentinel", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) { return nil, bcrypt.ErrPasswordTooLong }
		_, err := newTestGate(t, nil).Register(context.Background(), in)
		require.ErrorIs(t, err, ErrPasswordTooLong)
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		var stored *model.Admin
		createAdmin = func(_ context.Context, _ database.DB, a *model.Admin) (*model.Admin, error) {
			stored = a
			a.ID = 9
			return a, nil
		}
		a, err := newTestGate(t, nil).Register(context.Background(), in)
		require.NoError(t, err)
		require.Equal(t, 9, a.ID)
		require.NotEqual(t, in.Password, stored.PasswordHash)
		require.True(t, VerifyPassword(in.Password, stored.PasswordHash))
	})
}

func TestResetPassword(t *testing.T) {
	admin := &model.Admin{ID: 3, Username: "admin", Email: "admin@gym.test", PasswordHash: mustHash(t, "old-pass")}
	ctx := context.Background()

	stubAdmin := func() {
		getAdminByEmail = func(context.Context, database.DB, string) (*model.Admin, error) { return admin, nil }
	}

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getAdminByEmail = func(context.Context, database.DB, string) (*model.Admin, error) {
			return nil, store.ErrNotFound
		}
		err := newTestGate(t, nil).ResetPassword(ctx, "ghost@gym.test", "old-pass", "n", "n")
		require.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("incorrect current password", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		stubAdmin()
		err := newTestGate(t, nil).ResetPassword(ctx, "admin@gym.test", "nope", "n", "n")
		require.ErrorIs(t, err, ErrIncorrectPassword)
	})

	t.Run("mismatch checked after current password", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		stubAdmin()
		err := newTestGate(t, nil).ResetPassword(ctx, "admin@gym.test", "old-pass", "new-pass", "other")
		require.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("new password over 72 bytes", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		stubAdmin()
		updateAdminPassword = func(context.Context, database.DB, int, string) error {
			t.Fatal("password must not be updated")
			return nil
		}
		long := strings.Repeat("密", 25)
		err := newTestGate(t, nil).ResetPassword(ctx, "admin@gym.test", "old-pass", long, long)
		require.ErrorIs(t, err, ErrPasswordTooLong)
	})

	t.Run("update fails", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		stubAdmin()
		updateAdminPassword = func(context.Context, database.DB, int, string) error { return errors.New("down") }
		err := newTestGate(t, nil).ResetPassword(ctx, "admin@gym.test", "old-pass", "new-pass", "new-pass")
		require.EqualError(t, err, "down")
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		stubAdmin()
		var gotID int
		var gotHash string
		updateAdminPassword = func(_ context.Context, _ database.DB, id int, hash string) error {
			gotID, gotHash = id, hash
			return nil
		}
		err := newTestGate(t, nil).ResetPassword(ctx, "admin@gym.test", "old-pass", "new-pass", "new-pass")
		require.NoError(t, err)
		require.Equal(t, 3, gotID)
		require.True(t, VerifyPassword("new-pass", gotHash))
		require.False(t, VerifyPassword("old-pass", gotHash))
	})
}
