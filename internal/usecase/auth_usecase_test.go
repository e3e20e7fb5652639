package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUC(db *memDB) *AuthUseCase {
	return NewAuthUC(&fakeUserRepo{db: db}, &fakeSessionRepo{db: db}, fakeHasher{}, time.Hour, nopLogger())
}

func TestAuth_RegisterOpensSession(t *testing.T) {
	db := newMemDB()
	uc := newAuthUC(db)
	ctx := context.Background()

	res, err := uc.Register(ctx, NewRegisterReq("alice", "a@x.com", "secret", "secret"))
	require.NoError(t, err)
	assert.NotEmpty(t, res.SessionID)
	assert.Equal(t, "alice", res.User.Username)
	assert.Equal(t, "hashed:secret", res.User.PasswordHash)

	principal, err := uc.Authenticate(ctx, res.SessionID)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, principal.UserID)

	_, err = uc.Register(ctx, NewRegisterReq("alice", "b@x.com", "other", "other"))
	require.ErrorIs(t, err, e.ErrUsernameTaken)
	require.ErrorIs(t, err, e.ErrValidation)
}

func TestAuth_RegisterValidation(t *testing.T) {
	uc := newAuthUC(newMemDB())
	ctx := context.Background()

	_, err := uc.Register(ctx, NewRegisterReq("alice", "", "one", "two"))
	require.ErrorIs(t, err, e.ErrPasswordsMismatch)

	_, err = uc.Register(ctx, NewRegisterReq(" ", "", "one", "one"))
	require.ErrorIs(t, err, e.ErrCredentialsRequired)
}

func TestAuth_LoginLogout(t *testing.T) {
	db := newMemDB()
	uc := newAuthUC(db)
	ctx := context.Background()

	_, err := uc.Register(ctx, NewRegisterReq("alice", "", "secret", "secret"))
	require.NoError(t, err)

	_, err = uc.Login(ctx, NewLoginReq("alice", "wrong"))
	require.ErrorIs(t, err, e.ErrAuthenticationFailed)

	_, err = uc.Login(ctx, NewLoginReq("nobody", "secret"))
	require.ErrorIs(t, err, e.ErrAuthenticationFailed)

	res, err := uc.Login(ctx, NewLoginReq("alice", "secret"))
	require.NoError(t, err)

	user, err := uc.CurrentUser(ctx, mustAuthenticate(t, uc, res.SessionID))
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	require.NoError(t, uc.Logout(ctx, res.SessionID))
	require.NoError(t, uc.Logout(ctx, ""))

	_, err = uc.Authenticate(ctx, res.SessionID)
	require.ErrorIs(t, err, e.ErrUnauthenticated)
}

func TestAuth_CurrentUserRequiresLogin(t *testing.T) {
	uc := newAuthUC(newMemDB())

	_, err := uc.CurrentUser(context.Background(), nil)
	require.ErrorIs(t, err, e.ErrUnauthenticated)
}

func TestAuth_ListUsersPermissions(t *testing.T) {
	db := newMemDB()
	uc := newAuthUC(db)
	ctx := context.Background()
	db.addUser("alice")

	_, err := uc.ListUsers(ctx, nil)
	require.ErrorIs(t, err, e.ErrUnauthenticated)

	_, err = uc.ListUsers(ctx, &domain.Principal{UserID: 1})
	require.ErrorIs(t, err, e.ErrForbidden)

	users, err := uc.ListUsers(ctx, &domain.Principal{UserID: 1, Permissions: []string{domain.PermViewUser}})
	require.NoError(t, err)
	assert.Len(t, users, 1)

	users, err = uc.ListUsers(ctx, &domain.Principal{UserID: 1, IsSuperuser: true})
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAuth_CreateSuperuser(t *testing.T) {
	db := newMemDB()
	uc := newAuthUC(db)

	user, err := uc.CreateSuperuser(context.Background(), "admin", "admin@x.com", "pw")
	require.NoError(t, err)
	assert.True(t, user.IsSuperuser)
	assert.True(t, domain.NewPrincipal(user).HasPermission(domain.PermAddStatus))
}

func mustAuthenticate(t *testing.T, uc *AuthUseCase, sessionID string) *domain.Principal {
	t.Helper()

	principal, err := uc.Authenticate(context.Background(), sessionID)
	require.NoError(t, err)
	return principal
}
