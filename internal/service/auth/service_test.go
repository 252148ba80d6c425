package auth

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexocrm/crm-backend-go/internal/domain/auth"
	"github.com/nexocrm/crm-backend-go/internal/domain/user"
	"github.com/nexocrm/crm-backend-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	user.UserRepository
	users map[string]user.User
}

func newFakeUserRepo(seed ...user.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]user.User)}
	for _, u := range seed {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func testUser(t *testing.T, password string) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	h := string(hash)
	companyID := "company-1"
	return user.User{
		ID:           "user-1",
		Email:        "admin@acme.test",
		PasswordHash: &h,
		Name:         "Admin",
		Role:         user.RoleCompanyAdmin,
		CompanyID:    &companyID,
	}
}

func newTestService(users *fakeUserRepo) (auth.AuthService, jwt.Service) {
	jwtSvc := jwt.NewJWTService("test-secret", "1h", "168h")
	return NewAuthService(nil, users, nil, nil, jwtSvc, nil), jwtSvc
}

func TestLogin_IssuesTokenPair(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(newFakeUserRepo(testUser(t, "hunter22boo")))

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@acme.test",
		Password: "hunter22boo",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Greater(t, tokens.AccessTokenExpiresIn, int64(0))
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(newFakeUserRepo(testUser(t, "hunter22boo")))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@acme.test",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@acme.test",
		Password: "hunter22boo",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(newFakeUserRepo(testUser(t, "hunter22boo")))
	ctx := context.Background()

	tokens, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@acme.test",
		Password: "hunter22boo",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshToken_RevokedAfterLogout(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(newFakeUserRepo(testUser(t, "hunter22boo")))
	ctx := context.Background()

	tokens, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@acme.test",
		Password: "hunter22boo",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))

	_, err = svc.RefreshToken(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(newFakeUserRepo(testUser(t, "hunter22boo")))
	ctx := context.Background()

	tokens, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@acme.test",
		Password: "hunter22boo",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenInvalid)
}
