package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/auth"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/user"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/jwt"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type fakeUserRepository struct {
	users map[string]user.User
	err   error
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	return newUser, nil
}

func newTestService(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("123@"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepository{users: map[string]user.User{
		"fred@gmail.com": {ID: 1, Name: "Fred Tuyishime", Email: "fred@gmail.com", PasswordHash: string(hash), Role: user.RoleAdmin},
	}}
	jwtService := jwt.NewJWTService(testSecret, "1h")
	return NewAuthService(repo, jwtService), jwtService
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, jwtService := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Username: "Fred@gmail.com", Password: "123@"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, user.RoleAdmin, resp.User.Role)

	claims, err := jwtService.ParseAccessToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "fred@gmail.com", claims.Email)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name string
		req  auth.LoginRequest
	}{
		{"wrong password", auth.LoginRequest{Username: "fred@gmail.com", Password: "wrong"}},
		{"unknown user", auth.LoginRequest{Username: "ghost@gmail.com", Password: "123@"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.req)
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "fred@gmail.com"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	repo := &fakeUserRepository{err: errors.New("connection refused")}
	svc := NewAuthService(repo, jwt.NewJWTService(testSecret, "1h"))

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "fred@gmail.com", Password: "123@"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Profile(t *testing.T) {
	svc, jwtService := newTestService(t)

	token, _, err := jwtService.GenerateAccessToken(1, "fred@gmail.com", user.RoleAdmin)
	require.NoError(t, err)
	parsed, err := jwtauth.VerifyToken(jwtService.JWTAuth(), token)
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), parsed, nil)
	profile, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Fred Tuyishime", profile.Name)

	_, err = svc.Profile(context.Background())
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
