package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Ahmed-779/Vehicle-Booking/internal/domain"
	"github.com/Ahmed-779/Vehicle-Booking/internal/security"
	"github.com/Ahmed-779/Vehicle-Booking/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture() (*MockUserRepo, security.TokenManager, service.AuthService) {
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour, 7*24*time.Hour)
	return userRepo, tokens, service.NewAuthService(userRepo, tokens)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	userRepo, tokens, svc := newAuthFixture()

	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 7
	}).Return(nil)

	user, access, refresh, err := svc.Signup(ctx, "Dana", "Dana@Example.com ", "hunter22", "#aa3355")
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))
	assert.False(t, user.IsAdmin)

	claims, err := tokens.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, int32(7), claims.UserID)
	assert.False(t, claims.IsAdmin())

	claims, err = tokens.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, security.TokenTypeRefresh, claims.Type)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	userRepo, _, svc := newAuthFixture()
	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrEmailTaken)

	_, _, _, err := svc.Signup(ctx, "Dana", "dana@example.com", "hunter22", "")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	admin := &domain.User{ID: 1, Email: "admin@example.com", PasswordHash: string(hash), IsAdmin: true}

	t.Run("Success carries admin claim", func(t *testing.T) {
		userRepo, tokens, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "admin@example.com").Return(admin, nil)

		access, _, err := svc.Login(ctx, "admin@example.com", "hunter22")
		require.NoError(t, err)

		claims, err := tokens.ValidateToken(access)
		require.NoError(t, err)
		assert.True(t, claims.IsAdmin())
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo, _, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "admin@example.com").Return(admin, nil)

		_, _, err := svc.Login(ctx, "admin@example.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		userRepo, _, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrNotFound)

		_, _, err := svc.Login(ctx, "nobody@example.com", "hunter22")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: 3, Email: "u@example.com"}

	t.Run("Valid refresh", func(t *testing.T) {
		userRepo, tokens, svc := newAuthFixture()
		userRepo.On("GetByID", ctx, int32(3)).Return(user, nil)

		refresh, err := tokens.GenerateRefreshToken(3, "u@example.com")
		require.NoError(t, err)

		access, _, err := svc.RefreshToken(ctx, refresh)
		require.NoError(t, err)
		claims, err := tokens.ValidateToken(access)
		require.NoError(t, err)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
	})

	t.Run("Access token rejected as refresh", func(t *testing.T) {
		_, tokens, svc := newAuthFixture()
		access, err := tokens.GenerateAccessToken(3, "u@example.com", false)
		require.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})
}
