package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedran77/quill/internal/token"
)

func newAuthService() (*AuthService, *fakeUserRepo, *token.Service) {
	users := newFakeUserRepo()
	tokens := token.NewService("test-secret", time.Hour)
	return NewAuthService(users, tokens), users, tokens
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and issues verifiable token", func(t *testing.T) {
		svc, users, tokens := newAuthService()

		resp, err := svc.Register(ctx, RegisterInput{
			Email:       "a@x.com",
			Password:    "secret1",
			DisplayName: "A",
		})
		require.NoError(t, err)
		require.NotNil(t, resp.User)

		assert.Equal(t, "a@x.com", resp.User.Email)
		assert.Equal(t, "A", resp.User.DisplayName)
		assert.NotEmpty(t, resp.User.PasswordHash)
		assert.NotEqual(t, "secret1", resp.User.PasswordHash)

		userID, err := tokens.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, userID)

		stored, err := users.GetByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		require.NotNil(t, stored)
	})

	t.Run("second registration with same email conflicts", func(t *testing.T) {
		svc, _, _ := newAuthService()

		_, err := svc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "secret1", DisplayName: "A"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "other99", DisplayName: "B"})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _, tokens := newAuthService()

	registered, err := svc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "secret1", DisplayName: "A"})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, LoginInput{Email: "a@x.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, resp.User.ID)

		userID, err := tokens.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, userID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Email: "a@x.com", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCreds)
	})

	t.Run("unknown email yields the same error", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Email: "nobody@x.com", Password: "secret1"})
		assert.ErrorIs(t, err, ErrInvalidCreds)
	})
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService()

	registered, err := svc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "secret1", DisplayName: "A"})
	require.NoError(t, err)

	t.Run("existing user", func(t *testing.T) {
		user, err := svc.Me(ctx, registered.User.ID)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", user.Email)
	})

	t.Run("unknown identity", func(t *testing.T) {
		_, err := svc.Me(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
