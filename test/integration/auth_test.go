package integration

import (
	"context"
	"errors"
	"testing"

	"bookmystars_client/internal/services"
	"bookmystars_client/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newClientEnv(t)
	ctx := context.Background()

	t.Run("register creates a professional", func(t *testing.T) {
		user, err := env.services.Auth.Register(ctx, &services.RegisterRequest{
			FullName: "Arjun Rao",
			Email:    "arjun@example.com",
			PhoneNo:  "9000000001",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Greater(t, user.ProfessionalsID, 0)
		assert.Equal(t, "arjun@example.com", user.Email)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := env.services.Auth.Register(ctx, &services.RegisterRequest{
			FullName: "Arjun Again",
			Email:    "arjun@example.com",
			PhoneNo:  "9000000002",
			Password: "secret123",
		})
		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Contains(t, appErr.Message, "already exists")
	})

	t.Run("invalid register payload never reaches the wire", func(t *testing.T) {
		_, err := env.services.Auth.Register(ctx, &services.RegisterRequest{
			FullName: "No Contact",
			Email:    "not-an-email",
			PhoneNo:  "123",
			Password: "x",
		})
		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	})

	t.Run("login persists the session", func(t *testing.T) {
		sess, err := env.services.Auth.Login(ctx, "arjun@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, sess.Token)
		assert.Equal(t, "arjun@example.com", sess.User.Email)

		assert.True(t, env.store.IsLoggedIn())
		assert.Equal(t, sess.User.ProfessionalsID, env.store.GetProfessionalsID())
		assert.Equal(t, sess.Token, env.store.GetAuthToken())
	})

	t.Run("wrong password maps to invalid credentials", func(t *testing.T) {
		_, err := env.services.Auth.Login(ctx, "arjun@example.com", "wrong")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})

	t.Run("logout clears the session", func(t *testing.T) {
		env.services.Auth.Logout()
		assert.False(t, env.store.IsLoggedIn())
		assert.Nil(t, env.store.GetUserSession())
	})
}

func TestOTPAndPasswordReset(t *testing.T) {
	env := newClientEnv(t)
	ctx := context.Background()

	_, err := env.services.Auth.Register(ctx, &services.RegisterRequest{
		FullName: "Meera Pillai",
		Email:    "meera@example.com",
		PhoneNo:  "9000000003",
		Password: "oldpass1",
	})
	require.NoError(t, err)

	require.NoError(t, env.services.Auth.GenerateOTP(ctx, "meera@example.com"))

	t.Run("wrong otp is rejected", func(t *testing.T) {
		err := env.services.Auth.VerifyOTP(ctx, "meera@example.com", "000000")
		require.Error(t, err)
	})

	t.Run("correct otp verifies", func(t *testing.T) {
		require.NoError(t, env.services.Auth.VerifyOTP(ctx, "meera@example.com", "123456"))
	})

	t.Run("reset password takes effect on next login", func(t *testing.T) {
		require.NoError(t, env.services.Auth.ResetPassword(ctx, "meera@example.com", "newpass1"))

		_, err := env.services.Auth.Login(ctx, "meera@example.com", "oldpass1")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))

		sess, err := env.services.Auth.Login(ctx, "meera@example.com", "newpass1")
		require.NoError(t, err)
		assert.NotEmpty(t, sess.Token)
	})

	t.Run("otp for unknown email fails", func(t *testing.T) {
		err := env.services.Auth.GenerateOTP(ctx, "nobody@example.com")
		require.Error(t, err)
	})
}
