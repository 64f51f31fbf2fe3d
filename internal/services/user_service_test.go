// internal/services/user_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/productfindr/backend/internal/apperrors"
)

func registerUser(t *testing.T, env *testEnv, username, email string) string {
	t.Helper()
	user, token, err := env.users.Register(&RegisterUserRequest{
		Username:  username,
		Email:     email,
		Password:  "StrongPass1!",
		Bio:       "Bio of " + username,
		Interests: []string{"Reading", "Coding"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return user.ID
}

func TestRegisterUser(t *testing.T) {
	env := newTestEnv()

	id := registerUser(t, env, "user1", "user1@example.com")

	user, err := env.users.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "user1", user.Username)
	assert.Equal(t, "user1@example.com", user.Email)
	assert.Equal(t, "Bio of user1", user.Bio)
	assert.Equal(t, []string{"Reading", "Coding"}, user.Interests)
}

func TestDuplicateEmailRejected(t *testing.T) {
	env := newTestEnv()
	registerUser(t, env, "user1", "user1@example.com")

	_, _, err := env.users.Register(&RegisterUserRequest{
		Username: "user2",
		Email:    "User1@Example.com", // case-insensitive match
		Password: "StrongPass1!",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.EqualError(t, err, "Email already used")
}

func TestDuplicateUsernameRejected(t *testing.T) {
	env := newTestEnv()
	registerUser(t, env, "user1", "user1@example.com")

	_, _, err := env.users.Register(&RegisterUserRequest{
		Username: "user1",
		Email:    "other@example.com",
		Password: "StrongPass1!",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "User already exists")
}

func TestLogin(t *testing.T) {
	env := newTestEnv()
	registerUser(t, env, "user1", "user1@example.com")

	user, token, err := env.users.Login(&LoginRequest{Email: "user1@example.com", Password: "StrongPass1!"})
	require.NoError(t, err)
	assert.Equal(t, "user1", user.Username)
	assert.NotEmpty(t, token)

	_, _, err = env.users.Login(&LoginRequest{Email: "user1@example.com", Password: "wrong"})
	require.Error(t, err)

	_, _, err = env.users.Login(&LoginRequest{Email: "nobody@example.com", Password: "StrongPass1!"})
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv()
	id := registerUser(t, env, "user1", "user1@example.com")
	registerUser(t, env, "user2", "user2@example.com")

	_, err := env.users.UpdateProfile(id, &UpdateProfileRequest{Email: "user2@example.com"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	updated, err := env.users.UpdateProfile(id, &UpdateProfileRequest{
		Email: "fresh@example.com",
		Bio:   "Updated bio",
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh@example.com", updated.Email)
	assert.Equal(t, "Updated bio", updated.Bio)

	// The old address is free again.
	_, _, err = env.users.Register(&RegisterUserRequest{
		Username: "user3",
		Email:    "user1@example.com",
		Password: "StrongPass1!",
	})
	require.NoError(t, err)
}

func TestGetUnknownUser(t *testing.T) {
	env := newTestEnv()

	_, err := env.users.Get("missing")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
