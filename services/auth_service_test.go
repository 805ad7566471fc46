package services

import (
	"testing"
	"time"

	"orderweb/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthSvc(t *testing.T) *AuthService {
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthSvc(t)

	user, err := svc.Register("Ada@Example.com", "supersecret", "Ada", "Lovelace", "07000000000")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "customer", user.Role)
	assert.NotEqual(t, "supersecret", user.Password, "password is stored hashed")

	token, logged, err := svc.Login("ada@example.com", "supersecret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthSvc(t)
	_, err := svc.Register("ada@example.com", "supersecret", "", "", "")
	require.NoError(t, err)

	_, err = svc.Register("ADA@example.com", "othersecret", "", "", "")
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthSvc(t)
	_, err := svc.Register("ada@example.com", "supersecret", "", "", "")
	require.NoError(t, err)

	_, _, err = svc.Login("ada@example.com", "wrong")
	assert.Error(t, err)
	_, _, err = svc.Login("nobody@example.com", "supersecret")
	assert.Error(t, err)
}
