package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/empowerher/empowerher/internal/database/testutil"
	"github.com/empowerher/empowerher/pkg/errors"
)

func newTestAccounts(t *testing.T) *AccountService {
	t.Helper()
	return NewAccountService(testutil.MustOpenTestDB(t, testutil.WithAutoMigrate()))
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newTestAccounts(t)

	account, err := svc.Register(RegisterInput{
		Email:     "Maria.Gonzalez@Example.com",
		Password:  "empowerher",
		FirstName: "Maria",
		LastName:  "Gonzalez",
	})
	require.NoError(t, err)
	require.NotEmpty(t, account.ID)
	require.Equal(t, "maria.gonzalez@example.com", account.Email, "emails are normalised")
	require.NotEqual(t, "empowerher", account.Password, "password is stored hashed")

	authed, err := svc.Authenticate("maria.gonzalez@example.com", "empowerher")
	require.NoError(t, err)
	require.Equal(t, account.ID, authed.ID)
	require.NotNil(t, authed.LastLoginAt)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := newTestAccounts(t)

	_, err := svc.Register(RegisterInput{
		Email:    "short@example.com",
		Password: "1234567",
	})
	require.Error(t, err)

	appErr := errors.FromError(err)
	require.Equal(t, "BAD_REQUEST", appErr.Code)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newTestAccounts(t)

	_, err := svc.Register(RegisterInput{Email: "dup@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Email: "DUP@example.com", Password: "password2"})
	require.ErrorIs(t, err, errors.ErrEmailTaken)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := newTestAccounts(t)

	_, err := svc.Register(RegisterInput{Email: "user@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Authenticate("user@example.com", "wrong-password")
	require.ErrorIs(t, err, errors.ErrInvalidCredentials)

	// Unknown accounts look identical to wrong passwords.
	_, err = svc.Authenticate("nobody@example.com", "password1")
	require.ErrorIs(t, err, errors.ErrInvalidCredentials)
}

func TestGetByID(t *testing.T) {
	svc := newTestAccounts(t)

	account, err := svc.Register(RegisterInput{Email: "id@example.com", Password: "password1"})
	require.NoError(t, err)

	loaded, err := svc.GetByID(account.ID)
	require.NoError(t, err)
	require.Equal(t, "id@example.com", loaded.Email)

	_, err = svc.GetByID("missing")
	require.ErrorIs(t, err, errors.ErrNotFound)
}
