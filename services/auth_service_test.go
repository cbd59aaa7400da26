package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isaacjdv/futbolapp-backend/entity"
	"github.com/Isaacjdv/futbolapp-backend/oauth"
	"github.com/Isaacjdv/futbolapp-backend/repository"
	"github.com/Isaacjdv/futbolapp-backend/services"
	"github.com/Isaacjdv/futbolapp-backend/utils"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) (*services.AuthService, *repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)
	return services.NewAuthService(repo, testSecret, time.Hour), repo
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	user, token, err := svc.Register("Diego", "diego@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "diego@example.com", user.Email)

	loggedIn, token, err := svc.Login("diego@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	// token verifies back to the same user
	claims, err := utils.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Register("Diego", "diego@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Register("Otro", "diego@example.com", "differentpass")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Register("", "a@b.c", "secret123")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, _, err = svc.Register("Diego", "", "secret123")
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestLoginNoEnumeration(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Register("Diego", "diego@example.com", "secret123")
	require.NoError(t, err)

	_, _, wrongPass := svc.Login("diego@example.com", "wrong")
	_, _, noUser := svc.Login("nobody@example.com", "whatever")

	assert.ErrorIs(t, wrongPass, services.ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, services.ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), noUser.Error())
}

func TestFederatedLoginCreatesAndLinks(t *testing.T) {
	svc, repo := newAuthService(t)

	// first federated sign-in creates an account without a password
	g := &oauth.GoogleUser{Sub: "google-sub-1", Email: "fed@example.com", Name: "Fed User"}
	user, token, err := svc.FederatedLogin(g)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, user.GoogleID)
	assert.Equal(t, "google-sub-1", *user.GoogleID)
	assert.Empty(t, user.Password)

	// password login on a federated-only account stays a credential failure
	_, _, err = svc.Login("fed@example.com", "anything")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// existing email account gets the google id attached, idempotently
	existing, _, err := svc.Register("Linked", "linked@example.com", "secret123")
	require.NoError(t, err)

	g2 := &oauth.GoogleUser{Sub: "google-sub-2", Email: "linked@example.com", Name: "Linked"}
	_, _, err = svc.FederatedLogin(g2)
	require.NoError(t, err)
	_, _, err = svc.FederatedLogin(g2)
	require.NoError(t, err)

	var linked entity.User
	require.NoError(t, repo.DB.First(&linked, existing.ID).Error)
	require.NotNil(t, linked.GoogleID)
	assert.Equal(t, "google-sub-2", *linked.GoogleID)
	assert.NotEmpty(t, linked.Password) // password path still works after linking
}

// Emails are folded to lower case before store and lookup, so one mailbox
// maps to one account regardless of how the address was typed.
func TestEmailIsCaseFolded(t *testing.T) {
	svc, _ := newAuthService(t)

	user, _, err := svc.Register("Diego", "Diego@Example.COM", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "diego@example.com", user.Email)

	_, _, err = svc.Register("Diego", "DIEGO@example.com", "other-pass")
	assert.ErrorIs(t, err, services.ErrEmailTaken)

	loggedIn, _, err := svc.Login("dIeGo@exAmple.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}
