package service

import (
	"context"
	"testing"

	"github.com/maesedev/dealership-project/internal/apierror"
	"github.com/maesedev/dealership-project/internal/config"
	"github.com/maesedev/dealership-project/internal/dto"
	"github.com/maesedev/dealership-project/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		TokenExpireMinutes: 30,
		AppName:            "Dealership API",
	}
}

func seedAccount(t *testing.T, repo *fakeUserRepo, email, password string, roles []string, active bool) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		Name:         "Cuenta " + email,
		Email:        &email,
		PasswordHash: string(hash),
		Roles:        roles,
		IsActive:     active,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestLoginSuccess(t *testing.T) {
	users := newFakeUserRepo()
	seedAccount(t, users, "dealer@casa.co", "secreto", []string{"DEALER"}, true)
	svc := NewAuthService(users, testConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "dealer@casa.co",
		Password: "secreto",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 1800, resp.ExpiresIn)
	assert.Equal(t, []string{"DEALER"}, resp.User.Roles)

	// The issued token round-trips through ParseToken.
	claims, err := svc.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "dealer@casa.co", claims.Email)
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	users := newFakeUserRepo()
	seedAccount(t, users, "dealer@casa.co", "secreto", []string{"DEALER"}, true)
	svc := NewAuthService(users, testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "DEALER@casa.co",
		Password: "secreto",
	})
	assert.NoError(t, err)
}

func TestLoginWrongPasswordIncrementsAttempts(t *testing.T) {
	users := newFakeUserRepo()
	acct := seedAccount(t, users, "dealer@casa.co", "secreto", []string{"DEALER"}, true)
	svc := NewAuthService(users, testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "dealer@casa.co",
		Password: "equivocada",
	})
	require.Error(t, err)
	kind, ok := apierror.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindUnauthorized, kind)

	stored, err := users.FindByID(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.FailedAttempts)
	assert.True(t, stored.IsActive)
}

func TestLoginFifthFailureDeactivates(t *testing.T) {
	users := newFakeUserRepo()
	acct := seedAccount(t, users, "dealer@casa.co", "secreto", []string{"DEALER"}, true)
	svc := NewAuthService(users, testConfig())

	for i := 0; i < model.MaxFailedAttempts; i++ {
		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "dealer@casa.co",
			Password: "equivocada",
		})
		require.Error(t, err)
	}

	stored, err := users.FindByID(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.Equal(t, model.MaxFailedAttempts, stored.FailedAttempts)
	assert.False(t, stored.IsActive)

	// Even the correct password is now rejected: the account is deactivated.
	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "dealer@casa.co",
		Password: "secreto",
	})
	require.Error(t, err)
}

func TestLoginSuccessResetsAttempts(t *testing.T) {
	users := newFakeUserRepo()
	acct := seedAccount(t, users, "dealer@casa.co", "secreto", []string{"DEALER"}, true)
	svc := NewAuthService(users, testConfig())

	for i := 0; i < 3; i++ {
		_, _ = svc.Login(context.Background(), dto.LoginRequest{
			Email:    "dealer@casa.co",
			Password: "equivocada",
		})
	}
	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "dealer@casa.co",
		Password: "secreto",
	})
	require.NoError(t, err)

	stored, err := users.FindByID(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.FailedAttempts)
}

func TestLoginRejectsInactiveAndUnprivileged(t *testing.T) {
	users := newFakeUserRepo()
	seedAccount(t, users, "inactivo@casa.co", "secreto", []string{"DEALER"}, false)
	seedAccount(t, users, "jugador@casa.co", "secreto", []string{"USER"}, true)
	svc := NewAuthService(users, testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "inactivo@casa.co", Password: "secreto"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "jugador@casa.co", Password: "secreto"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "nadie@casa.co", Password: "secreto"})
	assert.Error(t, err)
}

func TestRefreshReverifiesAccount(t *testing.T) {
	users := newFakeUserRepo()
	acct := seedAccount(t, users, "manager@casa.co", "secreto", []string{"MANAGER"}, true)
	svc := NewAuthService(users, testConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "manager@casa.co", Password: "secreto"})
	require.NoError(t, err)
	claims, err := svc.ParseToken(resp.AccessToken)
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), claims)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// Deactivated between calls — refresh must fail.
	acct.IsActive = false
	require.NoError(t, users.Update(context.Background(), acct))
	_, err = svc.Refresh(context.Background(), claims)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testConfig())

	_, err := svc.ParseToken("no-es-un-token")
	assert.Error(t, err)

	// Token signed with a different secret.
	users := newFakeUserRepo()
	seedAccount(t, users, "a@b.co", "x", []string{"ADMIN"}, true)
	otherSvc := NewAuthService(users, &config.Config{JWTSecret: "otro", TokenExpireMinutes: 30})
	resp, err := otherSvc.Login(context.Background(), dto.LoginRequest{Email: "a@b.co", Password: "x"})
	require.NoError(t, err)
	_, err = svc.ParseToken(resp.AccessToken)
	assert.Error(t, err)
}
