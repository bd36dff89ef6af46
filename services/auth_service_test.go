package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/repositories"
)

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "admin@danakita.id", "rahasia")
	svc := NewAuthService(db, "test-secret", time.Hour)

	user, token, err := svc.Login(dto.LoginRequest{Email: "admin@danakita.id", Password: "rahasia"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin@danakita.id", user.Email)

	_, _, err = svc.Login(dto.LoginRequest{Email: "admin@danakita.id", Password: "salah"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(dto.LoginRequest{Email: "nobody@danakita.id", Password: "rahasia"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignVerifyRoundtrip(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "admin@danakita.id", "rahasia")
	svc := NewAuthService(db, "test-secret", time.Hour)

	token, err := svc.Sign(user)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, "admin", claims.Role)

	id, err := SubjectID(claims)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)

	// a token signed with another secret must not verify
	other := NewAuthService(db, "other-secret", time.Hour)
	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerify_ExpiredToken(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "admin@danakita.id", "rahasia")
	svc := NewAuthService(db, "test-secret", -time.Minute)

	token, err := svc.Sign(user)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "admin@danakita.id", "rahasia")
	svc := NewAuthService(db, "test-secret", time.Hour)

	err := svc.ChangePassword(user.ID, dto.ChangePasswordRequest{
		OldPassword: "rahasia", NewPassword: "rahasia",
	})
	assert.ErrorIs(t, err, ErrSamePassword)

	err = svc.ChangePassword(user.ID, dto.ChangePasswordRequest{
		OldPassword: "rahasia", NewPassword: "abc",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	err = svc.ChangePassword(user.ID, dto.ChangePasswordRequest{
		OldPassword: "salah", NewPassword: "rahasia-baru",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)

	// nothing was written by the rejected attempts
	fresh, err := svc.GetUser(user.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(fresh.Password), []byte("rahasia")))

	err = svc.ChangePassword(user.ID, dto.ChangePasswordRequest{
		OldPassword: "rahasia", NewPassword: "rahasia-baru",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(dto.LoginRequest{Email: "admin@danakita.id", Password: "rahasia-baru"})
	assert.NoError(t, err)
}

func TestChangePassword_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", time.Hour)

	err := svc.ChangePassword(9999, dto.ChangePasswordRequest{
		OldPassword: "rahasia", NewPassword: "rahasia-baru",
	})
	assert.True(t, repositories.IsNotFound(err))
}
