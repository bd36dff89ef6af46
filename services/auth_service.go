package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/models"
	"github.com/danakita/cms-backend/repositories"
)

const minPasswordLength = 5

var (
	// ErrInvalidCredentials is returned on unknown email or wrong password
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrWrongPassword is returned when the old password does not match
	ErrWrongPassword = errors.New("old password does not match")
	// ErrSamePassword is returned when the new password equals the old one
	ErrSamePassword = errors.New("new password must differ from the old one")
	// ErrPasswordTooShort is returned when the new password is below the minimum length
	ErrPasswordTooShort = errors.New("password must be at least 5 characters")
)

// AuthService signs and verifies tokens and handles credential checks.
type AuthService struct {
	users    *repositories.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new auth service instance
func NewAuthService(db *gorm.DB, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    repositories.NewUserRepository(db),
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// TokenTTL returns the configured token lifetime.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// Login verifies the credentials and returns the user with a signed token.
func (s *AuthService) Login(req dto.LoginRequest) (models.User, string, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.Sign(user)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Sign issues an HS256 token carrying the user's identity.
func (s *AuthService) Sign(user models.User) (string, error) {
	now := time.Now()
	claims := dto.TokenClaims{
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   jwtSubject(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token, returning its claims.
func (s *AuthService) Verify(tokenString string) (*dto.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// GetUser loads a user by id.
func (s *AuthService) GetUser(id uint) (models.User, error) {
	return s.users.FindByID(id)
}

func jwtSubject(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// SubjectID parses the numeric user id out of a token subject.
func SubjectID(claims *dto.TokenClaims) (uint, error) {
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, errors.New("invalid token subject")
	}
	return uint(id), nil
}

// ChangePassword validates the request fully before any write: the old
// password must match, the new one must differ and meet the minimum
// length.
func (s *AuthService) ChangePassword(userID uint, req dto.ChangePasswordRequest) error {
	if req.NewPassword == req.OldPassword {
		return ErrSamePassword
	}
	if len(req.NewPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(userID, string(hashed))
}
