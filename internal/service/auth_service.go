package service

import (
	"context"
	"errors"
	"time"

	"github.com/maesedev/dealership-project/internal/apierror"
	"github.com/maesedev/dealership-project/internal/config"
	"github.com/maesedev/dealership-project/internal/dto"
	"github.com/maesedev/dealership-project/internal/model"
	"github.com/maesedev/dealership-project/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims is the JWT payload for privileged accounts.
type Claims struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, claims *Claims) (*dto.LoginResponse, error)
	ParseToken(tokenString string) (*Claims, error)
}

type authService struct {
	users repository.UserRepository
	cfg   *config.Config
}

func NewAuthService(users repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{users: users, cfg: cfg}
}

// Login verifies credentials and issues a bearer token. Failed attempts are
// counted on the account; the fifth consecutive failure deactivates it until
// an admin reactivates.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Unauthorized("Credenciales incorrectas")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apierror.Unauthorized("Cuenta desactivada. Contacte a un administrador")
	}
	if !model.AnyPrivileged(user.Roles) {
		return nil, apierror.Unauthorized("Credenciales incorrectas")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		user.FailedAttempts++
		if user.FailedAttempts >= model.MaxFailedAttempts {
			user.IsActive = false
		}
		if uerr := s.users.Update(ctx, user); uerr != nil {
			return nil, uerr
		}
		if !user.IsActive {
			return nil, apierror.Unauthorized("Cuenta desactivada por intentos fallidos. Contacte a un administrador")
		}
		return nil, apierror.Unauthorized("Credenciales incorrectas")
	}

	if user.FailedAttempts != 0 {
		user.FailedAttempts = 0
		if uerr := s.users.Update(ctx, user); uerr != nil {
			return nil, uerr
		}
	}
	return s.issueToken(user)
}

// Refresh re-verifies the account behind a still-valid token and issues a
// fresh one with a full expiry window.
func (s *authService) Refresh(ctx context.Context, claims *Claims) (*dto.LoginResponse, error) {
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apierror.Unauthorized("Token inválido")
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Unauthorized("Token inválido")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apierror.Unauthorized("Cuenta desactivada. Contacte a un administrador")
	}
	return s.issueToken(user)
}

func (s *authService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.Unauthorized("Token inválido o expirado")
	}
	return claims, nil
}

func (s *authService) issueToken(user *model.User) (*dto.LoginResponse, error) {
	expiry := time.Duration(s.cfg.TokenExpireMinutes) * time.Minute
	now := time.Now()

	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	claims := Claims{
		UserID: user.ID.String(),
		Email:  email,
		Name:   user.Name,
		Roles:  append([]string(nil), user.Roles...),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int(expiry.Seconds()),
		User:        *userToResponse(user),
	}, nil
}
