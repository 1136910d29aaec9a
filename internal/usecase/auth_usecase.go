package usecase

import (
	"context"
	"errors"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"
	"go-ats-backend/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	repo      domain.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthUsecase(repo domain.UserRepository, jwtSecret string, jwtExpiry time.Duration) domain.AuthUsecase {
	return &authUsecase{
		repo:      repo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, apperror.Unauthorized("Invalid credentials")
		}
		return "", nil, err
	}
	if !user.Active {
		return "", nil, apperror.Unauthorized("Account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":     user.ID,
		"name":   user.Name,
		"role":   user.Role,
		"active": user.Active,
		"iat":    now.Unix(),
		"exp":    now.Add(u.jwtExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.jwtSecret))
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	if err := u.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		// login still succeeds; the timestamp is advisory
		logger.Log.Warn("failed to update last login", "user_id", user.ID, "error", err)
	}

	user.Password = ""
	return signed, user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}
