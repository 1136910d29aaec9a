package usecase

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"
	"go-ats-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type userUsecase struct {
	repo     domain.UserRepository
	validate *validator.Validate
}

func NewUserUsecase(repo domain.UserRepository, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *userUsecase) List(ctx context.Context, filter domain.UserFilter) (*query.Page[domain.User], error) {
	items, total, err := u.repo.Fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Password = ""
	}
	page := query.NewPage(items, total, filter.Window())
	return &page, nil
}

func (u *userUsecase) Get(ctx context.Context, id int64) (*domain.User, error) {
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

func (u *userUsecase) Create(ctx context.Context, user *domain.User) error {
	if err := u.validate.Struct(user); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if user.Role != domain.RoleAdmin && user.Role != domain.RoleRecruiter {
		return apperror.BadRequest("Invalid role")
	}
	existing, err := u.repo.GetByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil {
		return apperror.BadRequest("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}
	user.Password = string(hashed)

	if err := u.repo.Create(ctx, user); err != nil {
		return err
	}
	user.Password = ""
	return nil
}

func (u *userUsecase) Update(ctx context.Context, user *domain.User) error {
	current, err := u.repo.GetByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}

	// empty password means keep the stored hash
	if user.Password == "" {
		user.Password = current.Password
	} else {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return apperror.Internal(err)
		}
		user.Password = string(hashed)
	}
	if user.Role != domain.RoleAdmin && user.Role != domain.RoleRecruiter {
		return apperror.BadRequest("Invalid role")
	}

	if err := u.repo.Update(ctx, user); err != nil {
		return err
	}
	user.Password = ""
	return nil
}

func (u *userUsecase) Delete(ctx context.Context, id int64) (*domain.User, error) {
	ctxUserID, _ := ctx.Value(domain.KeyUserID).(int64)
	if ctxUserID == id {
		return nil, apperror.BadRequest("You cannot delete your own account")
	}
	user, err := u.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}
