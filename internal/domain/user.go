package domain

import (
	"context"
	"time"

	"go-ats-backend/internal/query"
)

const (
	RoleAdmin     = "admin"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	Name      string     `json:"name"`
	Active    bool       `json:"active"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
}

type UserFilter struct {
	query.Params
	Email       string
	Name        string
	Active      *bool
	Role        string
	ExcludeRole string
}

type UserRepository interface {
	Fetch(ctx context.Context, filter UserFilter) ([]User, int64, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) (*User, error)
}

type UserUsecase interface {
	List(ctx context.Context, filter UserFilter) (*query.Page[User], error)
	Get(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) (*User, error)
}

type AuthUsecase interface {
	// Login checks credentials and returns a signed access token plus the
	// authenticated user.
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
