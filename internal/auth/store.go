package auth

import (
	"context"
	"errors"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// PlaceholderCreatedAt is stamped on every account instead of a clock read.
const PlaceholderCreatedAt = "2023-01-01T00:00:00Z"

// User is the stored account. Password is kept and compared in plaintext.
type User struct {
	Email     string
	Password  string
	Name      string
	CreatedAt string
}

// Profile is the only shape of User that leaves the service.
type Profile struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

func (u User) Profile() Profile {
	return Profile{Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

type UserStore interface {
	Create(ctx context.Context, u User) error
	Verify(ctx context.Context, email, password string) (User, error)
}
