package auth

import (
	"context"

	"hotelbooking/internal/domain"
)

// UserRepositoryInterface lists only the methods the auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SaveLockout(ctx context.Context, userID string, prev, next domain.LockoutState) error
}

type tokenIssuer interface {
	GenerateToken(userID string) (string, error)
}
