package services

import (
	"context"
	"time"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	"github.com/SscSPs/wholesale_payments/internal/dto"
)

// AuthSvcFacade defines the interface for back-office login.
type AuthSvcFacade interface {
	// Login checks credentials and issues a signed access token.
	Login(ctx context.Context, email, password string) (token string, expiresAt time.Time, err error)

	// CreateUser provisions a back-office user with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// GetUserByID loads the user an access token was issued to.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
