package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	Validate(ctx context.Context, tokenHash string) (uuid.UUID, error)
	DeleteExpired(ctx context.Context) (int64, error)
}
