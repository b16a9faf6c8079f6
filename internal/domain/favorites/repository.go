package favorites

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Update(ctx context.Context, userID uuid.UUID, codes []string) error
	Get(ctx context.Context, userID uuid.UUID) ([]string, error)
}
