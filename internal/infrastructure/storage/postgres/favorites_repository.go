package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type FavoritesRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewFavoritesRepository(db *Storage, log *slog.Logger) *FavoritesRepository {
	return &FavoritesRepository{
		db:  db,
		log: log,
	}
}

func (r *FavoritesRepository) Update(ctx context.Context, userID uuid.UUID, codes []string) error {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE users SET favorites = $2 WHERE id = $1`,
		userID, codes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", userID)
	}
	return nil
}

func (r *FavoritesRepository) Get(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var codes []string
	err := r.db.Pool().QueryRow(ctx,
		`SELECT favorites FROM users WHERE id = $1`, userID).Scan(&codes)
	if err != nil {
		return nil, err
	}
	if codes == nil {
		codes = []string{}
	}
	return codes, nil
}
