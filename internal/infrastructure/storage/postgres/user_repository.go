package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/exp/slog"

	"worldexplorer/internal/domain/user"
)

const uniqueViolation = "23505"

type UserRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewUserRepository(db *Storage, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log,
	}
}

func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (user.User, error) {
	u := user.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Password:  passwordHash,
		Favorites: []string{},
	}

	err := r.db.Pool().QueryRow(ctx,
		`INSERT INTO users (id, name, email, password_hash)
         VALUES ($1, $2, $3, $4)
         RETURNING created_at`,
		u.ID, u.Name, u.Email, u.Password).Scan(&u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.User{}, user.ErrEmailTaken
		}
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, name, email, password_hash, favorites, created_at
         FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Favorites, &u.CreatedAt)
	if err != nil {
		return u, user.ErrNotFound
	}

	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	var u user.User
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, name, email, password_hash, favorites, created_at
         FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Favorites, &u.CreatedAt)
	if err != nil {
		return u, user.ErrNotFound
	}

	return u, nil
}
