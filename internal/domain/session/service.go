package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

var ErrInvalidSession = errors.New("invalid session")

type Servicer interface {
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	Validate(ctx context.Context, token string) (uuid.UUID, error)
}

type Service struct {
	repo Repository
	ttl  time.Duration
	log  *slog.Logger
}

func NewService(repo Repository, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		ttl:  ttl,
		log:  log,
	}
}

// Create issues an opaque token for the user. Only the SHA-256 of the
// token touches the database.
func (s *Service) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	token := base64.URLEncoding.EncodeToString(tokenBytes)
	tokenHash := sha256.Sum256([]byte(token))

	expiresAt := time.Now().Add(s.ttl)
	if err := s.repo.Create(ctx, userID, hex.EncodeToString(tokenHash[:]), expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

func (s *Service) Validate(ctx context.Context, token string) (uuid.UUID, error) {
	tokenHash := sha256.Sum256([]byte(token))

	userID, err := s.repo.Validate(ctx, hex.EncodeToString(tokenHash[:]))
	if err != nil {
		return uuid.Nil, ErrInvalidSession
	}
	return userID, nil
}

// PurgeExpired removes sessions past their expiry. Runs on a timer in
// the server process.
func (s *Service) PurgeExpired(ctx context.Context) {
	deleted, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		s.log.Error("session purge failed", "error", err)
		return
	}
	if deleted > 0 {
		s.log.Info("expired sessions purged", "count", deleted)
	}
}
