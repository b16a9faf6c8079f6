package favorites

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

var ErrInvalidCode = errors.New("invalid country code")

type Servicer interface {
	Update(ctx context.Context, userID uuid.UUID, codes []string) ([]string, error)
	Get(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Update replaces the user's stored favorite set with the given codes.
// Codes are normalized to upper case and de-duplicated preserving the
// order of first appearance, so the client's insertion order survives.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, codes []string) ([]string, error) {
	normalized, err := Normalize(codes)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, userID, normalized); err != nil {
		return nil, fmt.Errorf("update favorites: %w", err)
	}

	s.log.Debug("favorites updated", "user_id", userID, "count", len(normalized))
	return normalized, nil
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) ([]string, error) {
	codes, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}
	return codes, nil
}

// Normalize upper-cases, validates and de-duplicates ISO 3166-1 alpha-3
// codes. The result is never nil.
func Normalize(codes []string) ([]string, error) {
	normalized := make([]string, 0, len(codes))
	seen := make(map[string]bool, len(codes))

	for _, code := range codes {
		c := strings.ToUpper(strings.TrimSpace(code))
		if !IsValidCode(c) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCode, code)
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		normalized = append(normalized, c)
	}

	return normalized, nil
}

// IsValidCode reports whether c looks like an alpha-3 country code.
func IsValidCode(c string) bool {
	if len(c) != 3 {
		return false
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
