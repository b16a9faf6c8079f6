package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, name, email, password string) (User, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	Profile(ctx context.Context, id uuid.UUID) (User, error)
}

type Service struct {
	repo      Repository
	validator *Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator *Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (User, error) {
	if err := s.validator.ValidateRegister(name, email, password); err != nil {
		s.log.Debug("registration validation failed", "email", email, "error", err)
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repo.Create(ctx, name, email, string(hash))
	if err != nil {
		return User{}, err
	}

	s.log.Info("user registered", "user_id", u.ID)
	return u, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return User{}, ErrInvalidCredentials
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email reports the same way as a bad password.
		return User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) Profile(ctx context.Context, id uuid.UUID) (User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return User{}, ErrNotFound
	}
	return u, nil
}
