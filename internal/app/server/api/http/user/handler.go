package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"worldexplorer/internal/app/server/api/http/middleware/auth"
	"worldexplorer/internal/domain/session"
	"worldexplorer/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
	protected  huma.Middlewares
}

func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, middleware, protected huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    session,
		log:        log,
		middleware: middleware,
		protected:  protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.profileOp(), h.profile)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*authOutput, error) {
	u, err := h.service.Register(ctx, input.Body.Name, input.Body.Email, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error400BadRequest(err.Error())
		case errors.Is(err, user.ErrEmailTaken):
			return nil, huma.Error409Conflict("Email already in use")
		default:
			h.log.Error("registration failed", "error", err)
			return nil, huma.Error500InternalServerError("Could not register user")
		}
	}

	// Registration logs the user straight in, so a token ships with the
	// created payload.
	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("create session after registration", "error", err)
		return nil, huma.Error500InternalServerError("Could not create session")
	}

	return &authOutput{
		Body: AuthResponse{
			ID:        u.ID.String(),
			Name:      u.Name,
			Email:     u.Email,
			Favorites: u.Favorites,
			Token:     token,
		},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*authOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return nil, huma.Error401Unauthorized("Invalid email or password")
		}
		h.log.Error("authentication failed", "error", err)
		return nil, huma.Error500InternalServerError("Could not log in")
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("create session", "error", err)
		return nil, huma.Error500InternalServerError("Could not create session")
	}

	return &authOutput{
		Body: AuthResponse{
			ID:        u.ID.String(),
			Name:      u.Name,
			Email:     u.Email,
			Favorites: u.Favorites,
			Token:     token,
		},
	}, nil
}

func (h *Handler) profile(ctx context.Context, _ *profileInput) (*profileOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Not authorized")
	}

	u, err := h.service.Profile(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, huma.Error401Unauthorized("Not authorized")
		}
		h.log.Error("load profile", "error", err)
		return nil, huma.Error500InternalServerError("Could not load profile")
	}

	return &profileOutput{
		Body: ProfileResponse{
			ID:        u.ID.String(),
			Name:      u.Name,
			Email:     u.Email,
			Favorites: u.Favorites,
		},
	}, nil
}
