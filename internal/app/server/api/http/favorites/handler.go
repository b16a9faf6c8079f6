package favorites

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"worldexplorer/internal/app/server/api/http/middleware/auth"
	"worldexplorer/internal/domain/favorites"
)

type Handler struct {
	service    favorites.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service favorites.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.updateOp(), h.update)
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Not authorized")
	}

	stored, err := h.service.Update(ctx, userID, input.Body.Favorites)
	if err != nil {
		if errors.Is(err, favorites.ErrInvalidCode) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		h.log.Error("update favorites", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Could not update favorites")
	}

	return &updateOutput{
		Body: UpdateResponse{Favorites: stored},
	}, nil
}
