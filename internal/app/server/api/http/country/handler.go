package country

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"worldexplorer/internal/domain/country"
)

// Catalog is the read-only catalog surface the proxy forwards to.
type Catalog interface {
	All(ctx context.Context) ([]country.Country, error)
	ByName(ctx context.Context, name string) ([]country.Country, error)
	ByRegion(ctx context.Context, region string) ([]country.Country, error)
	ByCode(ctx context.Context, code string) (country.Country, error)
}

type Handler struct {
	catalog    Catalog
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(catalog Catalog, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		catalog:    catalog,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.byNameOp(), h.byName)
	huma.Register(api, h.byRegionOp(), h.byRegion)
	huma.Register(api, h.byCodeOp(), h.byCode)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	countries, err := h.catalog.All(ctx)
	if err != nil {
		return nil, h.mapError(err, "Error fetching countries")
	}
	return &listOutput{Body: countries}, nil
}

func (h *Handler) byName(ctx context.Context, input *byNameInput) (*listOutput, error) {
	countries, err := h.catalog.ByName(ctx, input.Name)
	if err != nil {
		if errors.Is(err, country.ErrNotFound) {
			return nil, huma.Error404NotFound("No countries found with that name")
		}
		return nil, h.mapError(err, "Error searching countries")
	}
	return &listOutput{Body: countries}, nil
}

func (h *Handler) byRegion(ctx context.Context, input *byRegionInput) (*listOutput, error) {
	countries, err := h.catalog.ByRegion(ctx, input.Region)
	if err != nil {
		if errors.Is(err, country.ErrNotFound) {
			return nil, huma.Error404NotFound("No countries found in that region")
		}
		return nil, h.mapError(err, "Error fetching countries by region")
	}
	return &listOutput{Body: countries}, nil
}

func (h *Handler) byCode(ctx context.Context, input *byCodeInput) (*singleOutput, error) {
	c, err := h.catalog.ByCode(ctx, input.Code)
	if err != nil {
		if errors.Is(err, country.ErrNotFound) {
			return nil, huma.Error404NotFound("Country not found with that code")
		}
		return nil, h.mapError(err, "Error fetching country details")
	}
	return &singleOutput{Body: c}, nil
}

// mapError attaches the upstream message for diagnostics; everything that
// is not a not-found becomes a gateway failure.
func (h *Handler) mapError(err error, operation string) error {
	var upstreamErr *country.UpstreamError
	if errors.As(err, &upstreamErr) {
		h.log.Error("upstream catalog error", "status", upstreamErr.StatusCode, "message", upstreamErr.Message)
		return huma.Error502BadGateway(operation + ": " + upstreamErr.Message)
	}

	h.log.Error("catalog request failed", "error", err)
	return huma.Error502BadGateway(operation + ": " + err.Error())
}
