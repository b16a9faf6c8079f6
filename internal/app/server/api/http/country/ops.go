package country

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "countries-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/countries",
		Summary:     "List the full country catalog",
		Tags:        []string{"countries"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) byNameOp() huma.Operation {
	return huma.Operation{
		OperationID: "countries-by-name",
		Method:      http.MethodGet,
		Path:        "/api/v1/countries/name/{name}",
		Summary:     "Search countries by name",
		Tags:        []string{"countries"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) byRegionOp() huma.Operation {
	return huma.Operation{
		OperationID: "countries-by-region",
		Method:      http.MethodGet,
		Path:        "/api/v1/countries/region/{region}",
		Summary:     "List countries of a region",
		Tags:        []string{"countries"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) byCodeOp() huma.Operation {
	return huma.Operation{
		OperationID: "countries-by-code",
		Method:      http.MethodGet,
		Path:        "/api/v1/countries/code/{code}",
		Summary:     "Get a country by its alpha-3 code",
		Tags:        []string{"countries"},
		Middlewares: h.middleware,
	}
}
