package favorites

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "favorites-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/users/favorites",
		Summary:     "Replace the authenticated user's favorite set",
		Tags:        []string{"favorites"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
