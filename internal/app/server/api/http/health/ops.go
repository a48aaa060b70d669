package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Health check endpoint",
		Description: "Reports OK when the database answers a ping",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) welcomeOp() huma.Operation {
	return huma.Operation{
		OperationID: "welcome",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Welcome message",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
