package user

import (
	"net/http"

	"docstore/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-list",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "List users",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "users-create",
		Method:        http.MethodPost,
		Path:          "/users",
		Summary:       "Create a user",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-find",
		Method:      http.MethodGet,
		Path:        "/user/{id}",
		Summary:     "Get a user",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-update",
		Method:      http.MethodPut,
		Path:        "/user/{id}",
		Summary:     "Update username and email",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "users-delete",
		Method:        http.MethodDelete,
		Path:          "/user/{id}",
		Summary:       "Delete a user",
		Description:   "Folders and documents owned by the user are deleted with it.",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) toggleOp(provider user.Provider) huma.Operation {
	return huma.Operation{
		OperationID: "users-toggle-" + string(provider) + "-sync",
		Method:      http.MethodPut,
		Path:        "/update_" + string(provider) + "_sync/{id}",
		Summary:     "Toggle " + provider.Title() + " sync",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}
