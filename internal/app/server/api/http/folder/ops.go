package folder

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "folders-list",
		Method:      http.MethodGet,
		Path:        "/folders",
		Summary:     "List folders",
		Tags:        []string{"folders"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	formSchema := &huma.Schema{
		Type:     huma.TypeObject,
		Required: []string{"name", "user_id"},
		Properties: map[string]*huma.Schema{
			"name":        {Type: huma.TypeString},
			"description": {Type: huma.TypeString},
			"user_id":     {Type: huma.TypeInteger},
		},
	}

	return huma.Operation{
		OperationID:   "folders-create",
		Method:        http.MethodPost,
		Path:          "/folders",
		Summary:       "Create a folder",
		Tags:          []string{"folders"},
		DefaultStatus: http.StatusCreated,
		MaxBodyBytes:  h.maxBodyBytes,
		RequestBody: &huma.RequestBody{
			Content: map[string]*huma.MediaType{
				"application/x-www-form-urlencoded": {Schema: formSchema},
				"multipart/form-data":               {Schema: formSchema},
			},
		},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "folders-find",
		Method:      http.MethodGet,
		Path:        "/folder/{id}",
		Summary:     "Get a folder",
		Tags:        []string{"folders"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) renameOp() huma.Operation {
	return huma.Operation{
		OperationID: "folders-rename",
		Method:      http.MethodPut,
		Path:        "/folder/{id}",
		Summary:     "Rename a folder",
		Description: "Only the name changes; description, owner, creation date and documents are kept.",
		Tags:        []string{"folders"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "folders-delete",
		Method:        http.MethodDelete,
		Path:          "/folder/{id}",
		Summary:       "Delete a folder",
		Description:   "Documents filed in the folder are kept and detached from it.",
		Tags:          []string{"folders"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
