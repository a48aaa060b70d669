package document

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-list",
		Method:      http.MethodGet,
		Path:        "/documents",
		Summary:     "List documents",
		Description: "Returns every document with its content base64-encoded.",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "documents-create",
		Method:        http.MethodPost,
		Path:          "/documents",
		Summary:       "Upload a document",
		Description:   "Multipart form with fields name, type, user_id, optional folder_id and size, and a file part named document.",
		Tags:          []string{"documents"},
		DefaultStatus: http.StatusCreated,
		MaxBodyBytes:  h.maxBodyBytes,
		RequestBody: &huma.RequestBody{
			Content: map[string]*huma.MediaType{
				"multipart/form-data": {
					Schema: &huma.Schema{
						Type:     huma.TypeObject,
						Required: []string{"name", "document", "type", "user_id"},
						Properties: map[string]*huma.Schema{
							"name":      {Type: huma.TypeString},
							"document":  {Type: huma.TypeString, Format: "binary"},
							"type":      {Type: huma.TypeString},
							"user_id":   {Type: huma.TypeInteger},
							"folder_id": {Type: huma.TypeInteger},
							"size":      {Type: huma.TypeInteger},
						},
					},
				},
			},
		},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-find",
		Method:      http.MethodGet,
		Path:        "/document/{id}",
		Summary:     "Get a document",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "documents-delete",
		Method:        http.MethodDelete,
		Path:          "/document/{id}",
		Summary:       "Delete a document",
		Tags:          []string{"documents"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
