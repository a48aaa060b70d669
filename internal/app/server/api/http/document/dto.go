package document

import "docstore/internal/domain/document"

type listOutput struct {
	Body []document.Document
}

type findInput struct {
	ID string `path:"id" example:"1" doc:"Document identifier"`
}

type findOutput struct {
	Body *document.Document
}

// createInput carries the raw multipart body; fields are decoded by the handler.
type createInput struct {
	ContentType string `header:"Content-Type"`
	RawBody     []byte
}

type messageOutput struct {
	Body DocumentCreated
}

type DocumentCreated struct {
	Message string `json:"message" example:"Document created successfully"`
	ID      int64  `json:"id,omitempty" doc:"Identifier of the created document"`
}

type deleteInput struct {
	ID string `path:"id" example:"1" doc:"Document identifier"`
}

type deleteOutput struct{}
