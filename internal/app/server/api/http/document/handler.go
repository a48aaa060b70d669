package document

import (
	"context"
	"errors"

	"docstore/internal/app/server/api/http/form"
	"docstore/internal/app/server/api/http/problem"
	"docstore/internal/domain/document"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service      document.Servicer
	log          *slog.Logger
	middleware   huma.Middlewares
	maxBodyBytes int64
}

func NewHandler(service document.Servicer, log *slog.Logger, mws huma.Middlewares, maxBodyBytes int64) *Handler {
	return &Handler{
		service:      service,
		log:          log,
		middleware:   mws,
		maxBodyBytes: maxBodyBytes,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	docs, err := h.service.List(ctx)
	if err != nil {
		return nil, problem.From(h.log, err)
	}
	if docs == nil {
		docs = []document.Document{}
	}

	return &listOutput{Body: docs}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	id, err := problem.ID(input.ID, document.ErrNotFound)
	if err != nil {
		return nil, err
	}

	doc, err := h.service.Find(ctx, id)
	if err != nil {
		return nil, problem.From(h.log, err)
	}

	return &findOutput{Body: doc}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*messageOutput, error) {
	req, err := h.decodeCreate(input)
	if err != nil {
		return nil, problem.From(h.log, err)
	}

	id, err := h.service.Create(ctx, *req)
	if err != nil {
		return nil, problem.From(h.log, err)
	}

	return &messageOutput{
		Body: DocumentCreated{Message: "Document created successfully", ID: id},
	}, nil
}

// decodeCreate checks the file part first, then the text fields, then the
// integer fields.
func (h *Handler) decodeCreate(input *createInput) (*document.CreateRequest, error) {
	f, err := form.Parse(input.ContentType, input.RawBody)
	if err != nil {
		h.log.Debug("unreadable upload", "error", err)
		return nil, document.ErrNoFile
	}
	defer f.Close()

	content, _, ok, err := f.File("document")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, document.ErrNoFile
	}

	req := &document.CreateRequest{
		Name:    f.Value("name"),
		Content: content,
		Type:    f.Value("type"),
	}
	if req.Name == "" || req.Type == "" || len(req.Content) == 0 {
		return nil, document.ErrMissingFields
	}

	userID, err := f.Int64("user_id")
	if err != nil {
		return nil, invalidInteger(err)
	}
	if userID == nil {
		return nil, document.ErrMissingFields
	}
	req.UserID = *userID

	if req.FolderID, err = f.Int64("folder_id"); err != nil {
		return nil, invalidInteger(err)
	}
	if req.DeclaredSize, err = f.Int64("size"); err != nil {
		return nil, invalidInteger(err)
	}

	return req, nil
}

func invalidInteger(err error) error {
	if errors.Is(err, form.ErrNotInteger) {
		return document.ErrInvalidInteger
	}
	return err
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	id, err := problem.ID(input.ID, document.ErrNotFound)
	if err != nil {
		return nil, err
	}

	if err := h.service.Delete(ctx, id); err != nil {
		return nil, problem.From(h.log, err)
	}

	return &deleteOutput{}, nil
}
