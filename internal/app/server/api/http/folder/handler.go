package folder

import (
	"context"

	"docstore/internal/app/server/api/http/form"
	"docstore/internal/app/server/api/http/problem"
	"docstore/internal/domain/folder"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service      folder.Servicer
	log          *slog.Logger
	middleware   huma.Middlewares
	maxBodyBytes int64
}

func NewHandler(service folder.Servicer, log *slog.Logger, mws huma.Middlewares, maxBodyBytes int64) *Handler {
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
	huma.Register(api, h.renameOp(), h.rename)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	folders, err := h.service.List(ctx, input.Depth)
	if err != nil {
		return nil, problem.From(h.log, err)
	}
	if folders == nil {
		folders = []folder.Folder{}
	}

	return &listOutput{Body: folders}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*folderOutput, error) {
	id, err := problem.ID(input.ID, folder.ErrNotFound)
	if err != nil {
		return nil, err
	}

	f, err := h.service.Find(ctx, id, input.Depth)
	if err != nil {
		return nil, problem.From(h.log, err)
	}

	return &folderOutput{Body: f}, nil
}

// create accepts urlencoded or multipart fields. A user_id that is not an
// integer counts as missing.
func (h *Handler) create(ctx context.Context, input *createInput) (*messageOutput, error) {
	f, err := form.Parse(input.ContentType, input.RawBody)
	if err != nil {
		h.log.Debug("unreadable folder form", "error", err)
		return nil, problem.From(h.log, folder.ErrMissingFields)
	}
	defer f.Close()

	req := folder.CreateRequest{Name: f.Value("name")}
	if d := f.Value("description"); d != "" {
		req.Description = &d
	}
	if userID, err := f.Int64("user_id"); err == nil && userID != nil {
		req.UserID = *userID
	}

	id, err := h.service.Create(ctx, req)
	if err != nil {
		return nil, problem.From(h.log, err)
	}

	return &messageOutput{
		Body: FolderCreated{Message: "Folder created successfully", ID: id},
	}, nil
}

func (h *Handler) rename(ctx context.Context, input *renameInput) (*folderOutput, error) {
	id, err := problem.ID(input.ID, folder.ErrNotFound)
	if err != nil {
		return nil, err
	}

	f, err := h.service.Rename(ctx, id, input.Body)
	if err != nil {
		return nil, problem.From(h.log, err)
	}

	return &folderOutput{Body: f}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	id, err := problem.ID(input.ID, folder.ErrNotFound)
	if err != nil {
		return nil, err
	}

	if err := h.service.Delete(ctx, id); err != nil {
		return nil, problem.From(h.log, err)
	}

	return &deleteOutput{}, nil
}
