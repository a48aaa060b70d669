package user

import (
	"context"

	"docstore/internal/app/server/api/http/problem"
	"docstore/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.toggleOp(user.ProviderDropbox), h.toggle(user.ProviderDropbox))
	huma.Register(api, h.toggleOp(user.ProviderDrive), h.toggle(user.ProviderDrive))
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	users, err := h.service.List(ctx, input.Depth)
	if err != nil {
		return nil, problem.From(h.log, err)
	}
	if users == nil {
		users = []user.User{}
	}

	return &listOutput{Body: users}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*userOutput, error) {
	u, err := h.service.Create(ctx, input.Body)
	if err != nil {
		return nil, problem.From(h.log, err)
	}

	return &userOutput{Body: u}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*userOutput, error) {
	id, err := problem.ID(input.ID, user.ErrNotFound)
	if err != nil {
		return nil, err
	}

	u, err := h.service.Find(ctx, id, input.Depth)
	if err != nil {
		return nil, problem.From(h.log, err)
	}

	return &userOutput{Body: u}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*userOutput, error) {
	id, err := problem.ID(input.ID, user.ErrNotFound)
	if err != nil {
		return nil, err
	}

	u, err := h.service.Update(ctx, id, input.Body)
	if err != nil {
		return nil, problem.From(h.log, err)
	}

	return &userOutput{Body: u}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	id, err := problem.ID(input.ID, user.ErrNotFound)
	if err != nil {
		return nil, err
	}

	if err := h.service.Delete(ctx, id); err != nil {
		return nil, problem.From(h.log, err)
	}

	return &deleteOutput{}, nil
}

func (h *Handler) toggle(provider user.Provider) func(context.Context, *toggleInput) (*toggleOutput, error) {
	return func(ctx context.Context, input *toggleInput) (*toggleOutput, error) {
		id, err := problem.ID(input.ID, user.ErrNotFound)
		if err != nil {
			return nil, err
		}

		enabled, err := h.service.ToggleSync(ctx, id, provider)
		if err != nil {
			return nil, problem.From(h.log, err)
		}

		return &toggleOutput{
			Body: ToggleResponse{
				Message: provider.Title() + " sync updated successfully",
				Enabled: enabled,
			},
		}, nil
	}
}
