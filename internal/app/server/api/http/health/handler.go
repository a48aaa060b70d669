package health

import (
	"context"

	"docstore/internal/utils/logger"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const welcomeMessage = "Welcome to the Drive Dropbox Backend!"

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db         Pinger
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(db Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		db:         db,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
	huma.Register(api, h.welcomeOp(), h.welcome)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error("database ping failed", logger.Err(err))
		return nil, huma.Error503ServiceUnavailable("database unavailable")
	}

	return &Output{
		Body: Response{
			Status: "OK",
		},
	}, nil
}

func (h *Handler) welcome(_ context.Context, _ *struct{}) (*welcomeOutput, error) {
	return &welcomeOutput{
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte(welcomeMessage),
	}, nil
}
