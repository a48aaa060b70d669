// Package api assembles the HTTP surface of the document store:
//
//	GET    /                         welcome text
//	GET    /api/v1/health            store ping
//	GET    /users, POST /users
//	GET    /user/{id}, PUT /user/{id}, DELETE /user/{id}
//	PUT    /update_dropbox_sync/{id}, PUT /update_drive_sync/{id}
//	GET    /folders, POST /folders
//	GET    /folder/{id}, PUT /folder/{id}, DELETE /folder/{id}
//	GET    /documents, POST /documents
//	GET    /document/{id}, DELETE /document/{id}
package api

import (
	"net/http"

	"docstore/internal/app/server/api/http/document"
	"docstore/internal/app/server/api/http/folder"
	"docstore/internal/app/server/api/http/health"
	"docstore/internal/app/server/api/http/middleware/logger"
	"docstore/internal/app/server/api/http/user"
	"docstore/internal/app/server/config"
	documentDomain "docstore/internal/domain/document"
	folderDomain "docstore/internal/domain/folder"
	userDomain "docstore/internal/domain/user"
	"docstore/internal/infrastructure/storage"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health   *health.Handler
	User     *user.Handler
	Folder   *folder.Handler
	Document *document.Handler
}

// New registers every operation on a chi mux and wraps it with CORS.
func New(store storage.Store, cfg *config.Config, log *slog.Logger) http.Handler {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)

	API := humachi.New(mux, huma.DefaultConfig("Docstore API", "1.0.0"))

	h := handlers(store, cfg, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Folder.SetupRoutes(API)
	h.Document.SetupRoutes(API)

	return corsHandler(cfg.Server.CORSOrigins).Handler(mux)
}

func handlers(store storage.Store, cfg *config.Config, log *slog.Logger) *Handlers {
	mw := huma.Middlewares{logger.New(log).Middleware()}

	documentService := documentDomain.NewService(store.Documents(), log)
	folderService := folderDomain.NewService(store.Folders(), store.Documents(), log)
	userService := userDomain.NewService(
		store.Users(), store.Folders(), store.Documents(), userDomain.NewPasswordValidator(), log,
	)

	healthHandler := health.NewHandler(store, log, mw)
	userHandler := user.NewHandler(userService, log, mw)
	folderHandler := folder.NewHandler(folderService, log, mw, cfg.Server.MaxUploadBytes)
	documentHandler := document.NewHandler(documentService, log, mw, cfg.Server.MaxUploadBytes)

	return &Handlers{
		Health:   healthHandler,
		User:     userHandler,
		Folder:   folderHandler,
		Document: documentHandler,
	}
}

func corsHandler(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	})
}
