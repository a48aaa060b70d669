package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"docstore/internal/domain"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Document, error)
	Find(ctx context.Context, id int64) (*Document, error)
	Create(ctx context.Context, req CreateRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "document_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]Document, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list documents", "error", err)
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (s *Service) Find(ctx context.Context, id int64) (*Document, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find document", "document_id", id, "error", err)
		return nil, fmt.Errorf("find document: %w", err)
	}
	return doc, nil
}

// Create validates the upload before building the row, so a rejected
// request never reaches the repository.
func (s *Service) Create(ctx context.Context, req CreateRequest) (int64, error) {
	if err := req.ValidateText(); err != nil {
		s.log.Debug("document text rejected", "error", err)
		return 0, domain.ErrInvalidText
	}
	if err := req.Validate(); err != nil {
		s.log.Debug("document validation failed", "error", err)
		return 0, ErrMissingFields
	}

	size := int64(len(req.Content))
	if req.DeclaredSize != nil && *req.DeclaredSize != size {
		s.log.Warn("declared document size ignored",
			"declared", *req.DeclaredSize, "actual", size, "name", req.Name)
	}

	doc := &Document{
		Name:        req.Name,
		UserID:      req.UserID,
		FolderID:    req.FolderID,
		Content:     req.Content,
		Type:        req.Type,
		Size:        size,
		DateCreated: time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, doc)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidReference) {
			return 0, ErrUnknownOwner
		}
		s.log.Error("failed to create document", "user_id", req.UserID, "error", err)
		return 0, fmt.Errorf("create document: %w", err)
	}

	s.log.Info("document created", "document_id", id, "user_id", req.UserID, "size", size)
	return id, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete document", "document_id", id, "error", err)
		return fmt.Errorf("delete document: %w", err)
	}

	s.log.Info("document deleted", "document_id", id)
	return nil
}
