package folder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"docstore/internal/domain"
	"docstore/internal/domain/document"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, depth int) ([]Folder, error)
	Find(ctx context.Context, id int64, depth int) (*Folder, error)
	Create(ctx context.Context, req CreateRequest) (int64, error)
	Rename(ctx context.Context, id int64, req RenameRequest) (*Folder, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo      Repository
	documents DocumentLister
	log       *slog.Logger
}

func NewService(repo Repository, documents DocumentLister, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		documents: documents,
		log:       log.With("component", "folder_service"),
	}
}

func (s *Service) List(ctx context.Context, depth int) ([]Folder, error) {
	folders, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list folders", "error", err)
		return nil, fmt.Errorf("list folders: %w", err)
	}

	if domain.ClampDepth(depth) == domain.DepthFlat || len(folders) == 0 {
		return folders, nil
	}

	docs, err := s.documents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list folder documents: %w", err)
	}
	Attach(folders, document.GroupByFolder(docs))

	return folders, nil
}

func (s *Service) Find(ctx context.Context, id int64, depth int) (*Folder, error) {
	f, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find folder", "folder_id", id, "error", err)
		return nil, fmt.Errorf("find folder: %w", err)
	}

	if domain.ClampDepth(depth) == domain.DepthFlat {
		return f, nil
	}

	docs, err := s.documents.ListByFolder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list folder documents: %w", err)
	}
	if docs == nil {
		docs = []document.Document{}
	}
	f.Documents = docs

	return f, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (int64, error) {
	if err := req.ValidateText(); err != nil {
		s.log.Debug("folder text rejected", "error", err)
		return 0, domain.ErrInvalidText
	}
	if err := req.Validate(); err != nil {
		s.log.Debug("folder validation failed", "error", err)
		return 0, ErrMissingFields
	}

	f := &Folder{
		Name:        req.Name,
		Description: normalizeDescription(req.Description),
		UserID:      req.UserID,
		DateCreated: time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, f)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidReference) {
			return 0, ErrUnknownOwner
		}
		s.log.Error("failed to create folder", "user_id", req.UserID, "error", err)
		return 0, fmt.Errorf("create folder: %w", err)
	}

	s.log.Info("folder created", "folder_id", id, "user_id", req.UserID)
	return id, nil
}

// Rename changes only the name; description, owner and date_created stay as stored.
func (s *Service) Rename(ctx context.Context, id int64, req RenameRequest) (*Folder, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.Validation(err.Error())
	}

	if err := s.repo.Rename(ctx, id, req.Name); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to rename folder", "folder_id", id, "error", err)
		return nil, fmt.Errorf("rename folder: %w", err)
	}

	s.log.Info("folder renamed", "folder_id", id)
	return s.Find(ctx, id, domain.DepthMax)
}

// Delete removes the folder; its documents are detached by the store.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete folder", "folder_id", id, "error", err)
		return fmt.Errorf("delete folder: %w", err)
	}

	s.log.Info("folder deleted", "folder_id", id)
	return nil
}

func normalizeDescription(d *string) *string {
	if d == nil || strings.TrimSpace(*d) == "" {
		return nil
	}
	return d
}
