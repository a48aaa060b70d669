package user

import (
	"context"
	"errors"
	"fmt"

	"docstore/internal/domain"
	"docstore/internal/domain/document"
	"docstore/internal/domain/folder"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, depth int) ([]User, error)
	Find(ctx context.Context, id int64, depth int) (*User, error)
	Create(ctx context.Context, req CreateRequest) (*User, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*User, error)
	Delete(ctx context.Context, id int64) error
	ToggleSync(ctx context.Context, id int64, provider Provider) (bool, error)
	Authenticate(ctx context.Context, username, password string) (*User, error)
}

type Service struct {
	repo      Repository
	folders   FolderLister
	documents DocumentLister
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, folders FolderLister, documents DocumentLister, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		folders:   folders,
		documents: documents,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

func (s *Service) List(ctx context.Context, depth int) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("list users: %w", err)
	}

	depth = domain.ClampDepth(depth)
	if depth == domain.DepthFlat || len(users) == 0 {
		return users, nil
	}

	folders, err := s.folders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user folders: %w", err)
	}
	docs, err := s.documents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user documents: %w", err)
	}

	foldersByUser := folder.GroupByUser(folders)
	docsByUser := document.GroupByUser(docs)
	for i := range users {
		nest(&users[i], foldersByUser[users[i].ID], docsByUser[users[i].ID], depth)
	}

	return users, nil
}

func (s *Service) Find(ctx context.Context, id int64, depth int) (*User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find user", "user_id", id, "error", err)
		return nil, fmt.Errorf("find user: %w", err)
	}

	depth = domain.ClampDepth(depth)
	if depth == domain.DepthFlat {
		return u, nil
	}

	folders, err := s.folders.ListByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list user folders: %w", err)
	}
	docs, err := s.documents.ListByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list user documents: %w", err)
	}
	nest(u, folders, docs, depth)

	return u, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*User, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		s.log.Debug("validation failed", "username", req.Username, "error", err)
		return nil, domain.Validation(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	id, err := s.repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, ErrDuplicate
		}
		s.log.Error("failed to create user", "username", req.Username, "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	u.ID = id
	u.Documents = []document.Document{}
	u.Folders = []folder.Folder{}

	s.log.Info("user created", "user_id", id)
	return u, nil
}

// Update overwrites username and email only.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*User, error) {
	if err := s.validator.ValidateUpdate(req); err != nil {
		return nil, domain.Validation(err.Error())
	}

	if err := s.repo.UpdateProfile(ctx, id, req.Username, req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, domain.ErrConflict):
			return nil, ErrDuplicate
		}
		s.log.Error("failed to update user", "user_id", id, "error", err)
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info("user updated", "user_id", id)
	return s.Find(ctx, id, domain.DepthMax)
}

// Delete removes the user; owned folders and documents go with it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info("user deleted", "user_id", id)
	return nil
}

func (s *Service) ToggleSync(ctx context.Context, id int64, provider Provider) (bool, error) {
	if _, ok := provider.Column(); !ok {
		return false, ErrUnknownProvider
	}

	enabled, err := s.repo.ToggleSync(ctx, id, provider)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, ErrNotFound
		}
		s.log.Error("failed to toggle sync", "user_id", id, "provider", provider, "error", err)
		return false, fmt.Errorf("toggle %s sync: %w", provider, err)
	}

	s.log.Info("sync toggled", "user_id", id, "provider", provider, "enabled", enabled)
	return enabled, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	if username == "" {
		return nil, ErrInvalidAuth
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidAuth
	}

	return u, nil
}

// nest attaches owned entities to u. At depth 2 each folder also lists the
// user's documents filed in it.
func nest(u *User, folders []folder.Folder, docs []document.Document, depth int) {
	if folders == nil {
		folders = []folder.Folder{}
	}
	if docs == nil {
		docs = []document.Document{}
	}
	if depth >= domain.DepthMax {
		folder.Attach(folders, document.GroupByFolder(docs))
	}
	u.Folders = folders
	u.Documents = docs
}
