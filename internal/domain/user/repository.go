package user

import (
	"context"

	"docstore/internal/domain/document"
	"docstore/internal/domain/folder"
)

type Repository interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, u *User) (int64, error)
	UpdateProfile(ctx context.Context, id int64, username, email string) error
	// ToggleSync flips the provider flag in one statement and returns the new value.
	ToggleSync(ctx context.Context, id int64, provider Provider) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type FolderLister interface {
	List(ctx context.Context) ([]folder.Folder, error)
	ListByUser(ctx context.Context, userID int64) ([]folder.Folder, error)
}

type DocumentLister interface {
	List(ctx context.Context) ([]document.Document, error)
	ListByUser(ctx context.Context, userID int64) ([]document.Document, error)
}
