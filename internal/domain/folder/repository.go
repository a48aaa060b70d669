package folder

import (
	"context"

	"docstore/internal/domain/document"
)

type Repository interface {
	List(ctx context.Context) ([]Folder, error)
	ListByUser(ctx context.Context, userID int64) ([]Folder, error)
	Get(ctx context.Context, id int64) (*Folder, error)
	Create(ctx context.Context, f *Folder) (int64, error)
	Rename(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// DocumentLister is the read side of the document store that folder
// responses need for nesting.
type DocumentLister interface {
	List(ctx context.Context) ([]document.Document, error)
	ListByFolder(ctx context.Context, folderID int64) ([]document.Document, error)
}
