package document

import "context"

type Repository interface {
	List(ctx context.Context) ([]Document, error)
	ListByUser(ctx context.Context, userID int64) ([]Document, error)
	ListByFolder(ctx context.Context, folderID int64) ([]Document, error)
	Get(ctx context.Context, id int64) (*Document, error)
	Create(ctx context.Context, doc *Document) (int64, error)
	Delete(ctx context.Context, id int64) error
}
