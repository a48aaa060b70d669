package folder

import (
	"time"

	"docstore/internal/domain/document"
)

type Folder struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	UserID      int64               `json:"user_id"`
	DateCreated time.Time           `json:"date_created"`
	Documents   []document.Document `json:"documents,omitzero"`
}

// GroupByUser indexes folders by owner, keeping input order.
func GroupByUser(folders []Folder) map[int64][]Folder {
	out := make(map[int64][]Folder)
	for _, f := range folders {
		out[f.UserID] = append(out[f.UserID], f)
	}
	return out
}

// Attach fills Documents on each folder from a folder-indexed map.
// Empty folders get an empty, non-nil slice so they serialise as [].
func Attach(folders []Folder, byFolder map[int64][]document.Document) {
	for i := range folders {
		docs := byFolder[folders[i].ID]
		if docs == nil {
			docs = []document.Document{}
		}
		folders[i].Documents = docs
	}
}
