package document

import "time"

// Document is an immutable binary payload owned by a user and optionally
// filed in a folder. Content is serialised as base64 by encoding/json.
type Document struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	UserID      int64     `json:"user_id"`
	FolderID    *int64    `json:"folder_id"`
	Content     []byte    `json:"document"`
	Type        string    `json:"type"`
	DateCreated time.Time `json:"date_created"`
	Size        int64     `json:"size"`
}

// GroupByUser indexes documents by owner, keeping input order.
func GroupByUser(docs []Document) map[int64][]Document {
	out := make(map[int64][]Document)
	for _, d := range docs {
		out[d.UserID] = append(out[d.UserID], d)
	}
	return out
}

// GroupByFolder indexes filed documents by folder. Unfiled documents are skipped.
func GroupByFolder(docs []Document) map[int64][]Document {
	out := make(map[int64][]Document)
	for _, d := range docs {
		if d.FolderID == nil {
			continue
		}
		out[*d.FolderID] = append(out[*d.FolderID], d)
	}
	return out
}
