package user

import (
	"docstore/internal/domain/document"
	"docstore/internal/domain/folder"
)

type User struct {
	ID           int64               `json:"id"`
	Username     string              `json:"username"`
	Email        string              `json:"email"`
	PasswordHash string              `json:"-"` // bcrypt
	DropboxSync  bool                `json:"dropbox_sync"`
	DriveSync    bool                `json:"drive_sync"`
	Documents    []document.Document `json:"documents,omitzero"`
	Folders      []folder.Folder     `json:"folders,omitzero"`
}

// Provider names an external storage integration with a per-user sync flag.
type Provider string

const (
	ProviderDropbox Provider = "dropbox"
	ProviderDrive   Provider = "drive"
)

// Column returns the users column holding the provider's flag.
func (p Provider) Column() (string, bool) {
	switch p {
	case ProviderDropbox:
		return "dropbox_sync", true
	case ProviderDrive:
		return "drive_sync", true
	default:
		return "", false
	}
}

func (p Provider) Title() string {
	switch p {
	case ProviderDropbox:
		return "Dropbox"
	case ProviderDrive:
		return "Drive"
	default:
		return string(p)
	}
}
