package folder

import "docstore/internal/domain/folder"

type listInput struct {
	Depth int `query:"depth" default:"2" minimum:"0" maximum:"2" doc:"Levels of related entities to embed"`
}

type listOutput struct {
	Body []folder.Folder
}

type findInput struct {
	ID    string `path:"id" example:"1" doc:"Folder identifier"`
	Depth int    `query:"depth" default:"2" minimum:"0" maximum:"2" doc:"Levels of related entities to embed"`
}

type folderOutput struct {
	Body *folder.Folder
}

// createInput carries the raw form body; fields are decoded by the handler.
type createInput struct {
	ContentType string `header:"Content-Type"`
	RawBody     []byte
}

type messageOutput struct {
	Body FolderCreated
}

type FolderCreated struct {
	Message string `json:"message" example:"Folder created successfully"`
	ID      int64  `json:"id,omitempty" doc:"Identifier of the created folder"`
}

type renameInput struct {
	ID   string `path:"id" example:"1" doc:"Folder identifier"`
	Body folder.RenameRequest
}

type deleteInput struct {
	ID string `path:"id" example:"1" doc:"Folder identifier"`
}

type deleteOutput struct{}
