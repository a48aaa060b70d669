package user

import "docstore/internal/domain/user"

type listInput struct {
	Depth int `query:"depth" default:"2" minimum:"0" maximum:"2" doc:"Levels of related entities to embed"`
}

type listOutput struct {
	Body []user.User
}

type findInput struct {
	ID    string `path:"id" example:"1" doc:"User identifier"`
	Depth int    `query:"depth" default:"2" minimum:"0" maximum:"2" doc:"Levels of related entities to embed"`
}

type userOutput struct {
	Body *user.User
}

type createInput struct {
	Body user.CreateRequest
}

type updateInput struct {
	ID   string `path:"id" example:"1" doc:"User identifier"`
	Body user.UpdateRequest
}

type deleteInput struct {
	ID string `path:"id" example:"1" doc:"User identifier"`
}

type deleteOutput struct{}

type toggleInput struct {
	ID string `path:"id" example:"1" doc:"User identifier"`
}

type toggleOutput struct {
	Body ToggleResponse
}

type ToggleResponse struct {
	Message string `json:"message" example:"Dropbox sync updated successfully"`
	Enabled bool   `json:"enabled" doc:"Flag value after the toggle"`
}
