package user

type CreateRequest struct {
	Username string `json:"username" doc:"Unique user name" maxLength:"80"`
	Email    string `json:"email" doc:"Unique e-mail address" maxLength:"120"`
	Password string `json:"password" doc:"Plain password, stored as a bcrypt hash"`
}

type UpdateRequest struct {
	Username string `json:"username" doc:"Unique user name" maxLength:"80"`
	Email    string `json:"email" doc:"Unique e-mail address" maxLength:"120"`
}
