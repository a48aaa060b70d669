package health

type Input struct{}

type Output struct {
	Body Response
}

type Response struct {
	Status string `json:"status" example:"OK" doc:"Health status of the service"`
}

type welcomeOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}
