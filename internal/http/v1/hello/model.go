package hello

// Data models the greeting payload.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello, World!"`
}

// GetOutput wraps the greeting for huma.
type GetOutput struct {
	Body Data
}
