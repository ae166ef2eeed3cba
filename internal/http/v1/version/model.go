package version

const (
	// Number is the API version reported by GET /version.
	Number = "1.1.0"
	// Description summarizes what changed in Number.
	Description = "New /api/version endpoint added"
)

// Info models the version payload.
type Info struct {
	Version     string `json:"version" doc:"API version" example:"1.1.0"`
	Description string `json:"description" doc:"What changed in this version" example:"New /api/version endpoint added"`
}

// InfoOutput wraps the version info for huma.
type InfoOutput struct {
	Body Info
}
