// Package version reports static API version metadata.
package version

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Register wires the version route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-version",
		Method:      http.MethodGet,
		Path:        "/version",
		Summary:     "Get API version",
		Tags:        []string{"Meta"},
	}, getHandler)
}

func getHandler(_ context.Context, _ *struct{}) (*InfoOutput, error) {
	return &InfoOutput{Body: Info{Version: Number, Description: Description}}, nil
}
