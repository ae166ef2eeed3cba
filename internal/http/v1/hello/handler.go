package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-service/internal/platform/logging"
)

// Register wires the greeting route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        "/hello",
		Summary:     "Greet by name",
		Tags:        []string{"Greeting"},
	}, getHandler)
}

func getHandler(ctx context.Context, input *GetInput) (*GetOutput, error) {
	applog.LogInfo(ctx, "hello get", zap.String("name", input.Name))
	return &GetOutput{Body: Data{Message: Greet(input.Name)}}, nil
}

// Greet builds the greeting for name verbatim.
func Greet(name string) string {
	return "Hello, " + name + "!"
}
