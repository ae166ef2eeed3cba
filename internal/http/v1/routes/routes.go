package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/hello-service/internal/http/v1/hello"
	"github.com/janisto/hello-service/internal/http/v1/version"
)

// Prefix is the path every JSON operation is mounted under.
const Prefix = "/api"

// Register wires all API operations into the provided API under Prefix.
func Register(api huma.API) {
	grp := huma.NewGroup(api, Prefix)

	hello.Register(grp)
	version.Register(grp)
}
