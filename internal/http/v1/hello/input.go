package hello

import (
	"github.com/danielgtaylor/huma/v2"
)

const defaultName = "World"

// GetInput carries the optional name to greet.
type GetInput struct {
	Name string `query:"name" doc:"Name to greet. Defaults to World when the parameter is absent; an empty value is used as-is." example:"Alice"`
}

// Resolve takes the raw query value whenever the parameter is present. huma
// binds a bare ?name to "true", and an absent parameter falls back to defaultName.
func (i *GetInput) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	q := u.Query()
	if !q.Has("name") {
		i.Name = defaultName
		return nil
	}
	i.Name = q.Get("name")
	return nil
}
