// Package apiconfig builds the huma configuration shared by the server and tests.
package apiconfig

import (
	"encoding/json"
	"io"
	"maps"

	"github.com/danielgtaylor/huma/v2"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
)

// DocsPath is where the interactive API docs are served.
const DocsPath = "/api-docs"

// JSONFormat encodes without HTML escaping so strings reach clients unchanged.
var JSONFormat = huma.Format{
	Marshal: func(w io.Writer, v any) error {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	},
	Unmarshal: json.Unmarshal,
}

// New returns a huma config with docs at DocsPath, no $schema links in
// response bodies, unescaped JSON and CBOR listed next to JSON in the OpenAPI
// document.
func New(title, version string) huma.Config {
	cfg := huma.DefaultConfig(title, version)
	cfg.DocsPath = DocsPath
	// The default create hook adds a $schema property and Link header to every body.
	cfg.CreateHooks = nil

	cfg.Formats = maps.Clone(cfg.Formats)
	cfg.Formats["application/json"] = JSONFormat
	cfg.Formats["json"] = JSONFormat

	cfg.OpenAPI.OnAddOperation = append(cfg.OpenAPI.OnAddOperation, advertiseCBOR)
	return cfg
}

func advertiseCBOR(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}
