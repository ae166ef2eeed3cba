// Package hello deploys the greeting and version endpoints as HTTP Cloud Functions.
package hello

import (
	"encoding/json"
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

const (
	defaultName = "World"

	versionNumber      = "1.1.0"
	versionDescription = "New /api/version endpoint added"
)

func init() {
	functions.HTTP("Hello", helloHandler)
	functions.HTTP("Version", versionHandler)
}

// Greeting is the Hello function response.
type Greeting struct {
	Message string `json:"message"`
}

// VersionInfo is the Version function response.
type VersionInfo struct {
	Version     string `json:"version"`
	Description string `json:"description"`
}

func helloHandler(w http.ResponseWriter, r *http.Request) {
	name := defaultName
	if q := r.URL.Query(); q.Has("name") {
		name = q.Get("name")
	}
	writeJSON(w, Greeting{Message: "Hello, " + name + "!"})
}

func versionHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, VersionInfo{Version: versionNumber, Description: versionDescription})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
