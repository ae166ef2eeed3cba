// Package health serves the liveness and readiness probes.
package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	liveBody  = "OK"
	readyBody = "READY"
)

// Register mounts GET /health and GET /ready on the router.
func Register(r chi.Router) {
	r.Get("/health", Live)
	r.Get("/ready", Ready)
}

// Live reports that the process is up.
func Live(w http.ResponseWriter, _ *http.Request) {
	writeText(w, liveBody)
}

// Ready reports that the process accepts traffic. There are no dependencies to check.
func Ready(w http.ResponseWriter, _ *http.Request) {
	writeText(w, readyBody)
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
