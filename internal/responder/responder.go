// Package responder answers GET / with a fixed plaintext greeting
// and every other request with 404.
package responder

import (
	"fmt"
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Greeting is the body served for GET /.
const Greeting = "Vaja 2: Deluje!"

type ResponderParams struct {
	fx.In

	Log *zap.Logger
}

func NewResponder(params ResponderParams) *Responder {
	return &Responder{
		log: params.Log,
	}
}

type Responder struct {
	log *zap.Logger
}

func (h *Responder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	if r.Method != http.MethodGet || r.URL.Path != "/" {
		log.Debug("no route")
		NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, Greeting); err != nil {
		log.Debug("failed to write response", zap.Error(err))
		return
	}

	log.Debug("served greeting")
}

// NotFound writes a plain text 404 naming the unmatched method and path.
func NotFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path), http.StatusNotFound)
}
