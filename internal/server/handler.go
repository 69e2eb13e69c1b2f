package server

import (
	"net/http"
	"strings"

	"go.uber.org/fx"
)

// HttpHandler is a handler mounted on the server mux under the
// pattern Name.
type HttpHandler struct {
	Name    string
	Handler http.Handler
}

type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

func AsHttpHandler(
	name string,
	handler http.Handler,
) HttpHandlerResult {
	return HttpHandlerResult{
		Handler: &HttpHandler{
			Name:    name,
			Handler: handler,
		},
	}
}

// Router dispatches requests to the handler with the longest
// matching pattern. A pattern ending in "/" matches every path with
// that prefix, any other pattern only its exact path. Unlike
// http.ServeMux, paths are matched as received, never cleaned or
// redirected.
type Router struct {
	handlers []*HttpHandler
}

// NewRouter mounts handlers on a fresh router.
func NewRouter(handlers []*HttpHandler) *Router {
	return &Router{handlers: handlers}
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if handler := rt.match(r.URL.Path); handler != nil {
		handler.ServeHTTP(w, r)
		return
	}

	http.NotFound(w, r)
}

func (rt *Router) match(path string) http.Handler {
	var best *HttpHandler

	for _, handler := range rt.handlers {
		if !matches(handler.Name, path) {
			continue
		}
		if best == nil || len(handler.Name) > len(best.Name) {
			best = handler
		}
	}

	if best == nil {
		return nil
	}

	return best.Handler
}

func matches(pattern, path string) bool {
	if strings.HasSuffix(pattern, "/") {
		return strings.HasPrefix(path, pattern)
	}

	return path == pattern
}
