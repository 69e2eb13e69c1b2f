package responder

import "github.com/lambda-feedback/simpleweb/internal/server"

// NewRootRoute mounts the responder as the catch-all route. The
// responder itself answers 404 for everything but GET /.
func NewRootRoute(handler *Responder) server.HttpHandlerResult {
	return server.AsHttpHandler("/", handler)
}
