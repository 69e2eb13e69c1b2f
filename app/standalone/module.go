package standalone

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/simpleweb/config"
	"github.com/lambda-feedback/simpleweb/internal/responder"
	"github.com/lambda-feedback/simpleweb/internal/server"
	"github.com/lambda-feedback/simpleweb/util/logging"
)

// Module serves the responder on a standalone http server.
func Module(cfg config.Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide handlers
		responder.Module(),
		// provide server
		server.Module(cfg.Http),
	)
}
