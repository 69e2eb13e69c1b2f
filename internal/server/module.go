package server

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/simpleweb/util/logging"
)

// Module binds the http server described by config and serves the
// handlers of the "handlers" group for the lifetime of the app.
func Module(config HttpConfig) fx.Option {
	return fx.Module("server",
		// rename logger for module
		logging.DecorateLogger("server"),
		// provide config
		fx.Supply(config),
		// provide server
		fx.Provide(NewLifecycleServer),
		// invoke server
		fx.Invoke(func(*HttpServer) {}),
	)
}
