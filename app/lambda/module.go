package lambda

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/simpleweb/internal/responder"
	"github.com/lambda-feedback/simpleweb/util/logging"
)

// Module serves the responder through the AWS Lambda runtime.
func Module(config Config) fx.Option {
	return fx.Module(
		"lambda",
		// provide lambda config
		fx.Supply(config),
		// rename logger for module
		logging.DecorateLogger("lambda"),
		// provide handlers
		responder.Module(),
		// provide handler
		fx.Provide(NewLifecycleHandler),
		// invoke handler
		fx.Invoke(func(*LambdaHandler) {}),
	)
}
