package app

import (
	"github.com/lambda-feedback/simpleweb/config"
	"github.com/lambda-feedback/simpleweb/internal/shell"
	"github.com/lambda-feedback/simpleweb/util/conf"
	"github.com/lambda-feedback/simpleweb/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

// New creates the shell for a cli invocation from the logger and
// config stored in the cli context.
func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
	)

	return shell.New(log, sharedModule), nil
}
