package cmd

import (
	"github.com/lambda-feedback/simpleweb/app"
	"github.com/lambda-feedback/simpleweb/app/lambda"
	"github.com/lambda-feedback/simpleweb/config"
	"github.com/lambda-feedback/simpleweb/util/conf"
	"github.com/lambda-feedback/simpleweb/util/logging"
	"github.com/urfave/cli/v2"
)

var (
	lambdaCmdDescription = `The lambda command starts the responder as an AWS Lambda
runtime interface client, which allows it to be directly invoked
by the AWS Lambda runtime without any additional dependencies.

Lambda events are translated into http requests, so the responder
behaves the same as behind the standalone http server.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lambda-proxy-source",
				Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
				Value:    lambda.ProxySourceApiGatewayV2.String(),
				EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
				Category: "lambda",
			},
		},
	}
)

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	if _, err := loadConfig(ctx); err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[lambda.Config](conf.ParseOptions{
		Cli:       ctx,
		Defaults:  lambda.DefaultConfig,
		EnvPrefix: config.EnvPrefix,
		FileName:  ctx.Path("config"),
		Schema:    config.Schema,
		Log:       log,
	})
	if err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler")

	return app.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
