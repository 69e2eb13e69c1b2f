package cmd

import (
	"github.com/lambda-feedback/simpleweb/app"
	"github.com/lambda-feedback/simpleweb/app/standalone"
	"github.com/urfave/cli/v2"
)

var (
	serveCmdDescription = `The serve command binds the http server and answers GET /
with a fixed plaintext greeting, every other request with 404.

Once the port is bound, the line "Listening on port <port>" is
written to stdout. The command blocks until it receives SIGINT
or SIGTERM. If the port cannot be bound, it exits with status 1.`
	serveFlags = []cli.Flag{
		&cli.StringFlag{
			Name:     "host",
			Aliases:  []string{"H"},
			Usage:    "The host to listen on, empty for all interfaces.",
			Category: "http",
			EnvVars:  []string{"HTTP_HOST"},
		},
		&cli.IntFlag{
			Name:     "port",
			Aliases:  []string{"P"},
			Usage:    "The port to listen on.",
			Value:    8080,
			Category: "http",
			EnvVars:  []string{"HTTP_PORT", "PORT"},
		},
		&cli.BoolFlag{
			Name:     "h2c",
			Usage:    "Enable HTTP/2 cleartext upgrade.",
			Value:    false,
			Category: "http",
			EnvVars:  []string{"HTTP_H2C"},
		},
	}
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start the http server.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags:       serveFlags,
	}
)

func serveAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Flags = append(rootApp.Flags, serveFlags...)
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
