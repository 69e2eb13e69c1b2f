package responder

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("responder",
		fx.Provide(NewResponder),
		fx.Provide(NewRootRoute),
	)
}
