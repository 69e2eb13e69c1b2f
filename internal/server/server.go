package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

type HttpServerParams struct {
	fx.In

	Context context.Context

	Config HttpConfig

	Handlers []*HttpHandler `group:"handlers"`
	Logger   *zap.Logger

	// Notice receives the operator-facing startup line, stdout if unset.
	Notice io.Writer `name:"notice" optional:"true"`
}

type HttpServer struct {
	ctx      context.Context
	addr     string
	server   *http.Server
	listener net.Listener
	notice   io.Writer
	log      *zap.Logger
}

func NewHttpServer(params HttpServerParams) *HttpServer {
	ctx := params.Context
	if ctx == nil {
		ctx = context.Background()
	}

	notice := params.Notice
	if notice == nil {
		notice = os.Stdout
	}

	router := NewRouter(params.Handlers)

	var handler http.Handler = router
	if params.Config.H2c {
		handler = h2c.NewHandler(router, &http2.Server{})
	}

	addr := params.Config.Address()

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	return &HttpServer{
		ctx:    ctx,
		addr:   addr,
		server: server,
		notice: notice,
		log:    params.Logger,
	}
}

func NewLifecycleServer(params HttpServerParams, lc fx.Lifecycle) *HttpServer {
	server := NewHttpServer(params)
	lc.Append(fx.Hook{
		OnStart: server.Start,
		OnStop:  server.Shutdown,
	})
	return server
}

// Start binds the listening socket and serves in the background.
// A *BindError is returned if the socket cannot be acquired; the
// startup notice is only written once the bind succeeded.
func (s *HttpServer) Start(ctx context.Context) error {
	cfg := net.ListenConfig{}

	listener, err := cfg.Listen(ctx, "tcp", s.addr)
	if err != nil {
		s.log.With(zap.Error(err), zap.String("address", s.addr)).Error("failed to listen")
		return &BindError{Addr: s.addr, Err: err}
	}

	s.listener = listener

	s.log.With(zap.String("address", listener.Addr().String())).Info("listening")

	if _, err := fmt.Fprintf(s.notice, "Listening on port %d\n", s.Port()); err != nil {
		s.log.Debug("failed to write startup notice", zap.Error(err))
	}

	go s.serve(listener)

	return nil
}

func (s *HttpServer) serve(listener net.Listener) {
	if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
		s.log.With(zap.Error(err)).Error("failed to serve")
	}
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		s.log.With(zap.Error(err)).Error("failed to shutdown")
		return err
	}

	return nil
}

// Addr returns the bound address, or nil before Start succeeded.
func (s *HttpServer) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// Port returns the bound port, or 0 before Start succeeded.
func (s *HttpServer) Port() int {
	if addr, ok := s.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}

	return 0
}
