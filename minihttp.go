package minihttp

import (
	"errors"
	"net"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/minihttp/config"
	"github.com/indigo-web/minihttp/filestore"
	"github.com/indigo-web/minihttp/handlers"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/minihttp/internal/server/http"
	"github.com/indigo-web/minihttp/router"
	"github.com/indigo-web/minihttp/transport"
	"github.com/rs/zerolog"
)

// DefaultAddr is the address the server listens on unless another one is passed.
const DefaultAddr = "localhost:4221"

// connIDLength is the length of random connection identifiers attached to log entries.
const connIDLength = 8

// App binds a single TCP listener and serves connections until stopped.
type App struct {
	addr  string
	cfg   *config.Config
	log   zerolog.Logger
	hooks hooks
	tcp   *transport.TCP
}

// New returns a new App instance with default config and a disabled logger.
func New(addr string) *App {
	return &App{
		addr: addr,
		cfg:  config.Default(),
		log:  zerolog.Nop(),
		tcp:  transport.NewTCP(),
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger sets the logger used for the app itself and every connection.
func (a *App) Logger(log zerolog.Logger) *App {
	a.log = log
	return a
}

// NotifyOnStart calls the callback at the moment the listener is bound, so new connections
// may already be established.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback when the server isn't accepting new connections anymore
// and all the pending ones are served.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve binds the address and serves connections until Stop is called or accepting fails.
// If nil is passed instead of a router, the default route table over the configured file
// directory is used.
func (a *App) Serve(r router.Router) error {
	if r == nil {
		r = handlers.New(a.cfg, filestore.New(a.cfg.Files.Directory), a.log)
	}

	if err := a.tcp.Bind(a.addr); err != nil {
		return err
	}

	a.log.Info().
		Str("addr", a.tcp.Addr().String()).
		Str("directory", a.cfg.Files.Directory).
		Bool("concurrent", a.cfg.NET.Concurrent).
		Msg("listening")
	callIfNotNil(a.hooks.OnStart)

	err := a.tcp.Listen(a.cfg.NET, a.newTCPCallback(r))
	a.tcp.Wait()
	a.tcp.Close()

	if err != nil {
		a.log.Error().Err(err).Msg("accept loop failed")
	} else {
		a.log.Info().Msg("stopped")
	}

	callIfNotNil(a.hooks.OnStop)

	return err
}

// Addr returns the address the server is listening on. Must be called only after the
// server started, e.g. from the NotifyOnStart callback.
func (a *App) Addr() net.Addr {
	return a.tcp.Addr()
}

// Stop stops accepting new connections. Pending connections are still served.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the server
// will still be working for a while
func (a *App) Stop() {
	a.tcp.Stop()
}

func (a *App) newTCPCallback(r router.Router) func(net.Conn) {
	return func(conn net.Conn) {
		log := a.log.With().
			Str("conn", uniuri.NewLen(connIDLength)).
			Str("remote", remoteAddr(conn)).
			Logger()
		client := transport.NewClient(conn, a.cfg.NET.ReadTimeout, make([]byte, a.cfg.NET.ReadBufferSize))
		if err := http.NewServer(r, log).HandleRequest(client); errors.Is(err, status.ErrCloseConnection) {
			log.Debug().Msg("closing the connection without a response")
		}
	}
}

func remoteAddr(conn net.Conn) string {
	if addr := conn.RemoteAddr(); addr != nil {
		return addr.String()
	}

	return ""
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
