package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	dig_container "github.com/trezcool/ecoquest/apps/api/di/dig"
	echoapi "github.com/trezcool/ecoquest/apps/api/echo"
	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/session"
)

func main() {
	c := dig_container.New()

	must(c.Invoke(func(
		conf *core.Config,
		zl *zap.Logger,
		logger core.Logger,
		sessions *session.Registry,
		janitor *session.Janitor,
		server *echoapi.Server,
	) {
		defer func() { _ = zl.Sync() }()

		// =========================================================================
		// Initialize App

		logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
		defer logger.Info("Application stopped")
		defer sessions.CloseAll()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		g, ctx := errgroup.WithContext(ctx)

		// =========================================================================
		// Start Debug Service
		//
		// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
		// /debug/vars - Added to the default mux by importing the expvar package.

		// Expose important info under /debug/vars.
		expvar.NewString("build").Set(conf.Build)
		expvar.NewString("env").Set(conf.Env)
		expvar.Publish("sessions", expvar.Func(func() interface{} { return sessions.Len() }))

		debug := &http.Server{Addr: conf.Server.DebugAddress, Handler: http.DefaultServeMux}
		g.Go(func() error {
			if err := debug.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
			}
			return nil
		})

		// =========================================================================
		// Start Session Janitor

		g.Go(func() error {
			if err := janitor.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return errors.Wrap(err, "session janitor")
			}
			return nil
		})

		// =========================================================================
		// Start API Service

		go server.Start()

		// =========================================================================
		// Shutdown

		g.Go(func() error {
			defer cancel()

			var serverErr error
			select {
			case err := <-server.Errors():
				serverErr = errors.Wrap(err, "server error")
			case sig := <-server.ShutdownSignal():
				logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))
			case <-ctx.Done():
				logger.Info("Start shutdown...")
			}

			// give outstanding requests a deadline for completion
			sctx, scancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
			defer scancel()
			_ = debug.Shutdown(sctx)
			if serverErr != nil {
				return serverErr
			}

			// asking listener to shut down and shed load
			if err := server.Shutdown(sctx); err != nil {
				logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

				if err = server.Close(); err != nil {
					return errors.Wrap(err, "could not force stop server")
				}
			}
			return nil
		})

		if err := g.Wait(); err != nil {
			logger.Fatal(err.Error(), err)
		}
	}))
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
