// Command rxdemo runs the demonstration stream: a fixed list of numbers is
// parsed, divided, filtered and delayed before being printed. With the HTTP
// server enabled, events posted to /events/:name flow through the same chain.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/kbukum/rxkit/bootstrap"
	"github.com/kbukum/rxkit/config"
	"github.com/kbukum/rxkit/eventsource"
	"github.com/kbukum/rxkit/logger"
	"github.com/kbukum/rxkit/observability"
	"github.com/kbukum/rxkit/observable"
	"github.com/kbukum/rxkit/server"
	"github.com/kbukum/rxkit/sink"
)

func main() {
	var cfg DemoConfig
	if err := config.LoadConfig("rxdemo", &cfg, config.WithEnvPrefix("RX_")); err != nil {
		fmt.Fprintf(os.Stderr, "rxdemo: %v\n", err)
		os.Exit(1)
	}

	app, err := bootstrap.NewApp(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rxdemo: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), app); err != nil && !stderrors.Is(err, context.Canceled) {
		app.Logger.Error("rxdemo failed", logger.Fields(logger.FieldError, err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, app *bootstrap.App[*DemoConfig]) error {
	cfg := app.Cfg

	shutdown, err := observability.Setup(ctx, &cfg.Observability)
	if err != nil {
		return err
	}
	app.OnStop(bootstrap.Hook(shutdown))

	metrics, err := observability.NewStreamMetrics(observability.Meter(cfg.Name))
	if err != nil {
		return err
	}
	tracer := observability.Tracer(cfg.Name)
	instrument := func(name string) observable.Observer {
		var o observable.Observer = sink.NewPrinter(app.Logger, name)
		o = sink.WithLogging(o, app.Logger, name)
		o = sink.WithTracing(o, tracer, name)
		return sink.WithMetrics(o, metrics, name)
	}

	loop := observable.NewLoop()
	hub := eventsource.NewHub()

	numbers := numberChain(observable.FromSlice(toAny(cfg.Stream.Values)), cfg.Stream, loop)
	events := numberChain(eventsource.Observable(hub), cfg.Stream, loop)
	for _, chain := range []*observable.Observable{numbers, events} {
		if err := chain.Err(); err != nil {
			return err
		}
	}
	app.Logger.Info("chain ready", logger.Fields(logger.FieldChain, numbers.String()))

	if cfg.Server.Enabled {
		srv := server.New(cfg.Server, app.Logger)
		eventsource.RegisterRoutes(srv.Engine(), hub)
		srv.RegisterHealth(cfg.Name, cfg.Version, hub)
		app.OnStart(srv.Start)
		app.OnStop(srv.Stop)
	}

	return app.RunTask(ctx, func(ctx context.Context) error {
		loopCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() { _ = loop.Run(loopCtx) }()

		subErr := make(chan error, 2)
		subscribe := func(chain *observable.Observable, name string) {
			loop.Post(func() {
				if err := chain.Subscribe(instrument(name)); err != nil {
					subErr <- err
				}
			})
		}
		subscribe(numbers, "values")

		if !cfg.Server.Enabled {
			if err := loop.Wait(ctx); err != nil {
				return err
			}
			select {
			case err := <-subErr:
				return err
			default:
				return nil
			}
		}

		// Events keep arriving until shutdown.
		subscribe(events, "events")
		select {
		case <-ctx.Done():
			return nil
		case err := <-subErr:
			return err
		}
	})
}
