// Package bootstrap runs rxkit programs with a uniform lifecycle: validated
// typed configuration, logger initialization, start and stop hooks, and
// graceful shutdown on SIGINT or SIGTERM.
//
//	app, err := bootstrap.NewApp(&cfg)
//	app.OnStart(startServer)
//	app.OnStop(stopServer)
//	err = app.RunTask(ctx, func(ctx context.Context) error {
//	    return runStreams(ctx)
//	})
package bootstrap
