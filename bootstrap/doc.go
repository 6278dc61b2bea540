// Package bootstrap runs one unic invocation with uniform lifecycle
// management.
//
// NewApp applies config defaults, validates, initializes the logger and
// assigns a correlation id. RunTask starts registered components in order,
// runs the task under a context canceled on SIGINT/SIGTERM, then stops the
// components in reverse order.
//
//	app, err := bootstrap.NewApp(cfg, bootstrap.WithName("unic"))
//	_ = app.RegisterComponent(source)
//	_ = app.RegisterComponent(sink)
//	err = app.RunTask(ctx, func(ctx context.Context) error {
//	    _, err := processor.Process(ctx, source.Source(), sink.Sink())
//	    return err
//	})
package bootstrap
