package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbukum/unic/bootstrap"
	"github.com/kbukum/unic/collapse"
	"github.com/kbukum/unic/component"
	"github.com/kbukum/unic/config"
	"github.com/kbukum/unic/errors"
	"github.com/kbukum/unic/lineio"
	"github.com/kbukum/unic/logger"
	"github.com/kbukum/unic/observability"
	"github.com/kbukum/unic/version"
)

const meterName = "github.com/kbukum/unic"

// streams are the standard streams of one invocation.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func newRootCmd(s streams) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "unic [INPUT [OUTPUT]]",
		Short: "Collapse adjacent repeated lines",
		Long: `unic reads INPUT ("-" or omitted for standard input) and writes each
line once per run of adjacent equal lines to OUTPUT (standard output when
omitted). Lines compare equal when they match after removing a trailing
newline.`,
		Args:          cobra.MaximumNArgs(2),
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnic(cmd, args, configFile, s)
		},
	}
	cmd.SetIn(s.in)
	cmd.SetOut(s.out)
	cmd.SetErr(s.err)
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := cmd.Flags()
	flags.BoolP("count", "c", false, "prefix lines by the number of occurrences")
	flags.StringVar(&configFile, "config", "", "config file (default ./unic.yml, ./config/unic.yml or $XDG_CONFIG_HOME/unic/config.yml)")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error, disabled")
	flags.String("log-format", "", "log format: console, pretty, json")
	flags.String("telemetry-endpoint", "", "OTLP/HTTP endpoint host:port for metrics and traces")

	return cmd
}

func runUnic(cmd *cobra.Command, args []string, configFile string, s streams) error {
	flags := cmd.Flags()
	opts := []config.LoaderOption{
		config.WithFlag("show_count", flags.Lookup("count")),
		config.WithFlag("logging.level", flags.Lookup("log-level")),
		config.WithFlag("logging.format", flags.Lookup("log-format")),
		config.WithFlag("telemetry.endpoint", flags.Lookup("telemetry-endpoint")),
	}
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	if len(args) > 0 {
		opts = append(opts, config.WithOverride("input", args[0]))
	}
	if len(args) > 1 {
		opts = append(opts, config.WithOverride("output", args[1]))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}

	logOut := s.err
	if cfg.Logging.Output == "stdout" {
		logOut = s.out
	}
	app, err := bootstrap.NewApp(cfg,
		bootstrap.WithName(config.AppName),
		bootstrap.WithVersion(version.Get().Short()),
		bootstrap.WithLogger(logger.NewWithWriter(&cfg.Logging, config.AppName, logOut)),
	)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	shutdown, err := observability.Init(ctx, cfg.Telemetry, config.AppName, app.Version)
	if err != nil {
		return errors.InvalidConfig("telemetry", err.Error()).WithCause(err)
	}
	// Export failures are logged, never returned.
	app.OnStop(func(ctx context.Context) error {
		if err := shutdown(ctx); err != nil {
			app.Logger.Warn("telemetry shutdown failed", logger.ErrorFields("telemetry shutdown", err))
		}
		return nil
	})

	metrics, err := observability.NewMetrics(observability.Meter(meterName))
	if err != nil {
		return errors.Internal(err)
	}

	source := lineio.NewSourceComponent(cfg.Input, s.in)
	sink := lineio.NewSinkComponent(cfg.Output, s.out)
	for _, c := range []component.Component{source, sink} {
		if err := app.RegisterComponent(c); err != nil {
			return errors.Internal(err)
		}
	}

	proc := collapse.New(
		collapse.WithShowCount(cfg.ShowCount),
		collapse.WithMetrics(metrics),
		collapse.WithLogger(logger.Get(app.Name).WithComponent("collapse")),
	)
	return app.RunTask(ctx, func(ctx context.Context) error {
		_, err := proc.Process(ctx, source.Source(), sink.Sink())
		return err
	})
}
