// sbmath - engine math toolkit
// Audits the fast math routines, inspects glTF transforms and shows a
// spring-animated orientation gizmo in the terminal.
//
// Usage:
//
//	sbmath [-config file.yaml] [-log-level level] [-log-format format] <command> [args]
//
// Commands:
//
//	accuracy [-samples N]               Measure the 16-bit routines against float64 math
//	inspect [-precision P] model.glb    Print world transforms and angles of every node
//	view [-fps N] [-png out.png] [-angles p,y,r] [model.glb]
//	                                    Orientation gizmo (arrows: pitch/yaw, Q/E: roll,
//	                                    Space: spin, R: reset, Esc: quit)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/taigrr/sugarbomb/internal/config"
	"github.com/taigrr/sugarbomb/internal/logging"
	"go.uber.org/zap"
)

// errUsage marks bad command lines; the usage text has already been shown.
var errUsage = errors.New("usage")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, env *env, args []string) error
}

var commands = []command{
	{"accuracy", "measure the 16-bit routines against float64 math", runAccuracy},
	{"inspect", "print node transforms of a glTF scene", runInspect},
	{"view", "show the orientation gizmo in the terminal", runView},
}

// env carries what every command needs.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sbmath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "Path to a YAML config file")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error (default info)")
	logFormat := fs.String("log-format", "", "Log format: console or json (default console)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "sbmath - engine math toolkit\n\n")
		fmt.Fprintf(stderr, "Usage: sbmath [options] <command> [args]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nCommands:\n")
		for _, c := range commands {
			fmt.Fprintf(stderr, "  %-10s %s\n", c.name, c.summary)
		}
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return errUsage
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			return err
		}
	}
	cfg.Resolve(config.Flags{LogLevel: *logLevel, LogFormat: *logFormat})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	name := fs.Arg(0)
	for _, c := range commands {
		if c.name != name {
			continue
		}
		logger.Debug("running command", zap.String("command", name), zap.Strings("args", fs.Args()[1:]))
		return c.run(ctx, &env{cfg: cfg, logger: logger, stdout: stdout, stderr: stderr}, fs.Args()[1:])
	}

	fmt.Fprintf(stderr, "unknown command %q\n\n", name)
	fs.Usage()
	return errUsage
}

// parseCommandFlags parses a subcommand's flags, mapping -h to a nil error
// with done set.
func parseCommandFlags(fs *flag.FlagSet, args []string) (done bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return true, errUsage
	}
	return false, nil
}
