package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Parse flags first to get verbose for GOMAXPROCS logging
	flags, _, err := parseConvertFlags(os.Args[1:], io.Discard)
	verbose := err == nil && flags.common.verbose

	undo := configureMaxProcs(os.Stderr, verbose)
	code := runMain(os.Args, DefaultEnv())
	undo()
	os.Exit(code)
}

// runMain runs the CLI and returns the process exit code.
// args[0] is the program name, as in os.Args.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "chat2pdf %s\n", Version)
		return ExitSuccess
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota and returns
// the function restoring the previous value.
func configureMaxProcs(w io.Writer, verbose bool) func() {
	logf := func(string, ...interface{}) {}
	if verbose {
		logf = func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	undo, _ := maxprocs.Set(maxprocs.Logger(logf))
	if undo == nil {
		return func() {}
	}
	return undo
}
