package main

import (
	"context"
	"fmt"
	"io"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/langtour/internal/catalog"
	"go.llib.dev/langtour/internal/person"
	"go.llib.dev/langtour/internal/tour"
)

// Command runs the tour. Without flags it runs every demo against an in-memory catalog.
type Command struct {
	Only    string `flag:"only" enum:"traits,enumerate,zip,tuple,closures,ifelse,filtermap,hashmap,hashset," desc:"run a single demo"`
	Catalog string `flag:"catalog" env:"LANGTOUR_CATALOG" desc:"bolt database file for the hashmap and hashset demos"`
	Verbose bool   `flag:"verbose" desc:"log demo progress to stderr"`

	// Clock is injected by tests; nil means the system clock.
	Clock person.Clock
	// Backend is injected by tests; it is used when no bolt catalog is given.
	Backend catalog.Backend
}

func (cmd Command) Summary() string { return "walks through a set of small language feature demos" }

// ServeCLI prints a failure to stderr and exits with cli.ExitCodeError.
// The failing demo itself is logged by tour.Run.
func (cmd Command) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	logger := &logging.Logger{Out: logOut(w), Level: logging.LevelInfo}
	if cmd.Verbose {
		logger.Level = logging.LevelDebug
	}
	if err := cmd.run(r.Context(), w, logger); err != nil {
		w.ExitCode(cli.ExitCodeError)
		fmt.Fprintln(errOut(w), err.Error())
	}
}

func (cmd Command) run(ctx context.Context, w io.Writer, logger *logging.Logger) (rErr error) {
	t := tour.Tour{Clock: cmd.Clock, Catalog: cmd.Backend, Logger: logger}
	if cmd.Catalog != "" {
		db, err := catalog.OpenBolt(cmd.Catalog)
		if err != nil {
			return err
		}
		defer errorkit.Finish(&rErr, db.Close)
		t.Catalog = db
	}
	var names []string
	if cmd.Only != "" {
		names = append(names, cmd.Only)
	}
	return t.Run(ctx, w, names...)
}

func stderr(w cli.ResponseWriter) (io.Writer, bool) {
	if ew, ok := w.(cli.ErrorWriter); ok && ew.Stderr() != nil {
		return ew.Stderr(), true
	}
	return nil, false
}

// logOut keeps stdout clean for the demo output.
func logOut(w cli.ResponseWriter) io.Writer {
	if out, ok := stderr(w); ok {
		return out
	}
	return io.Discard
}

func errOut(w cli.ResponseWriter) io.Writer {
	if out, ok := stderr(w); ok {
		return out
	}
	return w
}
