// Command statectl drives the application state machine from text
// commands, one per line, and prints the resulting state.
//
//	statectl -trace <<EOF
//	InGame
//	push Paused
//	pop
//	EOF
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/younwookim/avoidtrouble/internal/application/replay"
	"github.com/younwookim/avoidtrouble/internal/application/state"
	"github.com/younwookim/avoidtrouble/internal/application/system"
	"github.com/younwookim/avoidtrouble/internal/infrastructure/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns 0 once every command has been processed, 2 for bad flags and
// 1 when the input cannot be read.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("statectl", flag.ContinueOnError)
	fset.SetOutput(stderr)
	initialName := fset.String("initial", "MainMenu", "Starting state")
	enter := fset.Bool("enter", false, "Fire the initial state's enter hooks on start")
	trace := fset.Bool("trace", false, "Print enter/exit/resume hook calls")
	replayFile := fset.String("replay", "", "Read commands from a recorded replay file instead of stdin")
	logLevel := fset.String("log-level", "warn", "Log level (debug, info, warn, error)")
	if err := fset.Parse(args); err != nil {
		return 2
	}

	logger := logging.New(stderr, *logLevel)

	var replayer *replay.Replayer
	if *replayFile != "" {
		data, err := replay.LoadReplay(*replayFile)
		if err != nil {
			fmt.Fprintf(stderr, "statectl: %v\n", err)
			return 2
		}
		replayer = replay.NewReplayer(*data)
		*initialName = replayer.Initial()
	}

	initial, err := state.ParseAppState(*initialName)
	if err != nil {
		fmt.Fprintf(stderr, "statectl: -initial: %v\n", err)
		return 2
	}

	var opts []state.Option[state.AppState]
	if *enter {
		opts = append(opts, state.WithInitialEnter[state.AppState]())
	}
	if *trace {
		for _, s := range state.AllStates() {
			opts = append(opts, state.WithHooks(s, traceHooks(stdout, s)))
		}
	}
	m, err := state.NewAppMachine(initial, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "statectl: %v\n", err)
		return 2
	}

	ctx := context.Background()
	if err := m.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "statectl: %v\n", err)
		return 2
	}
	logger.Debug("started", "state", m.Current())

	if replayer != nil {
		for {
			frame, intent, ok, err := replayer.Next()
			if !ok {
				break
			}
			if err != nil {
				fmt.Fprintf(stdout, "error: %s: %v\n", parseKind(err), err)
				continue
			}
			logger.Debug("replay", "frame", frame, "cmd", intent.String())
			apply(ctx, stdout, m, intent)
		}
		return 0
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.EqualFold(line, "current") {
			fmt.Fprintf(stdout, "current: %s\n", m.Current())
			continue
		}
		intent, err := system.ParseIntent(line)
		if err != nil {
			fmt.Fprintf(stdout, "error: %s: %v\n", parseKind(err), err)
			continue
		}
		apply(ctx, stdout, m, intent)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "statectl: read input: %v\n", err)
		return 1
	}
	return 0
}

func apply(ctx context.Context, out io.Writer, m *state.Machine[state.AppState], intent system.Intent) {
	cur, err := intent.Apply(ctx, m)
	if err != nil {
		fmt.Fprintf(out, "error: %s: %v\n", state.Kind(err), err)
		return
	}
	fmt.Fprintf(out, "current: %s\n", cur)
}

// parseKind names a command that could not be parsed
func parseKind(err error) string {
	if errors.Is(err, system.ErrUnknownCommand) {
		return "ParseError"
	}
	return state.Kind(err)
}

func traceHooks(out io.Writer, s state.AppState) state.Hooks {
	return state.Hooks{
		OnEnter:  func(context.Context) { fmt.Fprintf(out, "enter %s\n", s) },
		OnExit:   func(context.Context) { fmt.Fprintf(out, "exit %s\n", s) },
		OnResume: func(context.Context) { fmt.Fprintf(out, "resume %s\n", s) },
	}
}
