package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/peternagy/confirm/internal/clifmt"
	"github.com/peternagy/confirm/internal/config"
	"github.com/peternagy/confirm/internal/core"
	"github.com/peternagy/confirm/internal/debug"
	"github.com/peternagy/confirm/internal/request"
)

const programName = "confirm"

const argsTerminator = "--"

// Exit codes
const (
	exitAffirmed = 0
	exitDeclined = 1
)

// exitError carries a non-zero exit status out of the command.
type exitError struct {
	code      int
	message   string // printed to stderr when non-empty
	showUsage bool
}

func (e *exitError) Error() string {
	if e.message == "" {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.message
}

var errDeclined = &exitError{code: exitDeclined}

// run executes one invocation and returns the process exit status.
// opts are passed to the agent after the defaults, so tests can swap the
// platform dialog and authenticator.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv config.Getenv, opts ...core.Option) int {
	cmd := newRootCommand(stdout, stderr, getenv, opts)
	// The leading "--" stops cobra's command lookup, so tokens such as
	// __complete or completion never reach its built-in subcommands.
	cmd.SetArgs(append([]string{argsTerminator}, args...))

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitAffirmed
	}

	var exitErr *exitError
	if !errors.As(err, &exitErr) {
		exitErr = &exitError{code: exitDeclined, message: err.Error()}
	}
	if exitErr.message != "" {
		fmt.Fprintln(stderr, clifmt.For(stderr, clifmt.Getenv(getenv)).Error("Error: "+exitErr.message))
	}
	if exitErr.showUsage {
		fmt.Fprint(stdout, request.Usage(programName))
	}
	return exitErr.code
}

func newRootCommand(stdout, stderr io.Writer, getenv config.Getenv, opts []core.Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   programName + " [--icon <path>] [--auth] [--help] <message...>",
		Short: "Ask the user to confirm an action",
		// The request parser owns every token: unknown flags are message text.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == argsTerminator {
				args = args[1:]
			}
			return confirm(cmd.Context(), args, stdout, stderr, getenv, opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func confirm(ctx context.Context, args []string, stdout, stderr io.Writer, getenv config.Getenv, opts []core.Option) error {
	req, err := request.Parse(args)
	if errors.Is(err, request.ErrHelp) {
		fmt.Fprint(stdout, request.Usage(programName))
		return nil
	}
	var usageErr *request.UsageError
	if errors.As(err, &usageErr) {
		return &exitError{code: exitDeclined, message: usageErr.Message, showUsage: true}
	}
	if err != nil {
		return err
	}

	cfg, err := config.Load(getenv)
	if err != nil {
		return &exitError{code: exitDeclined, message: err.Error()}
	}
	debug.Init(stderr, cfg.LogLevel, cfg.LogFormat)
	debug.LogParse("request parsed", map[string]any{
		"require_auth": req.RequireAuth,
		"icon":         req.IconPath,
		"tokens":       len(args),
	})

	if req.IconPath == "" && cfg.Icon != "" {
		req.IconPath = cfg.Icon
		debug.LogConfig("using configured icon", map[string]any{"path": cfg.Icon})
	}

	agentOpts := append([]core.Option{core.WithDiagnostics(stderr), core.WithEnv(getenv)}, opts...)
	if !core.New(req, agentOpts...).Decide(ctx) {
		return errDeclined
	}
	return nil
}
