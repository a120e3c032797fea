// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/minitrello/internal/cli"
)

// Func runs one command against a ready CLI and returns the value to print
type Func func(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)

// Arguments captures positional arguments and the command being run
type Arguments struct {
	Args []string
	cmd  *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Bool returns the value of a boolean flag, false when it is not defined
func (a *Arguments) Bool(name string) bool {
	v, err := a.cmd.Flags().GetBool(name)
	return err == nil && v
}

// AddOutputFlags registers the --json and --quiet flags shared by every command
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

// Formatter builds the output formatter for cmd from its --json and --quiet flags
func Formatter(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(fn Func) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		formatter := Formatter(cmd)

		c, err := resolveCLI(ctx, cmd)
		if err != nil {
			return report(formatter, "INITIALIZATION_ERROR", cli.ExitError, err)
		}
		if c.owned {
			defer func() {
				if err := c.Close(); err != nil {
					slog.Error("error closing CLI", "error", err)
				}
			}()
		}

		result, err := fn(ctx, c.CLI, &Arguments{Args: args, cmd: cmd})
		if err != nil {
			code, errCode := cli.Classify(err)
			return report(formatter, errCode, code, err)
		}

		// Common output formatting
		return formatter.Success(result)
	}
}

type resolvedCLI struct {
	*cli.CLI
	owned bool
}

// resolveCLI uses the CLI carried by the context, or opens one from the --db flag
func resolveCLI(ctx context.Context, cmd *cobra.Command) (resolvedCLI, error) {
	if c, ok := cli.FromContext(ctx); ok {
		return resolvedCLI{CLI: c}, nil
	}
	dbPath := ""
	if f := cmd.Flag("db"); f != nil {
		dbPath = f.Value.String()
	}
	c, err := cli.NewCLI(ctx, dbPath)
	if err != nil {
		return resolvedCLI{}, err
	}
	return resolvedCLI{CLI: c, owned: true}, nil
}

// report prints err through the formatter and marks it so main does not print it again
func report(formatter *cli.OutputFormatter, errCode string, exitCode int, err error) error {
	if fmtErr := formatter.ErrorWithSuggestion(errCode, err.Error(), cli.Suggestion(errCode)); fmtErr != nil {
		slog.Error("error formatting error message", "error", fmtErr)
	}
	return &cli.ExitErr{Code: exitCode, Err: err, Reported: true}
}

// ExactArgs is cobra.ExactArgs with a usage exit code
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return cli.Usagef("%s accepts %d arg(s), received %d", cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}

// MinimumArgs is cobra.MinimumNArgs with a usage exit code
func MinimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return cli.Usagef("%s requires at least %d arg(s), received %d", cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}

// NoArgs is cobra.NoArgs with a usage exit code
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return cli.Usagef("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}
