package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	appcli "github.com/thenoetrevino/minitrello/internal/cli"
)

// Output holds what a command wrote
type Output struct {
	Stdout string
	Stderr string
}

// ExecuteCLICommand executes a CLI command against a test CLI instance
// and returns its stdout. The instance is injected through the context so
// commands never open the real database.
func ExecuteCLICommand(t *testing.T, c *appcli.CLI, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	out, err := ExecuteCLICommandWithInput(t, c, cmd, args, "")
	return out.Stdout, err
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin set to input
func ExecuteCLICommandWithInput(t *testing.T, c *appcli.CLI, cmd *cobra.Command, args []string, input string) (Output, error) {
	t.Helper()

	if c == nil {
		t.Fatal("CLI cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(input))

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(appcli.WithCLI(context.Background(), c))
	return Output{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
