package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/minitrello/internal/cli"
)

func TestRootCommand_Subcommands(t *testing.T) {
	var names []string
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "card")
	assert.Contains(t, names, "board")
}

func TestRootCommand_DBFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("db")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	err := rootCmd.Args(rootCmd, []string{"bogus"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}
