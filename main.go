package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/minitrello/cmd"
	"github.com/thenoetrevino/minitrello/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	// Command handlers print their own errors through the output formatter
	var exitErr *cli.ExitErr
	if !errors.As(err, &exitErr) || !exitErr.Reported {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
