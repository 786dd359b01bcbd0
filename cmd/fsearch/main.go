package main

import (
	"fmt"
	"io"
	"os"

	"github.com/harrison/fsearch/internal/cmd"
	"github.com/harrison/fsearch/internal/models"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and maps its error to a process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := cmd.NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return models.ExitCode(err)
	}
	return models.ExitOK
}
