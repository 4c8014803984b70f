// Package main is the entry point for the recur CLI.
package main

import (
	"fmt"
	"os"

	"github.com/runoshun/recur/internal/app"
	"github.com/runoshun/recur/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Create dependency injection container
	container, err := app.New(cli.ConfigPathFromArgs(os.Args[1:]))
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
