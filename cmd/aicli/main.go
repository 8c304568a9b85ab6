// Package main is the entry point for the aicli CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/runoshun/aicli/internal/app"
	"github.com/runoshun/aicli/internal/cli"
	"github.com/runoshun/aicli/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	os.Exit(exitCode(run()))
}

func run() error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create dependency injection container
	container, err := app.New(cwd)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Interrupts cancel the running child instead of killing aicli outright
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.ExecuteContext(ctx)
}

// exitCode prints err and maps it to a process exit status.
// A failed child command propagates its own exit code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, err)

	var execErr *domain.ExecutionError
	if errors.As(err, &execErr) && execErr.Kind == domain.ErrorKindFailed && execErr.ExitCode > 0 {
		return execErr.ExitCode
	}
	return 1
}
