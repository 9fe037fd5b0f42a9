package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AntonioJCosta/stepshell/internal/adapters/oscommand"
	"github.com/AntonioJCosta/stepshell/internal/adapters/stepfile"
	"github.com/AntonioJCosta/stepshell/internal/handlers/cli"
	"github.com/AntonioJCosta/stepshell/internal/handlers/ui"
)

// Version is set at build time
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(Version, cli.Dependencies{
		Stdout:              os.Stdout,
		Stderr:              os.Stderr,
		NewExecutor:         oscommand.NewOSProcessExecutor,
		NewStepFileProvider: stepfile.NewYAMLProvider,
		Environ:             os.Environ,
	})

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
	os.Exit(1)
}
