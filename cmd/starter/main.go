// Package main is the entry point for the starter CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/opmodel/starter/internal/cmd"
	oerrors "github.com/opmodel/starter/internal/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Interrupts cancel the context; prompts and the clone observe it.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return oerrors.ExitSuccess
	}

	// Only print if the command layer hasn't already printed it
	var exitErr *oerrors.ExitError
	if !errors.As(err, &exitErr) || !exitErr.Printed {
		fmt.Fprintln(os.Stderr, err)
	}
	return oerrors.ExitCodeFromError(err)
}
