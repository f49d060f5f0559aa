package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/agenthub/hub/cmd/server"
	"github.com/agenthub/hub/cmd/tenantcli"
)

var (
	// BuildInfo will be set by the build system
	BuildInfo = "dev"

	gracefulShutdownSec     int64
	gracefulShutdownMessage string
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hub",
		Short: "AgentHub - multi-tenant workshop platform",
		Long:  "AgentHub hosts per-organization workshops, user directories and content libraries behind one API.",
	}

	cmd.PersistentFlags().Int64Var(&gracefulShutdownSec, "graceful-shutdown", 1, "graceful shutdown seconds")
	cmd.PersistentFlags().StringVar(&gracefulShutdownMessage, "graceful-shutdown-message", "Graceful shutdown in %d seconds",
		"graceful shutdown message")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "AgentHub Version",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Println(BuildInfo)
				return nil
			},
		},
		server.Cmd(BuildInfo),
		tenantcli.Cmd(BuildInfo),
	)

	return cmd
}

// main is the entry point for the application. It is intentionally kept small
// because it is hard to test, which would lower test coverage.
func main() {
	ctx, cancelOnSignal := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer cancelOnSignal()

	err := rootCmd().ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// graceful shutdown so running goroutines may finish
	_, _ = fmt.Fprintln(os.Stderr, fmt.Sprintf(gracefulShutdownMessage, gracefulShutdownSec))
	time.Sleep(time.Duration(gracefulShutdownSec) * time.Second)
}
