package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-intent/pkg/log"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(log.NewNop()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "intentctl:", err)
		os.Exit(1)
	}
}

func newRootCmd(logger log.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "intentctl",
		Short:         "Inspect and exercise the intent classifier",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newPromptCmd(logger))
	root.AddCommand(newDetectCmd(logger))

	return root
}
