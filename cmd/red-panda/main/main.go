package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	redpanda "github.com/bjk2k/red-panda/cmd/red-panda"
	"github.com/bjk2k/red-panda/pkg/ui/styles"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := redpanda.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
