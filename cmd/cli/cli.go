package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/kcaldas/termfolio/pkg/version"
)

// Execute runs the CLI with all commands
func Execute(ctx context.Context) {
	RootCmd.SetVersionTemplate(version.GetInfo().String() + "\n")
	if err := RootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
