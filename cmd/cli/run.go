package cli

import (
	"fmt"
	"strings"

	"github.com/kcaldas/termfolio/internal/di"
	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <command line...>",
		Short: "Run a single terminal command and print its output",
		Example: `  termfolio run neofetch
  termfolio run cat about.txt
  termfolio run ping example.com`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := di.InitializeLocalSession()
			if err != nil {
				return fmt.Errorf("failed to start session: %w", err)
			}
			defer sess.Close()

			return runOnce(cmd.Context(), strings.Join(args, " "), cmd.OutOrStdout(), sess)
		},
	}
}
