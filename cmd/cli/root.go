package cli

import (
	"fmt"
	"os"

	"github.com/kcaldas/termfolio/cmd/tui"
	"github.com/kcaldas/termfolio/internal/di"
	"github.com/kcaldas/termfolio/pkg/config"
	"github.com/kcaldas/termfolio/pkg/logging"
	"github.com/kcaldas/termfolio/pkg/version"
	"github.com/spf13/cobra"
)

const debugLogFile = "termfolio-debug.log"

var (
	// Global flags
	verbose     bool
	quiet       bool
	catalogPath string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "Portfolio in a fake terminal",
	Long: `termfolio presents a personal portfolio as a simulated shell session.

Started from a terminal it opens the full screen UI. With piped input it
reads one command per line and prints the output.`,
	Version:       version.GetInfo().Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}

		if catalogPath != "" {
			if err := os.Setenv(config.EnvCatalog, catalogPath); err != nil {
				return fmt.Errorf("failed to set catalog override: %w", err)
			}
		}

		logging.SetGlobalLogger(selectLogger(cmd))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := di.InitializeLocalSession()
		if err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}
		defer sess.Close()

		if hasTerminalInput() {
			return tui.Run(cmd.Context(), sess, di.ProvideSubscriber())
		}
		return runREPL(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), sess)
	},
}

// selectLogger keeps the full screen UI free of log lines by writing to the debug file
func selectLogger(cmd *cobra.Command) logging.Logger {
	switch {
	case !cmd.HasParent() && hasTerminalInput():
		return logging.NewFileLoggerFromEnv(debugLogFile)
	case quiet:
		return logging.NewQuietLogger()
	case verbose:
		return logging.NewVerboseLogger()
	default:
		return logging.NewDefaultLogger()
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug level)")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (errors only)")
	RootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML file replacing the built-in portfolio content")

	addCommands()
}

// addCommands adds all CLI subcommands to the root command
func addCommands() {
	RootCmd.AddCommand(newRunCommand())
	RootCmd.AddCommand(newServeCommand())
	RootCmd.AddCommand(newVersionCommand())
}
