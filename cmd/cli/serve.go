package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/kcaldas/termfolio/internal/di"
	"github.com/kcaldas/termfolio/pkg/config"
	"github.com/kcaldas/termfolio/pkg/logging"
	"github.com/kcaldas/termfolio/pkg/preferences"
	"github.com/spf13/cobra"
)

const (
	defaultListen      = ":8080"
	defaultSessionIdle = 30 * time.Minute
	shutdownTimeout    = 5 * time.Second
)

func newServeCommand() *cobra.Command {
	var listen, dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve terminal sessions over an HTTP JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), config.NewConfigManager(), listen, dbPath)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "address to listen on (default "+defaultListen+")")
	cmd.Flags().StringVar(&dbPath, "db", "", "bbolt database for session preferences (default ~/.termfolio/termfolio.db)")

	return cmd
}

func runServe(ctx context.Context, cfg config.Manager, listen, dbPath string) error {
	logger := logging.NewComponentLogger("serve")

	if listen == "" {
		listen = cfg.GetStringWithDefault(config.EnvListen, defaultListen)
	}
	if dbPath == "" {
		dbPath = cfg.GetStringWithDefault(config.EnvDB, "")
	}
	if dbPath == "" {
		dir, err := config.EnsureHomeDir()
		if err != nil {
			return err
		}
		dbPath = filepath.Join(dir, "termfolio.db")
	}
	idle := cfg.GetDurationWithDefault(config.EnvSessionIdle, defaultSessionIdle)

	db, err := preferences.OpenBolt(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", dbPath, err)
	}
	defer db.Close()

	manager, err := di.InitializeSessionManager(db)
	if err != nil {
		return err
	}
	defer manager.CloseAll()

	handler, err := di.InitializeServer(manager)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go manager.Run(ctx, idle, sweepInterval(idle))

	srv := &http.Server{
		Addr:              listen,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "address", listen, "db", dbPath, "session_idle", idle)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

func sweepInterval(idle time.Duration) time.Duration {
	interval := idle / 4
	if interval < time.Second {
		return time.Second
	}
	if interval > time.Minute {
		return time.Minute
	}
	return interval
}
