package tui

import (
	"context"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/termfolio/pkg/config"
	"github.com/kcaldas/termfolio/pkg/events"
	"github.com/kcaldas/termfolio/pkg/session"
)

// Run opens the full screen UI on sess. Settings are read from the termfolio home directory.
func Run(ctx context.Context, sess *session.Session, subscriber events.Subscriber) error {
	dir, err := config.EnsureHomeDir()
	if err != nil {
		return err
	}

	app, err := NewApp(sess, subscriber, dir)
	if err != nil {
		return err
	}
	defer app.Close()

	err = app.Run(ctx)
	// Handle gocui.ErrQuit as successful exit, not an error
	if err == gocui.ErrQuit {
		return nil
	}
	return err
}
