package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kcaldas/termfolio/pkg/logging"
	"github.com/kcaldas/termfolio/pkg/session"
)

const drainTimeout = 5 * time.Second

// runREPL submits every input line and waits for timed output once input ends
func runREPL(ctx context.Context, in io.Reader, out io.Writer, sess *session.Session) error {
	printer := NewPrinter(out, sess.Prompt())
	detach := printer.Attach(sess)
	defer detach()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		sess.SubmitCommand(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return drain(ctx, sess)
}

// runOnce submits one line and waits for its timed output
func runOnce(ctx context.Context, line string, out io.Writer, sess *session.Session) error {
	printer := NewPrinter(out, sess.Prompt())
	detach := printer.Attach(sess)
	defer detach()

	sess.SubmitCommand(line)
	return drain(ctx, sess)
}

func drain(ctx context.Context, sess *session.Session) error {
	if sess.PendingOutput() == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, drainTimeout)
	defer cancel()

	if err := sess.Wait(ctx); err != nil {
		logging.Warn("timed output did not finish", "pending", sess.PendingOutput(), "error", err)
		return nil
	}
	return nil
}
