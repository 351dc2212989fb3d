package clip

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrEmpty is returned when there is nothing to copy.
var ErrEmpty = errors.New("nothing to copy")

// CopiedMessage is the notification shown after a successful copy.
const CopiedMessage = "Copied to clipboard"

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(msg string)
}

// Copier writes text to a clipboard in the background and notifies on
// success. Failures are logged and returned but never touch the text.
type Copier struct {
	w        Writer
	notifier Notifier
	logger   *logrus.Entry
}

// NewCopier returns a Copier. notifier and logger may be nil.
func NewCopier(w Writer, notifier Notifier, logger *logrus.Entry) *Copier {
	return &Copier{w: w, notifier: notifier, logger: logger}
}

// CopyAsync copies text and delivers the outcome on the returned channel,
// which receives exactly one value and is then closed.
func (c *Copier) CopyAsync(ctx context.Context, text string) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- c.copy(ctx, text)
	}()
	return done
}

func (c *Copier) copy(ctx context.Context, text string) error {
	if text == "" {
		return ErrEmpty
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.w.WriteAll(text); err != nil {
		if c.logger != nil {
			c.logger.WithError(err).WithField("bytes", len(text)).Error("Could not copy text")
		}
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	if c.notifier != nil {
		c.notifier.Notify(CopiedMessage)
	}
	return nil
}
