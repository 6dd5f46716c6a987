package notify

import (
	"context"
	"fmt"
	"os/exec"

	"go.uber.org/zap"
)

// Desktop delivers notifications through the freedesktop notify-send tool.
type Desktop struct {
	logger *zap.Logger
}

// NewDesktop returns a desktop notification channel.
func NewDesktop(logger *zap.Logger) *Desktop {
	return &Desktop{logger: logger}
}

// Available reports whether notify-send is on PATH.
func (d *Desktop) Available() bool {
	_, err := exec.LookPath("notify-send")
	return err == nil
}

// Send shells out to notify-send.
func (d *Desktop) Send(ctx context.Context, n Notification) error {
	args := []string{}
	if n.Icon != "" {
		args = append(args, "--icon", n.Icon)
	}
	args = append(args, n.Title, n.Body)

	cmd := exec.CommandContext(ctx, "notify-send", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("notify-send failed: %w (output: %s)", err, out)
	}

	d.logger.Debug("Desktop notification sent", zap.String("title", n.Title))
	return nil
}
