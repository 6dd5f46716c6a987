// Package notify delivers user notifications and mediates the permission
// gate that decides whether the reminder sweep may emit them at all.
package notify

import "context"

// Notification is a single user-facing message. The icon is advisory; emitter
// channels may ignore it.
type Notification struct {
	Title string
	Body  string
	Icon  string
}

// Notifier is a delivery channel for notifications.
type Notifier interface {
	// Available reports whether this channel can deliver on the current
	// host. An unavailable channel makes the capability Unsupported.
	Available() bool

	// Send delivers the notification. Delivery is best effort; a failure
	// must be treated as a dropped notification, not retried.
	Send(ctx context.Context, n Notification) error
}

// Discard is a Notifier that drops everything. Used on hosts with no working
// channel so the gate reports Unsupported instead of failing.
type Discard struct{}

func (Discard) Available() bool                          { return false }
func (Discard) Send(context.Context, Notification) error { return nil }
