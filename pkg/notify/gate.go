package notify

import (
	"errors"

	"go.uber.org/zap"

	"minassist/pkg/kvstore"
)

// Permission is the capability state for emitting notifications.
type Permission string

const (
	// PermissionUnsupported means no delivery channel works on this host.
	PermissionUnsupported Permission = "unsupported"
	// PermissionDenied means the user refused notifications.
	PermissionDenied Permission = "denied"
	// PermissionDefault means the user has not decided yet.
	PermissionDefault Permission = "default"
	// PermissionGranted means notifications may be emitted.
	PermissionGranted Permission = "granted"
)

// ConsentKey is the slot holding the persisted user decision.
const ConsentKey = "notificationConsent"

var (
	// ErrUnsupported is returned when no notification channel is available;
	// reminder toggles must be disabled entirely.
	ErrUnsupported = errors.New("notifications are not supported on this host")

	// ErrDenied is returned when the user has refused notifications. The
	// decision cannot be overridden programmatically; the user must run
	// "notifications reset" first.
	ErrDenied = errors.New("notification permission was denied")
)

// Gate mediates the permission prompt and answers capability checks. Status
// is recomputed on every call so an externally revoked decision is observed
// on the next sweep tick.
type Gate struct {
	kv       kvstore.Store
	notifier Notifier
	logger   *zap.Logger
}

// NewGate returns a permission gate over the given channel and store.
func NewGate(kv kvstore.Store, notifier Notifier, logger *zap.Logger) *Gate {
	return &Gate{kv: kv, notifier: notifier, logger: logger}
}

// Status returns the current capability state. Never cached by callers: the
// sweep re-checks on every tick.
func (g *Gate) Status() Permission {
	if g.notifier == nil || !g.notifier.Available() {
		return PermissionUnsupported
	}

	var consent string
	ok, err := g.kv.Read(ConsentKey, &consent)
	if err != nil {
		g.logger.Warn("Failed to read notification consent", zap.Error(err))
		return PermissionDefault
	}
	if !ok {
		return PermissionDefault
	}

	switch Permission(consent) {
	case PermissionGranted:
		return PermissionGranted
	case PermissionDenied:
		return PermissionDenied
	default:
		return PermissionDefault
	}
}

// Request runs the one-shot permission prompt. It must only be called from a
// direct user gesture, never from the background sweep. prompt is the
// user-interaction callback; it is not invoked when the state is already
// decided.
func (g *Gate) Request(prompt func() bool) (Permission, error) {
	switch g.Status() {
	case PermissionUnsupported:
		return PermissionUnsupported, ErrUnsupported
	case PermissionDenied:
		return PermissionDenied, ErrDenied
	case PermissionGranted:
		return PermissionGranted, nil
	}

	decision := PermissionDenied
	if prompt() {
		decision = PermissionGranted
	}

	if err := g.kv.Write(ConsentKey, string(decision)); err != nil {
		return PermissionDefault, err
	}

	g.logger.Info("Notification permission decided", zap.String("state", string(decision)))
	return decision, nil
}

// Deny records a refusal without prompting. Used by the explicit disable
// action; the sweep treats it the same as a prompted "no".
func (g *Gate) Deny() error {
	if err := g.kv.Write(ConsentKey, string(PermissionDenied)); err != nil {
		return err
	}
	g.logger.Info("Notification permission denied")
	return nil
}

// Reset clears a previous decision so the user can be prompted again.
func (g *Gate) Reset() error {
	return g.kv.Write(ConsentKey, "")
}
