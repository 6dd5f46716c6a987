package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"minassist/internal/config"
	"minassist/pkg/core/services"
	"minassist/pkg/db"
	"minassist/pkg/kvstore"
	"minassist/pkg/notify"
	"minassist/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg      *config.Config
	store    *kvstore.SQLite
	database *db.DB
	notifier notify.Notifier
	gate     *notify.Gate
	logger   *zap.Logger
}

var (
	configPath string
	verbose    bool
	app        *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "minassist",
		Short: "Ministry assistant - schedule activities, duties and service time",
		Long: `A personal scheduling and activity-logging tool for ministry work:
field activities, rotating assignments and duties, and service-time logging
against a monthly goal, with reminder notifications.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.store != nil {
					app.store.Close()
				}
				if app.logger != nil {
					app.logger.Sync()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./minassist.yaml or ~/.minassist/minassist.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(activityCmd())
	rootCmd.AddCommand(assignmentCmd())
	rootCmd.AddCommand(dutyCmd())
	rootCmd.AddCommand(serviceCmd())
	rootCmd.AddCommand(notificationsCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(proposalsCmd())
	rootCmd.AddCommand(settingsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, store, database and notification gate
func initApp() error {
	var err error
	app = &App{}

	app.cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.logger, err = logging.InitLogger(app.cfg.LogDir, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Debug("Configuration loaded", zap.String("db_path", app.cfg.DBPath))

	app.store, err = kvstore.Open(app.cfg.DBPath, app.logger)
	if err != nil {
		return fmt.Errorf("failed to open data store: %w", err)
	}

	app.database = db.NewDB(app.store, app.logger)

	switch app.cfg.Notifier {
	case "email":
		app.notifier = notify.NewEmail(*app.cfg.SMTP, app.logger)
	case "none":
		app.notifier = notify.Discard{}
	default:
		app.notifier = notify.NewDesktop(app.logger)
	}

	app.gate = notify.NewGate(app.store, app.notifier, app.logger)

	return nil
}

// promptYesNo asks a yes/no question on stdin. Anything but y/yes is no.
func promptYesNo(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

// resolveReminder gates a requested reminder timestamp behind the
// notification permission. When permission is missing the reminder is dropped
// with an advisory so the item itself still saves.
func (a *App) resolveReminder(reminder string) string {
	if reminder == "" {
		return ""
	}

	switch a.gate.Status() {
	case notify.PermissionGranted:
		return reminder
	case notify.PermissionUnsupported:
		fmt.Println("⚠️  Notifications are not supported on this host; saving without a reminder.")
		return ""
	case notify.PermissionDenied:
		fmt.Println("⚠️  Notification permission was denied; saving without a reminder.")
		fmt.Println("   Run 'minassist notifications reset' if you change your mind.")
		return ""
	}

	// Undecided: this command is the user gesture that may prompt.
	state, err := a.gate.Request(func() bool {
		return promptYesNo("Allow minassist to send notifications?")
	})
	if err == nil && state == notify.PermissionGranted {
		return reminder
	}

	fmt.Println("⚠️  Notifications not enabled; saving without a reminder.")
	return ""
}

// reconcileFired prunes fired markers after a collection change so deleted
// items do not leave stale markers behind when no daemon is running.
func (a *App) reconcileFired() {
	if _, err := services.Reconcile(a.database, a.logger); err != nil {
		a.logger.Warn("Fired-reminder reconciliation failed", zap.Error(err))
	}
}
