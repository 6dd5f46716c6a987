package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"minassist/pkg/core/model"
	"minassist/pkg/core/services"
	"minassist/pkg/notify"
)

func watchCmd() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the reminder daemon, sweeping for due reminders until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sweeper := services.NewSweeper(app.database, app.gate, app.notifier, app.logger)

			if once {
				fired, err := sweeper.RunOnce(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Printf("Sweep complete, %d reminders fired\n", fired)
				return nil
			}

			if app.gate.Status() != notify.PermissionGranted {
				fmt.Println("Notifications are not enabled; reminders will not fire.")
				fmt.Println("Run 'minassist notifications enable' first.")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app.logger.Info("Starting reminder daemon", zap.String("schedule", app.cfg.SweepSchedule))
			return services.Watch(ctx, sweeper, app.store, app.logger, app.cfg.SweepSchedule)
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Sweep once and exit")

	return cmd
}

func notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Manage notification permission",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the notification permission state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Notification permission: %s\n", app.gate.Status())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "enable",
		Short: "Request permission to send notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			perm, err := app.gate.Request(func() bool {
				return promptYesNo("Allow minassist to send notifications?")
			})
			switch {
			case errors.Is(err, notify.ErrUnsupported):
				fmt.Println("No notification channel is available on this host.")
				return nil
			case errors.Is(err, notify.ErrDenied):
				fmt.Println("Notifications were previously denied.")
				fmt.Println("Run 'minassist notifications reset' to be asked again.")
				return nil
			case err != nil:
				return err
			}

			if perm == notify.PermissionGranted {
				fmt.Println("✓ Notifications enabled")
			} else {
				fmt.Println("Notifications remain disabled.")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "disable",
		Short: "Refuse notification permission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.gate.Deny(); err != nil {
				return err
			}
			fmt.Println("✓ Notifications disabled")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the stored permission decision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.gate.Reset(); err != nil {
				return err
			}
			fmt.Println("✓ Permission decision cleared")
			return nil
		},
	})

	return cmd
}

func planCmd() *cobra.Command {
	var (
		from  string
		to    string
		apply bool
	)

	cmd := &cobra.Command{
		Use:   "plan <arrangement>",
		Short: "Propose activities for a configured recurring arrangement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arrangement, err := app.cfg.Arrangement(args[0])
			if err != nil {
				return err
			}

			fromDate, err := time.ParseInLocation(model.DateLayout, from, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --from date: %w", err)
			}
			toDate, err := time.ParseInLocation(model.DateLayout, to, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --to date: %w", err)
			}

			proposals, err := services.PlanActivities(arrangement, fromDate, toDate)
			if err != nil {
				return err
			}
			if len(proposals) == 0 {
				fmt.Println("No dates match the arrangement in that range.")
				return nil
			}

			fmt.Printf("\n%d proposed activities for %q:\n\n", len(proposals), arrangement.Name)
			for _, activity := range proposals {
				fmt.Printf("  %s  %-9s  territory %s, leads %s\n",
					activity.Date, activity.Shift, activity.Territory, activity.Leader)
			}

			if !apply {
				fmt.Println("\nRe-run with --apply to add them.")
				return nil
			}

			added, skipped := services.ImportProposals(app.database, proposals, app.logger)
			fmt.Printf("\n✓ Added %d activities", added)
			if skipped > 0 {
				fmt.Printf(" (%d skipped)", skipped)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", time.Now().Format(model.DateLayout), "First date to plan (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", time.Now().AddDate(0, 1, 0).Format(model.DateLayout), "Last date to plan (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&apply, "apply", false, "Add the proposed activities instead of just listing them")

	return cmd
}

func proposalsCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "proposals",
		Short: "Work with activity proposal files",
	}

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import proposed activities from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read proposals file: %w", err)
			}

			var proposals []model.MinistryActivity
			if err := json.Unmarshal(data, &proposals); err != nil {
				return fmt.Errorf("invalid proposals file: %w", err)
			}
			if len(proposals) == 0 {
				fmt.Println("Nothing to import.")
				return nil
			}

			if !yes && !promptYesNo(fmt.Sprintf("Import %d proposed activities?", len(proposals))) {
				fmt.Println("Import cancelled.")
				return nil
			}

			added, skipped := services.ImportProposals(app.database, proposals, app.logger)
			fmt.Printf("✓ Added %d activities", added)
			if skipped > 0 {
				fmt.Printf(" (%d skipped)", skipped)
			}
			fmt.Println()
			return nil
		},
	}
	importCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	cmd.AddCommand(importCmd)

	return cmd
}
