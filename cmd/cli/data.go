package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"minassist/pkg/core/services"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data to a JSON backup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := services.Export(app.database, app.logger)
			if err != nil {
				return fmt.Errorf("failed to gather data: %w", err)
			}

			data, err := json.MarshalIndent(bundle, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode backup: %w", err)
			}

			if output == "" {
				output = fmt.Sprintf("backup-ministerio-%s.json", time.Now().Format("2006-01-02"))
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write backup file: %w", err)
			}

			fmt.Printf("✓ Data exported to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Backup file path")

	return cmd
}

func importCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import data from a JSON backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read backup file: %w", err)
			}

			var bundle services.Bundle
			if err := json.Unmarshal(data, &bundle); err != nil {
				return fmt.Errorf("invalid backup file: %w", err)
			}

			if !yes && !promptYesNo("Importing replaces the data present in the backup. Continue?") {
				fmt.Println("Import cancelled.")
				return nil
			}

			if err := services.Import(app.database, bundle, app.logger); err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			app.logger.Info("Backup imported", zap.String("file", args[0]))
			fmt.Println("✓ Data imported")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change application settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, err := app.database.AppTitle()
			if err != nil {
				return err
			}
			goal, err := app.database.MonthlyGoal()
			if err != nil {
				return err
			}
			dark, err := app.database.DarkMode()
			if err != nil {
				return err
			}

			fmt.Printf("\n  Title:         %s\n", title)
			fmt.Printf("  Monthly goal:  %d hours\n", goal)
			fmt.Printf("  Dark mode:     %t\n", dark)
			fmt.Printf("  Notifications: %s\n", app.gate.Status())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "title <title>",
		Short: "Set the application title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.database.SetAppTitle(args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Title set to %q\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "dark-mode <on|off>",
		Short: "Toggle dark mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			switch args[0] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return fmt.Errorf("expected 'on' or 'off', got %q", args[0])
			}
			if err := app.database.SetDarkMode(enabled); err != nil {
				return err
			}
			fmt.Printf("✓ Dark mode %s\n", args[0])
			return nil
		},
	})

	return cmd
}
