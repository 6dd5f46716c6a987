package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"minassist/pkg/core/model"
	"minassist/pkg/core/services"
)

func serviceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Log service time and track the monthly goal",
	}

	cmd.AddCommand(serviceLogCmd())
	cmd.AddCommand(serviceListCmd())
	cmd.AddCommand(serviceDeleteCmd())
	cmd.AddCommand(serviceGoalCmd())
	cmd.AddCommand(serviceReportCmd())

	return cmd
}

func serviceLogCmd() *cobra.Command {
	var entry model.ServiceEntry

	cmd := &cobra.Command{
		Use:   "log <date>",
		Short: "Log hours for a day (replaces any existing entry for that day)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry.Date = args[0]

			if err := app.database.UpsertServiceEntry(entry); err != nil {
				return err
			}

			fmt.Printf("✓ Logged %.1f hours for %s\n", entry.Hours, entry.Date)
			return nil
		},
	}

	cmd.Flags().Float64Var(&entry.Hours, "hours", 0, "Hours spent")
	cmd.Flags().IntVar(&entry.Placements, "placements", 0, "Publications placed")
	cmd.Flags().IntVar(&entry.Videos, "videos", 0, "Videos shown")
	cmd.Flags().IntVar(&entry.ReturnVisits, "return-visits", 0, "Return visits made")
	cmd.MarkFlagRequired("hours")

	return cmd
}

func serviceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List service entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.database.ListServiceEntries()
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("No service entries.")
				return nil
			}

			fmt.Printf("\n%d service entries:\n\n", len(entries))
			for _, entry := range entries {
				fmt.Printf("  %s  %5.1fh", entry.Date, entry.Hours)
				if entry.Placements > 0 {
					fmt.Printf("  placements: %d", entry.Placements)
				}
				if entry.Videos > 0 {
					fmt.Printf("  videos: %d", entry.Videos)
				}
				if entry.ReturnVisits > 0 {
					fmt.Printf("  return visits: %d", entry.ReturnVisits)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func serviceDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <date>",
		Short: "Delete the service entry for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.database.DeleteServiceEntry(args[0]); err != nil {
				return err
			}
			fmt.Println("✓ Entry deleted")
			return nil
		},
	}
}

func serviceGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goal [hours]",
		Short: "Show or set the monthly hours goal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				goal, err := app.database.MonthlyGoal()
				if err != nil {
					return err
				}
				fmt.Printf("Monthly goal: %d hours\n", goal)
				return nil
			}

			goal, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("goal must be a number: %w", err)
			}
			if err := app.database.SetMonthlyGoal(goal); err != nil {
				return err
			}

			fmt.Printf("✓ Monthly goal set to %d hours\n", goal)
			return nil
		},
	}
}

func serviceReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [month]",
		Short: "Report logged time for a month against the goal (default: current month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month := time.Now().Format(services.MonthLayout)
			if len(args) > 0 {
				month = args[0]
			}

			entries, err := app.database.ListServiceEntries()
			if err != nil {
				return err
			}
			goal, err := app.database.MonthlyGoal()
			if err != nil {
				return err
			}

			report, err := services.BuildMonthlyReport(entries, month, goal)
			if err != nil {
				return err
			}

			fmt.Printf("\nService report for %s\n\n", report.Month)
			fmt.Printf("  Days in service:  %d\n", report.Days)
			fmt.Printf("  Hours:            %.1f / %d\n", report.Hours, report.Goal)
			fmt.Printf("  Placements:       %d\n", report.Placements)
			fmt.Printf("  Videos:           %d\n", report.Videos)
			fmt.Printf("  Return visits:    %d\n", report.ReturnVisits)
			if report.GoalMet() {
				fmt.Println("\n  🎉 Monthly goal reached!")
			} else {
				fmt.Printf("\n  %.1f hours to go.\n", report.Remaining)
			}
			return nil
		},
	}
}
