package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"minassist/pkg/core/model"
)

func activityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage ministry activities",
	}

	cmd.AddCommand(activityAddCmd())
	cmd.AddCommand(activityListCmd())
	cmd.AddCommand(activityUpdateCmd())
	cmd.AddCommand(activityDeleteCmd())

	return cmd
}

func activityAddCmd() *cobra.Command {
	var activity model.MinistryActivity
	var shift, reminder string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a ministry activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			activity.Shift = model.Shift(shift)
			activity.Reminder = app.resolveReminder(reminder)

			added, err := app.database.AddActivity(activity)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Activity added (%s)\n", added.ID)
			printActivity(added)
			return nil
		},
	}

	cmd.Flags().StringVar(&activity.Date, "date", "", "Activity date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&activity.Territory, "territory", "", "Territory")
	cmd.Flags().StringVar(&activity.Leader, "leader", "", "Who leads the activity")
	cmd.Flags().StringVar(&shift, "shift", "MORNING", "Shift (MORNING or AFTERNOON)")
	cmd.Flags().StringVar(&activity.Description, "description", "", "Optional description")
	cmd.Flags().StringVar(&reminder, "reminder", "", "Optional reminder timestamp (YYYY-MM-DDTHH:MM)")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("territory")
	cmd.MarkFlagRequired("leader")

	return cmd
}

func activityListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List ministry activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.database.ListActivities()
			if err != nil {
				return err
			}

			if len(activities) == 0 {
				fmt.Println("No ministry activities.")
				return nil
			}

			fmt.Printf("\nFound %d activities:\n\n", len(activities))
			for _, activity := range activities {
				printActivity(activity)
			}
			return nil
		},
	}
}

func activityUpdateCmd() *cobra.Command {
	var date, territory, leader, shift, description, reminder string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a ministry activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.database.ListActivities()
			if err != nil {
				return err
			}

			var current *model.MinistryActivity
			for i := range activities {
				if activities[i].ID == args[0] {
					current = &activities[i]
					break
				}
			}
			if current == nil {
				return fmt.Errorf("no activity with id %s", args[0])
			}

			if cmd.Flags().Changed("date") {
				current.Date = date
			}
			if cmd.Flags().Changed("territory") {
				current.Territory = territory
			}
			if cmd.Flags().Changed("leader") {
				current.Leader = leader
			}
			if cmd.Flags().Changed("shift") {
				current.Shift = model.Shift(shift)
			}
			if cmd.Flags().Changed("description") {
				current.Description = description
			}
			if cmd.Flags().Changed("reminder") {
				current.Reminder = app.resolveReminder(reminder)
			}

			if err := app.database.UpdateActivity(*current); err != nil {
				return err
			}
			app.reconcileFired()

			fmt.Println("✓ Activity updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Activity date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&territory, "territory", "", "Territory")
	cmd.Flags().StringVar(&leader, "leader", "", "Who leads the activity")
	cmd.Flags().StringVar(&shift, "shift", "", "Shift (MORNING or AFTERNOON)")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&reminder, "reminder", "", "Reminder timestamp (YYYY-MM-DDTHH:MM), empty clears it")

	return cmd
}

func activityDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a ministry activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.database.DeleteActivity(args[0]); err != nil {
				return err
			}
			app.reconcileFired()

			fmt.Println("✓ Activity deleted")
			return nil
		},
	}
}

func printActivity(activity model.MinistryActivity) {
	fmt.Printf("  %s  %s  territory %s, leads %s", activity.ID, activity.Date, activity.Territory, activity.Leader)
	fmt.Printf("  [%s]", activity.Shift)
	if activity.Reminder != "" {
		fmt.Printf("  ⏰ %s", activity.Reminder)
	}
	if activity.Description != "" {
		fmt.Printf("\n      %s", activity.Description)
	}
	fmt.Println()
}

func assignmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignment",
		Short: "Manage school assignments",
	}

	cmd.AddCommand(assignmentAddCmd())
	cmd.AddCommand(assignmentListCmd())
	cmd.AddCommand(assignmentCompleteCmd())
	cmd.AddCommand(assignmentDeleteCmd())

	return cmd
}

func assignmentAddCmd() *cobra.Command {
	var assignment model.SchoolAssignment
	var reminder string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a school assignment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			assignment.Reminder = app.resolveReminder(reminder)

			added, err := app.database.AddAssignment(assignment)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Assignment added (%s)\n", added.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&assignment.Date, "date", "", "Assignment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&assignment.Student, "student", "", "Student")
	cmd.Flags().StringVar(&assignment.Assignment, "assignment", "", "Assignment description")
	cmd.Flags().StringVar(&assignment.EndDate, "end-date", "", "Optional end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&reminder, "reminder", "", "Optional reminder timestamp (YYYY-MM-DDTHH:MM)")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("student")
	cmd.MarkFlagRequired("assignment")

	return cmd
}

func assignmentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List school assignments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, err := app.database.ListAssignments()
			if err != nil {
				return err
			}

			if len(assignments) == 0 {
				fmt.Println("No school assignments.")
				return nil
			}

			fmt.Printf("\nFound %d assignments:\n\n", len(assignments))
			for _, assignment := range assignments {
				status := " "
				if assignment.Completed {
					status = "✓"
				}
				fmt.Printf("  [%s] %s  %s  %q - %s\n", status, assignment.ID, assignment.Date, assignment.Assignment, assignment.Student)
			}
			return nil
		},
	}
}

func assignmentCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a school assignment as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, err := app.database.ListAssignments()
			if err != nil {
				return err
			}

			for _, assignment := range assignments {
				if assignment.ID == args[0] {
					assignment.Completed = true
					if err := app.database.UpdateAssignment(assignment); err != nil {
						return err
					}
					fmt.Println("✓ Assignment completed")
					return nil
				}
			}
			return fmt.Errorf("no assignment with id %s", args[0])
		},
	}
}

func assignmentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a school assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.database.DeleteAssignment(args[0]); err != nil {
				return err
			}
			app.reconcileFired()

			fmt.Println("✓ Assignment deleted")
			return nil
		},
	}
}

func dutyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duty",
		Short: "Manage meeting duties",
	}

	cmd.AddCommand(dutyAddCmd())
	cmd.AddCommand(dutyListCmd())
	cmd.AddCommand(dutyCompleteCmd())
	cmd.AddCommand(dutyDeleteCmd())

	return cmd
}

func dutyAddCmd() *cobra.Command {
	var duty model.MeetingDuty
	var reminder string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a meeting duty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			duty.Reminder = app.resolveReminder(reminder)

			added, err := app.database.AddDuty(duty)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Duty added (%s)\n", added.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&duty.Date, "date", "", "Duty date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&duty.Person, "person", "", "Person assigned")
	cmd.Flags().StringVar(&duty.Duty, "duty", "", "Duty description")
	cmd.Flags().StringVar(&duty.EndDate, "end-date", "", "Optional end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&reminder, "reminder", "", "Optional reminder timestamp (YYYY-MM-DDTHH:MM)")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("person")
	cmd.MarkFlagRequired("duty")

	return cmd
}

func dutyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List meeting duties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			duties, err := app.database.ListDuties()
			if err != nil {
				return err
			}

			if len(duties) == 0 {
				fmt.Println("No meeting duties.")
				return nil
			}

			fmt.Printf("\nFound %d duties:\n\n", len(duties))
			for _, duty := range duties {
				status := " "
				if duty.Completed {
					status = "✓"
				}
				fmt.Printf("  [%s] %s  %s  %s - %s\n", status, duty.ID, duty.Date, duty.Duty, duty.Person)
			}
			return nil
		},
	}
}

func dutyCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a meeting duty as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			duties, err := app.database.ListDuties()
			if err != nil {
				return err
			}

			for _, duty := range duties {
				if duty.ID == args[0] {
					duty.Completed = true
					if err := app.database.UpdateDuty(duty); err != nil {
						return err
					}
					fmt.Println("✓ Duty completed")
					return nil
				}
			}
			return fmt.Errorf("no duty with id %s", args[0])
		},
	}
}

func dutyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a meeting duty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.database.DeleteDuty(args[0]); err != nil {
				return err
			}
			app.reconcileFired()

			fmt.Println("✓ Duty deleted")
			return nil
		},
	}
}
