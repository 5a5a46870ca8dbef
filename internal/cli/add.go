package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"hr-dashboard/internal/domain"
	"hr-dashboard/internal/export"
	"hr-dashboard/internal/query"
)

var (
	addActor string

	addEmail      string
	addRole       string
	addDepartment string
	addAge        int
	addSkills     []string
	addJoined     string

	addTeamDescription string
	addLead            string
	addMembers         []string

	addTaskDescription string
	addPriority        string
	addTaskStatus      string
	addProject         string
	addTags            []string
	addAssignee        string
	addDue             string

	addDate      string
	addDayStatus string
	addHours     float64
	addNote      string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add employees, teams, tasks or attendance",
	Long: `Add a single record. People are referenced by id, email or name.

When --by names who made the change, the people it concerns get a
notification in their feed.`,
}

var addEmployeeCmd = &cobra.Command{
	Use:   "employee [name]",
	Short: "Add an employee",
	Long: `Add an employee. An employee whose email is already on file is skipped.

Examples:
  hrdash add employee "Alice Smith" --email alice@example.com --role admin --dept eng --age 30
  hrdash add employee "Bob Jones" --skills go,sql --joined 2024-03-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := &export.Seed{Employees: []export.EmployeeData{{
			Name:       args[0],
			Email:      addEmail,
			Role:       addRole,
			Department: addDepartment,
			Age:        addAge,
			Skills:     addSkills,
			Joined:     addJoined,
		}}}
		return withApp(func(a *app) error {
			return a.addSeed(cmd.Context(), cmd.OutOrStdout(), seed)
		})
	},
}

var addTeamCmd = &cobra.Command{
	Use:   "team [name]",
	Short: "Add a team",
	Long: `Add a team with an optional lead and members.

Examples:
  hrdash add team Platform --lead alice@example.com --members bob,carol --by alice`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := &export.Seed{Teams: []export.TeamData{{
			Name:        args[0],
			Description: addTeamDescription,
			Lead:        addLead,
			Members:     addMembers,
		}}}
		if addActor != "" {
			seed.Activities = append(seed.Activities, export.ActivityData{
				Type:  string(domain.ActivityTeamCreated),
				Actor: addActor,
				Team:  args[0],
			})
		}
		return withApp(func(a *app) error {
			return a.addSeed(cmd.Context(), cmd.OutOrStdout(), seed)
		})
	},
}

var addTaskCmd = &cobra.Command{
	Use:   "task [title]",
	Short: "Add a task",
	Long: `Add a task. --due accepts dates (2025-03-01), keywords (today, tomorrow,
yesterday) and offsets (+3d, +2w, 1M).

Examples:
  hrdash add task "Prepare onboarding" --assignee bob --priority high --due +3d --by alice
  hrdash add task "Quarterly review" --project hr --tags review,q1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := &export.Seed{Tasks: []export.TaskData{{
			Title:       args[0],
			Description: addTaskDescription,
			Priority:    addPriority,
			Status:      addTaskStatus,
			Project:     addProject,
			Tags:        addTags,
			Assignee:    addAssignee,
			Due:         addDue,
		}}}
		if addActor != "" {
			seed.Activities = append(seed.Activities, export.ActivityData{
				Type:    string(domain.ActivityTaskAssigned),
				Actor:   addActor,
				Target:  addAssignee,
				Details: map[string]string{"taskTitle": args[0]},
			})
		}
		return withApp(func(a *app) error {
			return a.addSeed(cmd.Context(), cmd.OutOrStdout(), seed)
		})
	},
}

var addAttendanceCmd = &cobra.Command{
	Use:   "attendance [employee]",
	Short: "Record a day of attendance",
	Long: `Record one day for one employee. A day already on file is skipped.

Examples:
  hrdash add attendance bob --status late --hours 6.5 --note "train delay"
  hrdash add attendance alice@example.com --date yesterday --status leave --by carol`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := query.ParseDate(addDate, time.Now())
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalid, err)
		}
		if day == nil {
			return fmt.Errorf("attendance date cannot be empty: %w", domain.ErrInvalid)
		}
		date := day.Format("2006-01-02")

		seed := &export.Seed{Attendance: []export.DayData{{
			Employee: args[0],
			Date:     date,
			Status:   addDayStatus,
			Hours:    addHours,
			Note:     addNote,
		}}}
		if addActor != "" {
			seed.Activities = append(seed.Activities, export.ActivityData{
				Type:    string(domain.ActivityAttendanceMarked),
				Actor:   addActor,
				Target:  args[0],
				Details: map[string]string{"status": addDayStatus, "date": date},
			})
		}
		return withApp(func(a *app) error {
			return a.addSeed(cmd.Context(), cmd.OutOrStdout(), seed)
		})
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.AddCommand(addEmployeeCmd, addTeamCmd, addTaskCmd, addAttendanceCmd)

	addCmd.PersistentFlags().StringVar(&addActor, "by", "", "Who made the change (id, email or name)")

	addEmployeeCmd.Flags().StringVarP(&addEmail, "email", "e", "", "Email address")
	addEmployeeCmd.Flags().StringVarP(&addRole, "role", "r", "employee", "Role (admin, manager, employee)")
	addEmployeeCmd.Flags().StringVar(&addDepartment, "dept", "", "Department")
	addEmployeeCmd.Flags().IntVar(&addAge, "age", 0, "Age")
	addEmployeeCmd.Flags().StringSliceVar(&addSkills, "skills", nil, "Skills (comma-separated)")
	addEmployeeCmd.Flags().StringVar(&addJoined, "joined", "", "Join date")

	addTeamCmd.Flags().StringVarP(&addTeamDescription, "description", "d", "", "Team description")
	addTeamCmd.Flags().StringVar(&addLead, "lead", "", "Team lead")
	addTeamCmd.Flags().StringSliceVar(&addMembers, "members", nil, "Team members (comma-separated)")

	addTaskCmd.Flags().StringVarP(&addTaskDescription, "description", "d", "", "Task description")
	addTaskCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "Priority (low, medium, high, urgent)")
	addTaskCmd.Flags().StringVarP(&addTaskStatus, "status", "s", "pending", "Status (pending, in_progress, completed, cancelled)")
	addTaskCmd.Flags().StringVarP(&addProject, "project", "P", "", "Project")
	addTaskCmd.Flags().StringSliceVarP(&addTags, "tags", "t", nil, "Tags (comma-separated)")
	addTaskCmd.Flags().StringVarP(&addAssignee, "assignee", "a", "", "Assignee")
	addTaskCmd.Flags().StringVar(&addDue, "due", "", "Due date")

	addAttendanceCmd.Flags().StringVar(&addDate, "date", "today", "Day")
	addAttendanceCmd.Flags().StringVarP(&addDayStatus, "status", "s", "present", "Status (present, late, leave, absent)")
	addAttendanceCmd.Flags().Float64Var(&addHours, "hours", 0, "Hours worked")
	addAttendanceCmd.Flags().StringVar(&addNote, "note", "", "Note")
}

func withApp(fn func(a *app) error) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// addSeed imports a one-record seed and reports what happened.
func (a *app) addSeed(ctx context.Context, w io.Writer, seed *export.Seed) error {
	importer := export.NewImporter(a.store, a.logger)
	result, err := importer.Import(ctx, seed, export.ConflictStrategySkip)
	if err != nil {
		return err
	}

	switch {
	case result.Skipped > 0:
		fmt.Fprintln(w, a.styles.Warning.Render("! Already on file, nothing added"))
	case result.Employees > 0:
		fmt.Fprintln(w, a.styles.Success.Render("✓ Employee added: "+seed.Employees[0].Name))
	case result.Teams > 0:
		fmt.Fprintln(w, a.styles.Success.Render("✓ Team added: "+seed.Teams[0].Name))
	case result.Tasks > 0:
		fmt.Fprintln(w, a.styles.Success.Render("✓ Task added: "+seed.Tasks[0].Title))
	case result.Attendance > 0:
		day := seed.Attendance[0]
		fmt.Fprintln(w, a.styles.Success.Render(fmt.Sprintf("✓ Attendance recorded: %s %s on %s", day.Employee, day.Status, day.Date)))
	}

	if result.Notifications > 0 {
		fmt.Fprintln(w, a.styles.Muted.Render(fmt.Sprintf("  %d notification(s) sent", result.Notifications)))
	}
	return nil
}
