package cli

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/projections"
	"github.com/alexanderramin/cadence/internal/state"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskUpdateCmd(app),
		newTaskStatusCmd(app),
		newTaskDatesCmd(app),
		newTaskAssignCmd(app),
		newTaskUnassignCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var name, description, project, section, start, end string
	var interactive bool
	priority := string(domain.PriorityMedium)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()

			if interactive {
				values, err := runTaskForm(s)
				if err != nil {
					return err
				}
				name = values.name
				description = values.description
				project = values.projectRef
				section = values.sectionRef
				start, end = values.start, values.end
				priority = values.priority
			}

			startDate, err := parseDate("start", start)
			if err != nil {
				return err
			}
			endDate, err := parseDate("end", end)
			if err != nil {
				return err
			}

			t := domain.Task{
				ID:          uuid.New().String(),
				Name:        name,
				Description: description,
				StartDate:   startDate,
				EndDate:     endDate,
				Status:      domain.TaskTodo,
				Priority:    domain.TaskPriority(priority),
			}

			if project != "" {
				t.ProjectID, err = resolveProjectID(s, project)
				if err != nil {
					return err
				}
			}
			if section != "" {
				t.SectionID, err = resolveSectionID(s, section)
				if err != nil {
					return err
				}
			}

			if _, err := app.Engine.Dispatch(cmd.Context(), state.AddTask{Task: t}); err != nil {
				return err
			}

			fmt.Printf("Created task %s [%s]\n", t.Name, formatter.TruncID(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&description, "desc", "", "Description")
	cmd.Flags().StringVar(&project, "project", "", "Owning project (name, ID, or prefix)")
	cmd.Flags().StringVar(&section, "section", "", "Owning section (name, ID, or prefix)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Var(newEnumValue(&priority, domain.ValidTaskPriorities), "priority", "Priority (low|medium|high)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in fields through a form")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var search, assignee, project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()

			f := projections.Filter{Search: search}
			if assignee != "" {
				userID, err := resolveUserID(s, assignee)
				if err != nil {
					return err
				}
				f.AssigneeID = userID
			}

			rows := projections.List(s, f)
			if project != "" {
				projectID, err := resolveProjectID(s, project)
				if err != nil {
					return err
				}
				rows = slices.DeleteFunc(rows, func(r projections.ListRow) bool {
					return r.Task.ProjectID != projectID
				})
			}

			if len(rows) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatList(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by name/description substring")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Filter by assignee")
	cmd.Flags().StringVar(&project, "project", "", "Filter by project")

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show REF",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			taskID, err := resolveTaskID(s, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatTaskDetail(s, s.TaskByID(taskID)))
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var name, description, project, section, priority string
	var progress int

	cmd := &cobra.Command{
		Use:   "update REF",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			taskID, err := resolveTaskID(s, args[0])
			if err != nil {
				return err
			}

			var patch state.TaskPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("desc") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("priority") {
				p := domain.TaskPriority(priority)
				patch.Priority = &p
			}
			if cmd.Flags().Changed("progress") {
				patch.Progress = &progress
			}
			if cmd.Flags().Changed("project") {
				projectID, err := resolveProjectID(s, project)
				if err != nil {
					return err
				}
				patch.ProjectID = &projectID
			}
			if cmd.Flags().Changed("section") {
				sectionID := ""
				if section != "" {
					sectionID, err = resolveSectionID(s, section)
					if err != nil {
						return err
					}
				}
				patch.SectionID = &sectionID
			}

			next, err := app.Engine.Dispatch(cmd.Context(), state.UpdateTask{ID: taskID, Patch: patch})
			if err != nil {
				return err
			}

			fmt.Printf("Updated task %s\n", next.TaskByID(taskID).Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&description, "desc", "", "Description")
	cmd.Flags().StringVar(&project, "project", "", "Move to project")
	cmd.Flags().StringVar(&section, "section", "", "Move to section (empty to clear)")
	cmd.Flags().Var(newEnumValue(&priority, domain.ValidTaskPriorities), "priority", "Priority (low|medium|high)")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress (0-100)")

	return cmd
}

func newTaskStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status REF STATUS",
		Short: "Set a task's status (todo|in_progress|review|done)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			taskID, err := resolveTaskID(s, args[0])
			if err != nil {
				return err
			}

			if !domain.ValidTaskStatuses[args[1]] {
				return fmt.Errorf("unknown status %q (todo|in_progress|review|done)", args[1])
			}
			status := domain.TaskStatus(args[1])
			next, err := app.Engine.Dispatch(cmd.Context(), state.UpdateTaskStatus{ID: taskID, Status: status})
			if err != nil {
				return err
			}

			t := next.TaskByID(taskID)
			fmt.Printf("Task %s is now %s\n", t.Name, formatter.StatusPill(t.Status))
			return nil
		},
	}
}

func newTaskDatesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dates REF START END",
		Short: "Reschedule a task (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			taskID, err := resolveTaskID(s, args[0])
			if err != nil {
				return err
			}

			startDate, err := parseDate("start", args[1])
			if err != nil {
				return err
			}
			endDate, err := parseDate("end", args[2])
			if err != nil {
				return err
			}

			next, err := app.Engine.Dispatch(cmd.Context(), state.UpdateTaskDates{ID: taskID, Start: startDate, End: endDate})
			if err != nil {
				return err
			}

			t := next.TaskByID(taskID)
			fmt.Printf("Rescheduled %s: %s\n", t.Name, formatter.FormatDateRange(t.StartDate, t.EndDate))
			return nil
		},
	}
}

func newTaskAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign REF PERSON",
		Short: "Assign a person to a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			taskID, err := resolveTaskID(s, args[0])
			if err != nil {
				return err
			}
			userID, err := resolveUserID(s, args[1])
			if err != nil {
				return err
			}

			t := s.TaskByID(taskID)
			if t.AssignedTo(userID) {
				fmt.Println("Already assigned.")
				return nil
			}
			assignees := append(slices.Clone(t.Assignees), userID)

			next, err := app.Engine.Dispatch(cmd.Context(), state.UpdateTask{
				ID:    taskID,
				Patch: state.TaskPatch{Assignees: &assignees},
			})
			if err != nil {
				return err
			}

			fmt.Printf("Assigned %s to %s\n", next.UserByID(userID).Name, next.TaskByID(taskID).Name)
			return nil
		},
	}
}

func newTaskUnassignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign REF PERSON",
		Short: "Remove a person from a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			taskID, err := resolveTaskID(s, args[0])
			if err != nil {
				return err
			}
			userID, err := resolveUserID(s, args[1])
			if err != nil {
				return err
			}

			t := s.TaskByID(taskID)
			assignees := slices.DeleteFunc(slices.Clone(t.Assignees), func(id string) bool {
				return id == userID
			})

			if _, err := app.Engine.Dispatch(cmd.Context(), state.UpdateTask{
				ID:    taskID,
				Patch: state.TaskPatch{Assignees: &assignees},
			}); err != nil {
				return err
			}

			fmt.Printf("Unassigned from %s\n", t.Name)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove REF",
		Short: "Remove a task and its dependency links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Engine.Current()
			taskID, err := resolveTaskID(s, args[0])
			if err != nil {
				return err
			}

			if _, err := app.Engine.Dispatch(cmd.Context(), state.DeleteTask{ID: taskID}); err != nil {
				return err
			}

			fmt.Println("Removed task")
			return nil
		},
	}
}
