package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nataschneider2001/life-Os/internal/domain"
	"github.com/nataschneider2001/life-Os/internal/engine"
	"github.com/nataschneider2001/life-Os/internal/ui"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(newTaskAddCmd(), newTaskDoneCmd(), newTaskRmCmd(), newTaskListCmd())
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var priority string
	var category string
	var due string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := domain.ParsePriority(priority)
			if err != nil {
				return err
			}

			var dueDate *time.Time
			if due != "" {
				d, err := time.ParseInLocation("2006-01-02", due, time.Local)
				if err != nil {
					return fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", due)
				}
				dueDate = &d
			}

			_, out, err := transition(cmd.Context(), engine.AddTask{
				Title:    args[0],
				Priority: p,
				Category: category,
				DueDate:  dueDate,
			})
			if err != nil {
				return err
			}
			if !out.Changed {
				return errors.New("title is required")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconTask+" Added"), args[0], ui.Muted.Render("#"+shortID(out.EntityID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low|medium|high)")
	cmd.Flags().StringVarP(&category, "category", "c", "General", "Category")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

func newTaskDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle task completion",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, args[0])
			if err != nil {
				return err
			}

			next, out, err := transition(ctx, engine.ToggleTask{ID: id})
			if err != nil {
				return err
			}
			if !out.Changed {
				return fmt.Errorf("task %s not found", args[0])
			}

			task := next.FindTask(id)
			if task.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconDone+" Completed"), task.Title, renderProgress(out))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Warn.Render("↩ Reopened"), task.Title, ui.Muted.Render("(points are kept)"))
			}
			return nil
		},
	}
	return cmd
}

func newTaskRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, args[0])
			if err != nil {
				return err
			}

			_, out, err := transition(ctx, engine.DeleteTask{ID: id})
			if err != nil {
				return err
			}
			if !out.Changed {
				return fmt.Errorf("task %s not found", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("🗑 Deleted")+" "+ui.Muted.Render("#"+shortID(id)))
			return nil
		},
	}
	return cmd
}

func newTaskListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state, err := st.Load(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTask, "Tasks"))
			shown := 0
			for _, t := range state.Tasks {
				if t.Completed && !all {
					continue
				}
				shown++
				mark := "[ ]"
				if t.Completed {
					mark = "[x]"
				}
				line := fmt.Sprintf("%s %s %s %s %s", mark, ui.Muted.Render("#"+shortID(t.ID)), t.Title, ui.PriorityText(string(t.Priority)), ui.Muted.Render(t.Category))
				if t.DueDate != nil {
					line += " " + ui.Muted.Render("due "+t.DueDate.Format("2006-01-02"))
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no tasks)"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed tasks")

	return cmd
}

func requireID(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("id is required")
	}
	return nil
}

// shortID keeps output readable; commands accept the prefix back.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveTaskID accepts a full id or a unique prefix.
func resolveTaskID(ctx context.Context, input string) (string, error) {
	st, cleanup, err := openStore(ctx)
	if err != nil {
		return "", err
	}
	defer cleanup()

	state, err := st.Load(ctx)
	if err != nil {
		return "", err
	}

	var ids []string
	for _, t := range state.Tasks {
		ids = append(ids, t.ID)
	}
	return resolveID(ids, input)
}

func resolveID(ids []string, input string) (string, error) {
	var match string
	for _, id := range ids {
		if id == input {
			return id, nil
		}
		if len(input) >= 4 && len(id) >= len(input) && id[:len(input)] == input {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", input)
			}
			match = id
		}
	}
	if match == "" {
		return input, nil
	}
	return match, nil
}
