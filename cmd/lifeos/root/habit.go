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

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}
	cmd.AddCommand(newHabitAddCmd(), newHabitDoneCmd(), newHabitRmCmd(), newHabitListCmd())
	return cmd
}

func newHabitAddCmd() *cobra.Command {
	var frequency string
	var category string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := domain.ParseFrequency(frequency)
			if err != nil {
				return err
			}

			_, out, err := transition(cmd.Context(), engine.AddHabit{
				Name:      args[0],
				Frequency: f,
				Category:  category,
			})
			if err != nil {
				return err
			}
			if !out.Changed {
				return errors.New("name is required")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconHabit+" Added"), args[0], ui.Muted.Render("#"+shortID(out.EntityID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&frequency, "frequency", "f", "daily", "Frequency (daily|weekly)")
	cmd.Flags().StringVarP(&category, "category", "c", "Health", "Category")

	return cmd
}

func newHabitDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle today's completion for a habit",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveHabitID(ctx, args[0])
			if err != nil {
				return err
			}

			now := time.Now()
			next, out, err := transition(ctx, engine.ToggleHabitToday{ID: id, Now: now})
			if err != nil {
				return err
			}
			if !out.Changed {
				return fmt.Errorf("habit %s not found", args[0])
			}

			habit := next.FindHabit(id)
			if habit.DoneOn(domain.DayKey(now)) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
					ui.Good.Render(ui.IconDone+" Done today"), habit.Name,
					ui.Warn.Render(fmt.Sprintf("%s %d", ui.IconFire, habit.Streak)), renderProgress(out))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Warn.Render("↩ Unmarked"), habit.Name,
					ui.Muted.Render(fmt.Sprintf("(streak %d, points are kept)", habit.Streak)))
			}
			return nil
		},
	}
	return cmd
}

func newHabitRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a habit",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveHabitID(ctx, args[0])
			if err != nil {
				return err
			}

			_, out, err := transition(ctx, engine.DeleteHabit{ID: id})
			if err != nil {
				return err
			}
			if !out.Changed {
				return fmt.Errorf("habit %s not found", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("🗑 Deleted")+" "+ui.Muted.Render("#"+shortID(id)))
			return nil
		},
	}
	return cmd
}

func newHabitListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits",
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

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconHabit, "Habits"))
			if len(state.Habits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no habits yet — start one today)"))
				return nil
			}

			today := domain.DayKey(time.Now())
			for _, h := range state.Habits {
				mark := "[ ]"
				if h.DoneOn(today) {
					mark = "[x]"
				}
				streak := ui.Muted.Render(fmt.Sprintf("%s %d", ui.IconFire, h.Streak))
				if h.Streak > 0 {
					streak = ui.Warn.Render(fmt.Sprintf("%s %d", ui.IconFire, h.Streak))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s %s\n", mark, ui.Muted.Render("#"+shortID(h.ID)), h.Name, streak, ui.Muted.Render(h.Category))
			}
			return nil
		},
	}
	return cmd
}

func resolveHabitID(ctx context.Context, input string) (string, error) {
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
	for _, h := range state.Habits {
		ids = append(ids, h.ID)
	}
	return resolveID(ids, input)
}
