package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nataschneider2001/life-Os/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, badges and today's numbers",
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
			stats := state.Stats

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "LifeOS Status"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", stats.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("%d / %d (%.0f%%)", stats.Points, stats.XPToNextLevel, state.LevelProgress())))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Daily goal", fmt.Sprintf("%d XP", state.Settings.DailyGoalXP)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("📊 Today"))
			fmt.Fprintf(cmd.OutOrStdout(), "- %s %d/%d\n", ui.Key.Render("Tasks done:"), state.CompletedTasks(), len(state.Tasks))
			fmt.Fprintf(cmd.OutOrStdout(), "- %s %d\n", ui.Key.Render("Habits:"), len(state.Habits))
			fmt.Fprintf(cmd.OutOrStdout(), "- %s %.0f%%\n", ui.Key.Render("Consistency:"), state.HabitConsistency())
			fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %.2f\n", ui.Key.Render("Balance:"), state.Settings.Currency, state.Balance())
			fmt.Fprintln(cmd.OutOrStdout(), "")

			if len(stats.Badges) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconTrophy+" Badges"))
				fmt.Fprintln(cmd.OutOrStdout(), "- "+strings.Join(stats.Badges, "\n- "))
			}
			return nil
		},
	}
	return cmd
}
