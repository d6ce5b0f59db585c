package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nataschneider2001/life-Os/internal/domain"
	"github.com/nataschneider2001/life-Os/internal/engine"
	"github.com/nataschneider2001/life-Os/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	var theme string
	var currency string
	var dailyGoal int

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			intent := engine.UpdateSettings{}
			if cmd.Flags().Changed("theme") {
				t, err := domain.ParseTheme(theme)
				if err != nil {
					return err
				}
				intent.Theme = &t
			}
			if cmd.Flags().Changed("currency") {
				intent.Currency = &currency
			}
			if cmd.Flags().Changed("daily-goal") {
				if dailyGoal < domain.MinDailyGoalXP || dailyGoal > domain.MaxDailyGoalXP {
					return fmt.Errorf("daily goal must be between %d and %d XP", domain.MinDailyGoalXP, domain.MaxDailyGoalXP)
				}
				intent.DailyGoalXP = &dailyGoal
			}

			changedAny := intent.Theme != nil || intent.Currency != nil || intent.DailyGoalXP != nil
			if changedAny {
				_, out, err := transition(ctx, intent)
				if err != nil {
					return err
				}
				if out.Changed {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Settings updated"))
				}
			}

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			state, err := st.Load(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading("⚙️", "Settings"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Theme", state.Settings.Theme))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Currency", state.Settings.Currency))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Daily goal", fmt.Sprintf("%d XP", state.Settings.DailyGoalXP)))
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Theme (light|dark)")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code (e.g. BRL, USD)")
	cmd.Flags().IntVar(&dailyGoal, "daily-goal", 0, "Daily XP goal (100-1000)")

	return cmd
}
