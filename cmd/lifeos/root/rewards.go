package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nataschneider2001/life-Os/internal/engine"
	"github.com/nataschneider2001/life-Os/internal/ui"
)

func newRewardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewards",
		Short: "List the reward catalog",
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

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconGift, "Rewards"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Your XP", state.Stats.Points))
			fmt.Fprintln(cmd.OutOrStdout(), "")
			for _, r := range state.AvailableRewards {
				cost := ui.Bad.Render(fmt.Sprintf("%d XP", r.Cost))
				if engine.CanAfford(state.Stats, r) {
					cost = ui.Good.Render(fmt.Sprintf("%d XP", r.Cost))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s — %s %s\n", ui.Muted.Render("#"+r.ID), r.Title, cost, ui.Muted.Render(r.Description))
			}
			return nil
		},
	}
	return cmd
}

func newRedeemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redeem <reward-id>",
		Short: "Redeem a reward with XP",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("reward id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			next, out, err := transition(cmd.Context(), engine.RedeemReward{RewardID: args[0]})
			if err != nil {
				return err
			}
			if !out.Changed {
				return fmt.Errorf("cannot redeem %q: unknown reward or not enough XP", args[0])
			}

			// The acknowledgement notice fires here, after the mutation committed.
			fmt.Fprintf(cmd.OutOrStdout(), "%s Congratulations! You redeemed: %s. Enjoy your reward!\n", ui.Gold.Render(ui.IconTrophy), ui.Title.Render(out.Redeemed.Title))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Remaining XP", next.Stats.Points))
			return nil
		},
	}
	return cmd
}
