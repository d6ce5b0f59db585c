package root

import (
	"github.com/spf13/cobra"

	"github.com/nataschneider2001/life-Os/internal/insight"
	"github.com/nataschneider2001/life-Os/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// The dashboard works without a coach; insights are just disabled.
			var session *insight.Session
			if coach, err := newCoach(ctx); err == nil {
				session = insight.NewSession(coach)
			}

			return tui.RunDashboard(ctx, st, session, cmd.OutOrStdout())
		},
	}
	return cmd
}
