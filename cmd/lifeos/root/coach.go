package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nataschneider2001/life-Os/internal/insight"
	"github.com/nataschneider2001/life-Os/internal/ui"
)

func newCoachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coach [general|finance|routine]",
		Short: "Ask the AI coach for an insight",
		Long: `Ask the AI coach for advice grounded on your local data.

Analyses:
  general  — overall progress summary and motivation (default)
  finance  — where to save money this month
  routine  — an ideal morning routine from your habits and pending tasks

Requires GEMINI_API_KEY (a .env file next to the binary works).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kindInput := ""
			if len(args) == 1 {
				kindInput = args[0]
			}
			kind, err := insight.ParseAnalysis(kindInput)
			if err != nil {
				return err
			}

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

			coach, err := newCoach(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBrain, "LifeOS Intelligence"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Thinking…"))

			// The session keeps the request/response handling identical to the
			// dashboard; here we simply block on the single result.
			session := insight.NewSession(coach)
			session.Request(ctx, kind, state)
			res := <-session.Results()

			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel.Render(res.Text))
			return nil
		},
	}
	return cmd
}
