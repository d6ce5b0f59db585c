package root

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nataschneider2001/life-Os/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "lifeos",
	Short:         "LifeOS — local-first gamified life dashboard",
	Long:          "LifeOS tracks tasks, habits and finances locally, awards XP for progress, and can ask an AI coach for advice.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	// A .env next to the binary is the easiest place for GEMINI_API_KEY.
	_ = godotenv.Load()

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newTaskCmd(),
		newHabitCmd(),
		newTxCmd(),
		newRewardsCmd(),
		newRedeemCmd(),
		newStatusCmd(),
		newSettingsCmd(),
		newCoachCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
