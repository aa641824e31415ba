package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"focusrpg/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "frpg",
	Short:         "Focus RPG — tasks, focus sessions, and a point economy",
	Long:          "Focus RPG is a single-user CLI/TUI for capturing tasks, running timed focus sessions, earning points, and spending them on self-defined rewards.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newEditCmd(),
		newDoneCmd(),
		newRmCmd(),
		newStartCmd(),
		newStopCmd(),
		newDistractCmd(),
		newRewardsCmd(),
		newRedeemCmd(),
		newStatsCmd(),
		newStormCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
