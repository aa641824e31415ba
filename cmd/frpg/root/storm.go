package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"focusrpg/internal/ui"
)

func newStormCmd() *cobra.Command {
	var trigger string
	var note string
	var showLogs bool

	cmd := &cobra.Command{
		Use:   "storm",
		Short: "Log a crisis trigger and print the rescue protocol",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if showLogs {
				logs, err := svc.ListTriggerLogs(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconStorm, "Trigger Log"))
				if len(logs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(empty)"))
					return nil
				}
				for _, e := range logs {
					line := fmt.Sprintf("%s %s", e.Timestamp.Format("2006-01-02 15:04"), e.TriggerType)
					if e.Note != nil && *e.Note != "" {
						line += " — " + *e.Note
					}
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return nil
			}

			var notePtr *string
			if note != "" {
				notePtr = &note
			}
			checklist, err := svc.LogTrigger(ctx, trigger, notePtr)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconStorm, "Rescue Protocol"))
			for i, step := range checklist {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, step)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&trigger, "trigger", "t", "", "Trigger type (default: storm)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Optional note")
	cmd.Flags().BoolVar(&showLogs, "logs", false, "Show past trigger logs instead")

	return cmd
}
