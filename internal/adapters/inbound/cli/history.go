package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eqdomains/eqdomains/internal/adapters/outbound/history"
	"github.com/eqdomains/eqdomains/internal/adapters/outbound/tui"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show past generation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}

			entries, err := history.New().Load(wd)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}
}
