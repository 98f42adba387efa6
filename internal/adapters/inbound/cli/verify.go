package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eqdomains/eqdomains/internal/adapters/outbound/tui"
	"github.com/eqdomains/eqdomains/internal/application"
)

func newVerifyCmd() *cobra.Command {
	var (
		jsonOutput bool
		baseURL    string
		pin        bool
	)

	cmd := &cobra.Command{
		Use:   "verify <json-file> [revision]",
		Short: "Check an existing output file against the upstream sources",
		Long: "Rebuild the equivalent domains document in memory and compare it\n" +
			"with an existing JSON file. Exits non-zero when the file has\n" +
			"drifted from upstream.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) == 2 {
				ref = args[1]
			}

			cfg, err := loadConfig(baseURL)
			if err != nil {
				return err
			}

			svc := application.NewVerifyService(newGenerateService(cfg))

			report, err := svc.Verify(cmd.Context(), args[0], ref, pin)
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderVerifyReport(report))
			}

			if !report.InSync {
				return fmt.Errorf("%s is out of sync with %s", report.File, report.Ref)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Override the raw-content base URL (mirrors, forks)")
	cmd.Flags().BoolVar(&pin, "pin", false, "Resolve the revision to a commit hash before fetching")
	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
