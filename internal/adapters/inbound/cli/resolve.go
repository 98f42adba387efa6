package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eqdomains/eqdomains/internal/adapters/outbound/gitrev"
)

func newResolveCmd() *cobra.Command {
	var remoteURL string

	cmd := &cobra.Command{
		Use:   "resolve <revision>",
		Short: "Resolve a revision to a commit hash on the upstream remote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig("")
			if err != nil {
				return err
			}
			if remoteURL != "" {
				cfg.RemoteURL = remoteURL
			}

			sha, err := gitrev.New().Resolve(cmd.Context(), cfg.RemoteURL, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), sha)
			return nil
		},
	}

	cmd.Flags().StringVar(&remoteURL, "remote-url", "", "Override the git remote URL")
	return cmd
}
