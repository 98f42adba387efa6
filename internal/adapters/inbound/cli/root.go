package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eqdomains/eqdomains/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
)

// errUsage marks an invocation with the wrong positional argument shape.
// The contract for that case is the usage text on stdout and exit status 1.
var errUsage = errors.New("wrong number of arguments")

func newRootCmd() *cobra.Command {
	var (
		baseURL string
		pin     bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "eqdomains <output-file> [revision]",
		Short: "Generate the global equivalent domains JSON file",
		Long: "eqdomains builds the global equivalent domains document from the\n" +
			"Bitwarden server sources and writes it as JSON. Revision defaults\n" +
			"to main; any branch, tag, or commit hash works.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return errUsage
			}
			return nil
		},
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logging.Setup(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) == 2 {
				ref = args[1]
			}
			return runGenerate(cmd, generateOptions{
				OutputPath: args[0],
				Ref:        ref,
				BaseURL:    baseURL,
				Pin:        pin,
			})
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Override the raw-content base URL (mirrors, forks)")
	cmd.Flags().BoolVar(&pin, "pin", false, "Resolve the revision to a commit hash before fetching")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging on stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newVerifyCmd())
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI. Usage mistakes print the help text on stdout;
// everything else prints a diagnostic on stderr.
func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil {
		if errors.Is(err, errUsage) {
			_ = cmd.Help()
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}
	return err
}
