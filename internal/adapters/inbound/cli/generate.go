package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	appconfig "github.com/eqdomains/eqdomains/internal/adapters/outbound/config"
	"github.com/eqdomains/eqdomains/internal/adapters/outbound/fetcher"
	"github.com/eqdomains/eqdomains/internal/adapters/outbound/gitrev"
	"github.com/eqdomains/eqdomains/internal/adapters/outbound/history"
	"github.com/eqdomains/eqdomains/internal/adapters/outbound/tui"
	"github.com/eqdomains/eqdomains/internal/application"
	"github.com/eqdomains/eqdomains/internal/domain"
)

type generateOptions struct {
	OutputPath string
	Ref        string
	BaseURL    string
	Pin        bool
}

// runGenerate is the root command action: build the document from upstream
// and write it to the output file. The file is only touched after the whole
// build succeeded.
func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	cfg, err := loadConfig(opts.BaseURL)
	if err != nil {
		return err
	}

	svc := newGenerateService(cfg)

	res, err := svc.Build(cmd.Context(), opts.Ref, opts.Pin)
	if err != nil {
		return err
	}

	data, err := svc.RenderJSON(res.Records)
	if err != nil {
		return fmt.Errorf("serializing records: %w", err)
	}

	if err := os.WriteFile(opts.OutputPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.OutputPath, err)
	}

	if wd, wdErr := os.Getwd(); wdErr == nil {
		_ = history.New().Save(wd, domain.RunEntry{ // best-effort
			Timestamp: time.Now().Format(time.RFC3339),
			Ref:       res.Ref,
			CommitSHA: res.CommitSHA,
			Groups:    res.GroupCount(),
			Domains:   res.DomainCount(),
			Output:    opts.OutputPath,
		})
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(res, opts.OutputPath))
	return nil
}

// loadConfig reads .eqdomains.yaml from the working directory and applies
// the --base-url override on top.
func loadConfig(baseURL string) (domain.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return domain.Config{}, err
	}

	cfg, err := appconfig.New().Load(wd)
	if err != nil {
		return domain.Config{}, err
	}

	if baseURL != "" {
		cfg.BaseURL = baseURL
		if err := cfg.Validate(); err != nil {
			return domain.Config{}, fmt.Errorf("invalid --base-url: %w", err)
		}
	}

	return cfg, nil
}

func newGenerateService(cfg domain.Config) *application.GenerateService {
	return application.NewGenerateService(fetcher.New(cfg.BaseURL, cfg.Timeout()), gitrev.New(), cfg)
}
