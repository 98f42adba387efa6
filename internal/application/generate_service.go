package application

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eqdomains/eqdomains/internal/domain"
	"github.com/eqdomains/eqdomains/internal/domain/extract"
	"github.com/eqdomains/eqdomains/internal/logging"
)

// GenerateService orchestrates the generation pipeline: resolve the ref
// when pinning, fetch both upstream sources, extract, merge.
type GenerateService struct {
	fetcher  domain.SourceFetcher
	resolver domain.RefResolver
	cfg      domain.Config
}

// NewGenerateService creates a GenerateService with the given outbound
// adapters.
func NewGenerateService(fetcher domain.SourceFetcher, resolver domain.RefResolver, cfg domain.Config) *GenerateService {
	return &GenerateService{
		fetcher:  fetcher,
		resolver: resolver,
		cfg:      cfg,
	}
}

// Build produces the merged records for ref. An empty ref means the
// configured default. With pin, the ref is first resolved to a commit hash
// so both files come from the same snapshot even while upstream moves.
func (s *GenerateService) Build(ctx context.Context, ref string, pin bool) (*domain.BuildResult, error) {
	start := time.Now()

	if ref == "" {
		ref = s.cfg.DefaultRef
	}
	res := &domain.BuildResult{Ref: ref}

	// 1. Optionally pin the ref to a commit
	fetchRef := ref
	if pin {
		sha, err := s.resolver.Resolve(ctx, s.cfg.RemoteURL, ref)
		if err != nil {
			return nil, fmt.Errorf("pinning %q: %w", ref, err)
		}
		res.CommitSHA = sha
		fetchRef = sha
	}

	// 2. Fetch both source files
	enumsText, err := s.fetcher.FetchText(ctx, fetchRef, s.cfg.EnumsPath)
	if err != nil {
		return nil, fmt.Errorf("fetching enum source: %w", err)
	}

	domainsText, err := s.fetcher.FetchText(ctx, fetchRef, s.cfg.DomainsPath)
	if err != nil {
		return nil, fmt.Errorf("fetching domain list source: %w", err)
	}

	// 3. Extract the two tables
	enums := extract.Enums(enumsText)
	groups := extract.Groups(domainsText)

	logging.L().Debug().
		Str("ref", fetchRef).
		Int("enums", len(enums)).
		Int("groups", groups.Len()).
		Msg("extracted upstream tables")

	// 4. Merge into the output records
	records, err := domain.BuildRecords(enums, groups)
	if err != nil {
		return nil, err
	}

	res.Records = records
	res.Names = groups.Names()
	res.Elapsed = time.Since(start)
	return res, nil
}

// RenderJSON serializes records as the two-space-indented document the
// consuming server embeds. No trailing newline.
func (s *GenerateService) RenderJSON(records []domain.GlobalDomain) ([]byte, error) {
	return json.MarshalIndent(records, "", "  ")
}
