package application

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"

	"github.com/eqdomains/eqdomains/internal/domain"
)

// VerifyService checks an existing output file against a fresh upstream
// build.
type VerifyService struct {
	gen *GenerateService
}

// NewVerifyService creates a VerifyService on top of a GenerateService.
func NewVerifyService(gen *GenerateService) *VerifyService {
	return &VerifyService{gen: gen}
}

// Verify reads the document at path, rebuilds it from upstream at ref, and
// reports any drift between the two.
func (s *VerifyService) Verify(ctx context.Context, path, ref string, pin bool) (*domain.VerifyReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var current []domain.GlobalDomain
	if err := json.Unmarshal(data, &current); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	res, err := s.gen.Build(ctx, ref, pin)
	if err != nil {
		return nil, err
	}

	diff := cmp.Diff(current, res.Records)

	return &domain.VerifyReport{
		File:            path,
		Ref:             res.Ref,
		CommitSHA:       res.CommitSHA,
		FileRecords:     len(current),
		UpstreamRecords: len(res.Records),
		InSync:          diff == "",
		Diff:            diff,
	}, nil
}
