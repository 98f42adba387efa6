// Package gitrev resolves revision references against the upstream git
// remote without cloning it.
package gitrev

import (
	"context"
	"fmt"
	"regexp"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/eqdomains/eqdomains/internal/domain"
	"github.com/eqdomains/eqdomains/internal/logging"
)

var commitSHA = regexp.MustCompile(`^[0-9a-f]{40}$`)

// Resolver implements domain.RefResolver by listing the remote's
// advertised references (the ls-remote operation).
type Resolver struct{}

var _ domain.RefResolver = (*Resolver)(nil)

// New creates a Resolver.
func New() *Resolver {
	return &Resolver{}
}

// IsCommitSHA reports whether ref is already a full 40-hex commit hash.
func IsCommitSHA(ref string) bool {
	return commitSHA.MatchString(ref)
}

// Resolve maps a branch or tag name to the commit hash it points at on the
// remote. A full commit hash passes through without a network round trip.
// Branches shadow tags of the same name.
func (r *Resolver) Resolve(ctx context.Context, remoteURL, ref string) (string, error) {
	if IsCommitSHA(ref) {
		return ref, nil
	}

	remote := git.NewRemote(memory.NewStorage(), &gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{remoteURL},
	})

	refs, err := remote.ListContext(ctx, &git.ListOptions{})
	if err != nil {
		return "", fmt.Errorf("listing refs of %s: %w", remoteURL, err)
	}

	byName := make(map[plumbing.ReferenceName]plumbing.Hash, len(refs))
	for _, rf := range refs {
		byName[rf.Name()] = rf.Hash()
	}

	candidates := []plumbing.ReferenceName{
		plumbing.NewBranchReferenceName(ref),
		plumbing.NewTagReferenceName(ref),
		plumbing.ReferenceName(ref),
	}
	for _, name := range candidates {
		if hash, ok := byName[name]; ok && !hash.IsZero() {
			logging.L().Debug().
				Str("ref", ref).
				Str("resolved", name.String()).
				Str("sha", hash.String()).
				Msg("resolved revision")
			return hash.String(), nil
		}
	}

	return "", fmt.Errorf("resolving %q on %s: %w", ref, remoteURL, domain.ErrRefNotFound)
}
