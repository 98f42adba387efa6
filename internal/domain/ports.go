package domain

import "context"

// SourceFetcher retrieves the decoded text of one upstream source file at
// a given revision.
type SourceFetcher interface {
	FetchText(ctx context.Context, ref, path string) (string, error)
}

// RefResolver resolves a branch or tag name to the commit hash it points
// at on a remote.
type RefResolver interface {
	Resolve(ctx context.Context, remoteURL, ref string) (string, error)
}

// ConfigLoader loads tool configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// RunHistory stores the journal of successful generation runs.
type RunHistory interface {
	Save(dir string, entry RunEntry) error
	Load(dir string) ([]RunEntry, error)
}
