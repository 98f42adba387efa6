package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/camelcase"
)

// GlobalDomain is one record of the generated equivalent-domains document.
// Field order matters: the consuming server expects the keys in exactly
// this order (type, domains, excluded).
type GlobalDomain struct {
	Type     int      `json:"type"`
	Domains  []string `json:"domains"`
	Excluded bool     `json:"excluded"`
}

// GroupTable is an ordered mapping from enum identifier to domain list.
// The first Set of a name fixes its position; a later Set for the same
// name replaces the list without moving it.
type GroupTable struct {
	names   []string
	domains map[string][]string
}

// NewGroupTable creates an empty GroupTable.
func NewGroupTable() *GroupTable {
	return &GroupTable{domains: make(map[string][]string)}
}

// Set stores domains under name, keeping the position of an existing name.
func (t *GroupTable) Set(name string, domains []string) {
	if _, ok := t.domains[name]; !ok {
		t.names = append(t.names, name)
	}
	t.domains[name] = domains
}

// Get returns the domain list stored under name.
func (t *GroupTable) Get(name string) ([]string, bool) {
	d, ok := t.domains[name]
	return d, ok
}

// Names returns the identifiers in insertion order.
func (t *GroupTable) Names() []string {
	return t.names
}

// Len returns the number of groups in the table.
func (t *GroupTable) Len() int {
	return len(t.names)
}

// BuildRecords joins the domain groups with the enum mapping, in group
// insertion order. Every group name must have an enum entry; a missing one
// aborts the build so a renamed upstream identifier can never produce a
// silently incomplete document.
func BuildRecords(enums map[string]int, groups *GroupTable) ([]GlobalDomain, error) {
	records := make([]GlobalDomain, 0, groups.Len())
	for _, name := range groups.Names() {
		value, ok := enums[name]
		if !ok {
			return nil, fmt.Errorf("domain group %q: %w", name, ErrMissingEnum)
		}
		domains, _ := groups.Get(name)
		records = append(records, GlobalDomain{
			Type:     value,
			Domains:  domains,
			Excluded: false,
		})
	}
	return records, nil
}

// BuildResult carries the outcome of one generation pipeline run. Names
// holds the enum identifier of each record, index-aligned with Records.
type BuildResult struct {
	Ref       string
	CommitSHA string
	Records   []GlobalDomain
	Names     []string
	Elapsed   time.Duration
}

// GroupCount returns the number of generated records.
func (r *BuildResult) GroupCount() int {
	return len(r.Records)
}

// DomainCount returns the total number of domains across all records.
func (r *BuildResult) DomainCount() int {
	n := 0
	for _, rec := range r.Records {
		n += len(rec.Domains)
	}
	return n
}

// VerifyReport describes how an existing output file compares against a
// fresh upstream build.
type VerifyReport struct {
	File            string `json:"file"`
	Ref             string `json:"ref"`
	CommitSHA       string `json:"commit_sha,omitempty"`
	FileRecords     int    `json:"file_records"`
	UpstreamRecords int    `json:"upstream_records"`
	InSync          bool   `json:"in_sync"`
	Diff            string `json:"diff,omitempty"`
}

// RunEntry is one line of the generation journal.
type RunEntry struct {
	Timestamp string `json:"timestamp"`
	Ref       string `json:"ref"`
	CommitSHA string `json:"commit_sha,omitempty"`
	Groups    int    `json:"groups"`
	Domains   int    `json:"domains"`
	Output    string `json:"output"`
}

// DisplayName renders an enum identifier as a human-readable label,
// e.g. "WellsFargo" becomes "Wells Fargo".
func DisplayName(name string) string {
	return strings.Join(camelcase.Split(name), " ")
}
