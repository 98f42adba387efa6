package extract

import (
	"regexp"
	"strings"

	"github.com/eqdomains/eqdomains/internal/domain"
)

// Domain group registrations look like
//
//	GlobalDomains.Add(GlobalEquivalentDomainsType.Google, new List<string> { "google.com", "youtube.com" });
//
// one per line. The list body must not contain a closing brace, which holds
// for plain string literals.
var groupLine = regexp.MustCompile(`^\s*GlobalDomains\.Add\(GlobalEquivalentDomainsType\.([_0-9a-zA-Z]+)\s*,\s*new List<string>\s*\{([^}]+)\}\);`)

// Groups scans text line by line and returns the ordered identifier to
// domain list table. Domains keep their source order; spaces and double
// quotes are trimmed from each entry.
func Groups(text string) *domain.GroupTable {
	table := domain.NewGroupTable()
	for _, line := range strings.Split(text, "\n") {
		m := groupLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		parts := strings.Split(m[2], ",")
		domains := make([]string, 0, len(parts))
		for _, part := range parts {
			domains = append(domains, strings.Trim(part, ` "`))
		}
		table.Set(m[1], domains)
	}
	return table
}
