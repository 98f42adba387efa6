package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/eqdomains/eqdomains/internal/domain"
)

// ── Warm amber palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	countStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

const maxDiffLines = 40

// RenderSummary renders the result of a generation run.
func RenderSummary(res *domain.BuildResult, outputPath string) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("eqdomains")
	subtitle := dimStyle.Render("Global Equivalent Domains")
	counts := countStyle.Render(fmt.Sprintf("%d groups · %d domains", res.GroupCount(), res.DomainCount()))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + counts))
	b.WriteString("\n\n")

	b.WriteString("  " + dimStyle.Render("ref") + "      " + res.Ref + "\n")
	if res.CommitSHA != "" {
		b.WriteString("  " + dimStyle.Render("pinned") + "   " + shortSHA(res.CommitSHA) + "\n")
	}
	b.WriteString("  " + dimStyle.Render("output") + "   " + outputPath + "\n")
	b.WriteString("  " + dimStyle.Render("took") + "     " + res.Elapsed.Round(time.Millisecond).String() + "\n")

	if largest := largestGroups(res, 5); len(largest) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + separatorLine + "\n\n")
		b.WriteString("  " + titleStyle.Render("Largest groups") + "\n\n")
		for _, g := range largest {
			b.WriteString(fmt.Sprintf("  %-28s %s\n",
				g.label,
				dimStyle.Render(fmt.Sprintf("%d domains", g.domains))))
		}
	}

	return b.String()
}

// RenderVerifyReport renders a drift check outcome.
func RenderVerifyReport(report *domain.VerifyReport) string {
	var b strings.Builder

	title := headerStyle.Render("eqdomains")
	subtitle := dimStyle.Render("Drift Check")

	var verdict string
	if report.InSync {
		verdict = passStyle.Bold(true).Render("✓ in sync")
	} else {
		verdict = failStyle.Bold(true).Render("✗ drift detected")
	}

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict))
	b.WriteString("\n\n")

	b.WriteString("  " + dimStyle.Render("file") + "       " + report.File + "\n")
	b.WriteString("  " + dimStyle.Render("ref") + "        " + report.Ref + "\n")
	if report.CommitSHA != "" {
		b.WriteString("  " + dimStyle.Render("pinned") + "     " + shortSHA(report.CommitSHA) + "\n")
	}
	b.WriteString(fmt.Sprintf("  %s   %d in file, %d upstream\n",
		dimStyle.Render("records"), report.FileRecords, report.UpstreamRecords))

	if !report.InSync && report.Diff != "" {
		b.WriteString("\n")
		b.WriteString("  " + separatorLine + "\n\n")
		b.WriteString(faintStyle.Render(truncateLines(report.Diff, maxDiffLines)))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderHistory renders the generation journal, newest entry last.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No generation history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Generation History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		day := e.Timestamp
		if len(day) > 10 {
			day = day[:10]
		}

		sha := shortSHA(e.CommitSHA)
		if sha == "" {
			sha = "·······"
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(day),
			faintStyle.Render(sha),
			countStyle.Render(fmt.Sprintf("%d groups", e.Groups)),
			dimStyle.Render(e.Output),
		)

		if i > 0 {
			diff := e.Groups - entries[i-1].Groups
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

type groupStat struct {
	label   string
	domains int
}

func largestGroups(res *domain.BuildResult, limit int) []groupStat {
	stats := make([]groupStat, 0, len(res.Records))
	for i, rec := range res.Records {
		label := fmt.Sprintf("type %d", rec.Type)
		if i < len(res.Names) {
			label = domain.DisplayName(res.Names[i])
		}
		stats = append(stats, groupStat{label: label, domains: len(rec.Domains)})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].domains > stats[j].domains
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

func truncateLines(s string, max int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	return strings.Join(lines[:max], "\n") + "\n" + dimStyle.Render(fmt.Sprintf("… %d more lines", len(lines)-max))
}
