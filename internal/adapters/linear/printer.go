package linear

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/FloatyJellyfish/mod-updater/internal/ui/output"
	"github.com/FloatyJellyfish/mod-updater/internal/ui/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer implements ports.Reporter, writing command results to stdout.
type Printer struct {
	out *termenv.Output
}

// NewPrinter creates a Printer writing to w, or stdout when w is nil.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{out: output.New(w)}
}

// Outcomes prints one line per item, sorted by item, followed by a summary.
func (p *Printer) Outcomes(action string, outcomes []domain.Outcome) {
	sorted := slices.Clone(outcomes)
	slices.SortFunc(sorted, func(a, b domain.Outcome) int {
		return strings.Compare(a.Item, b.Item)
	})

	for _, o := range sorted {
		p.println(p.outcomeLine(o))
	}

	failed := domain.CountFailed(outcomes)
	summary := fmt.Sprintf("%s: %d succeeded, %d failed", action, len(outcomes)-failed, failed)
	if failed > 0 {
		p.println(p.colored(summary, style.Red))
		return
	}
	p.println(summary)
}

func (p *Printer) outcomeLine(o domain.Outcome) string {
	switch o.Status {
	case domain.StatusInstalled:
		line := fmt.Sprintf("%s %s installed %s (%s)", p.colored(style.Check, style.Green), o.Item, o.Version, o.Filename)
		if o.Removed != "" {
			line += fmt.Sprintf(" %s replaced %s", style.Arrow, o.Removed)
		}
		return line
	case domain.StatusUpToDate:
		line := fmt.Sprintf("%s %s up to date (%s)", p.colored(style.Equal, style.Slate), o.Item, o.Filename)
		if o.Removed != "" {
			line += fmt.Sprintf(" %s removed %s", style.Arrow, o.Removed)
		}
		return line
	case domain.StatusRemoved:
		if o.Filename == "" {
			return fmt.Sprintf("%s %s removed (not tracked)", p.colored(style.Minus, style.Slate), o.Item)
		}
		return fmt.Sprintf("%s %s removed (%s)", p.colored(style.Minus, style.Slate), o.Item, o.Filename)
	case domain.StatusRolledBack:
		return fmt.Sprintf("%s %s rolled back to %s (%s)", p.colored(style.Undo, style.Sky), o.Item, o.Version, o.Filename)
	default:
		return fmt.Sprintf("%s %s %s: %v", p.colored(style.Cross, style.Red), o.Item, o.ErrorKind(), o.Err)
	}
}

// Releases lists the releases of item in registry order.
func (p *Printer) Releases(item string, releases []domain.Release) {
	if len(releases) == 0 {
		p.println(fmt.Sprintf("No versions found for mod '%s'", item))
		return
	}

	p.println(fmt.Sprintf("Mod versions for '%s':", item))
	for _, r := range releases {
		p.println(fmt.Sprintf("\t%s - %s %s %s",
			r.Name,
			strings.Join(r.GameVersions, ", "),
			strings.Join(r.Loaders, ", "),
			p.channel(domain.ChannelFromVersionType(r.Channel)),
		))
	}
}

// Latest prints the newest release of item.
func (p *Printer) Latest(item string, release *domain.Release) {
	if release == nil {
		p.println(fmt.Sprintf("No versions found for mod '%s'", item))
		return
	}

	p.println(fmt.Sprintf("Latest version for mod '%s':", item))
	p.println(fmt.Sprintf("\t%s - %s", release.Name, strings.Join(release.GameVersions, ", ")))
}

// PlatformVersions lists compatible game versions, newest first.
func (p *Printer) PlatformVersions(versions []domain.PlatformVersion) {
	if len(versions) == 0 {
		p.println("No game version is supported by every mod")
		return
	}

	p.println("Compatible versions:")
	for _, v := range versions {
		p.println(fmt.Sprintf("\t%s %s", v.Version, p.channel(v.Channel)))
	}
	p.println(fmt.Sprintf("Max compatible version %s", versions[0].Version))
}

// SearchHits lists search results in registry order.
func (p *Printer) SearchHits(hits []domain.SearchHit) {
	if len(hits) == 0 {
		p.println("No mods found")
		return
	}

	for _, h := range hits {
		p.println(fmt.Sprintf("%s - %s by %s (%d downloads, latest %s)",
			p.out.String(h.Slug).Bold().String(), h.Title, h.Author, h.Downloads, h.LatestVersion))
		if h.Description != "" {
			p.println("\t" + h.Description)
		}
	}
}

// Manifest lists installed items alphabetically.
func (p *Printer) Manifest(m domain.Manifest) {
	if m.Len() == 0 {
		p.println("No mods installed")
		return
	}

	p.println("Installed mods:")
	for _, item := range m.Items() {
		e, _ := m.Get(item)
		line := fmt.Sprintf("\t%s - %s (%s)", item, e.Version, e.Filename)
		if e.Previous != nil {
			line += fmt.Sprintf(" [previous: %s]", e.Previous.Version)
		}
		p.println(line)
	}
}

// Changelog prints the already rendered changelog body of release.
func (p *Printer) Changelog(release domain.Release, body string) {
	p.println(fmt.Sprintf("Changelog for %s:", release.Name))
	if strings.TrimSpace(body) == "" {
		p.println("\t(empty)")
		return
	}
	p.println(strings.TrimRight(body, "\n"))
}

func (p *Printer) channel(c domain.Channel) string {
	var color lipgloss.Color
	switch c {
	case domain.ChannelStable:
		color = style.Stable
	case domain.ChannelPreview:
		color = style.Preview
	case domain.ChannelExperimental:
		color = style.Experimental
	default:
		color = style.Other
	}
	return p.colored("("+string(c)+")", color)
}

func (p *Printer) colored(s string, c lipgloss.Color) string {
	return p.out.String(s).Foreground(termenv.RGBColor(string(c))).String()
}

func (p *Printer) println(line string) {
	_, _ = fmt.Fprintln(p.out, line)
}
