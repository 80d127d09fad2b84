package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	banner  lipgloss.Style
	section lipgloss.Style
	heading lipgloss.Style
	total   lipgloss.Style
	muted   lipgloss.Style
	ok      lipgloss.Style
	under   lipgloss.Style
	over    lipgloss.Style
}

// newStyles returns the report palette. Without color every style renders
// its input unchanged.
func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			banner: plain, section: plain, heading: plain, total: plain,
			muted: plain, ok: plain, under: plain, over: plain,
		}
	}

	return styles{
		banner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		section: lipgloss.NewStyle().Bold(true),
		heading: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		total:   lipgloss.NewStyle().Bold(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		under:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		over:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
