// Package report renders audit results for people.
package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/joshsymonds/orgaudit/internal/audit"
	"github.com/joshsymonds/orgaudit/internal/config"
	"github.com/joshsymonds/orgaudit/internal/models"
)

// DefaultWidth is the width of banner and section rules.
const DefaultWidth = 80

const (
	bullet    = "•"
	checkMark = "✓"
)

// TextRenderer writes the plain-text audit report.
type TextRenderer struct {
	w      io.Writer
	styles styles
	width  int
	color  bool
}

// RendererOption configures a TextRenderer.
type RendererOption func(*TextRenderer)

// WithColor forces styling on or off. By default styling is on only when the
// writer is a terminal.
func WithColor(enabled bool) RendererOption {
	return func(r *TextRenderer) {
		r.color = enabled
	}
}

// WithWidth sets the width of banners and rules.
func WithWidth(width int) RendererOption {
	return func(r *TextRenderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// NewTextRenderer creates a renderer that writes to w.
func NewTextRenderer(w io.Writer, opts ...RendererOption) *TextRenderer {
	r := &TextRenderer{
		w:     w,
		width: DefaultWidth,
		color: IsTerminal(w),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.styles = newStyles(r.color)
	return r
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Render writes the full report for result.
func (r *TextRenderer) Render(result *audit.Result, policy config.Policy) error {
	if result == nil {
		return fmt.Errorf("no audit result to render")
	}

	var b strings.Builder
	r.banner(&b, "organizational structure analysis")
	b.WriteString(r.styles.muted.Render(fmt.Sprintf("Employees analyzed: %d (%d managers)",
		result.Summary.Employees, result.Summary.Managers)))
	b.WriteString("\n\n")

	r.salarySection(&b, result, policy)
	b.WriteString("\n")
	r.spanSection(&b, result, policy)
	b.WriteString("\n")

	r.banner(&b, "analysis complete")

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func (r *TextRenderer) salarySection(b *strings.Builder, result *audit.Result, policy config.Policy) {
	r.section(b, "salary analysis")

	if len(result.Compensation) == 0 {
		r.check(b, fmt.Sprintf("All manager salaries are within acceptable range (%s-%s above average).",
			percentAbove(policy.Salary.MinRatio), percentAbove(policy.Salary.MaxRatio)))
		return
	}

	underpaid, overpaid := result.Underpaid(), result.Overpaid()
	r.compensationGroup(b, "Managers earning LESS than they should:", underpaid)
	r.compensationGroup(b, "Managers earning MORE than they should:", overpaid)

	b.WriteString("\n")
	b.WriteString(r.styles.total.Render(fmt.Sprintf("Total issues found: %d (%d underpaid, %d overpaid)",
		len(result.Compensation), len(underpaid), len(overpaid))))
	b.WriteString("\n")
}

func (r *TextRenderer) compensationGroup(b *strings.Builder, heading string, findings []models.CompensationFinding) {
	if len(findings) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(r.styles.heading.Render(heading))
	b.WriteString("\n\n")

	style := r.styles.over
	if findings[0].TooLow() {
		style = r.styles.under
	}
	for _, f := range findings {
		fmt.Fprintf(b, "  %s %s\n", style.Render(bullet), f.String())
	}
}

func (r *TextRenderer) spanSection(b *strings.Builder, result *audit.Result, policy config.Policy) {
	r.section(b, "reporting line analysis")

	if len(result.Span) == 0 {
		r.check(b, fmt.Sprintf("All employees have acceptable reporting line length (max %d managers).", policy.MaxDepth))
		return
	}

	b.WriteString("\n")
	b.WriteString(r.styles.heading.Render("Employees with reporting lines that are TOO LONG:"))
	b.WriteString("\n\n")

	for _, f := range result.Span {
		fmt.Fprintf(b, "  %s %s has a reporting line that is too long by %d level(s) (%d managers between employee and CEO, maximum is %d)\n",
			r.styles.over.Render(bullet), f.Employee.FullName(), f.Excess, f.ManagersBetween, policy.MaxDepth)
		fmt.Fprintf(b, "    Reporting chain: %s\n\n", r.styles.muted.Render(strings.Join(f.ChainNames(), " -> ")))
	}

	b.WriteString(r.styles.total.Render(fmt.Sprintf("Total issues found: %d", len(result.Span))))
	b.WriteString("\n")
}

func (r *TextRenderer) banner(b *strings.Builder, title string) {
	rule := strings.Repeat("=", r.width)
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(r.styles.banner.Render(cases.Upper(language.English).String(title)))
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
}

func (r *TextRenderer) section(b *strings.Builder, title string) {
	b.WriteString(r.styles.section.Render(cases.Upper(language.English).String(title)))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", r.width))
	b.WriteString("\n")
}

func (r *TextRenderer) check(b *strings.Builder, msg string) {
	b.WriteString(r.styles.ok.Render(checkMark + " " + msg))
	b.WriteString("\n")
}

// percentAbove formats a salary ratio as the percentage above average it
// allows, so 1.2 becomes "20%".
func percentAbove(ratio float64) string {
	pct := math.Round((ratio-1)*1000) / 10
	if pct == math.Trunc(pct) {
		return fmt.Sprintf("%.0f%%", pct)
	}
	return fmt.Sprintf("%.1f%%", pct)
}
