package potsim

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 40

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00D7AF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	labelStyle = lipgloss.NewStyle().
			Width(14)

	selectedLabelStyle = labelStyle.
				Bold(true).
				Foreground(lipgloss.Color("#00D7AF"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AF00"))

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3A3A3A"))

	physicalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500"))

	waitingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500"))
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("pot-head simulator"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("input %.1f  [%.0f … %.0f]\n\n", m.value, m.input.Min, m.input.Max))

	for i, p := range m.pots {
		b.WriteString(m.renderPot(p, i == m.selected))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ move · pgup/pgdn jump · ↑/↓ select · r recall preset · R recall all · e release · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderPot(p *Pot, selected bool) string {
	cfg := p.Head.Config()

	outUnit := toUnit(p.Head.CurrentOutput(), cfg.OutputMin, cfg.OutputMax)
	physUnit := toUnit(p.Head.PhysicalPosition(), cfg.OutputMin, cfg.OutputMax)

	bar := renderBar(outUnit, physUnit)

	label := p.Label
	style := labelStyle
	if selected {
		style = selectedLabelStyle
		label = "▸ " + label
	}

	value := fmt.Sprintf(" %.*f", p.Precision, p.Head.CurrentOutput())
	line := style.Render(label) + bar + value

	if p.Head.IsWaitingForGrab() {
		line += waitingStyle.Render(fmt.Sprintf("  waiting (pot at %.*f)", p.Precision, p.Head.PhysicalPosition()))
	}

	return line
}

// renderBar draws the output as a filled bar and overlays the physical
// position marker, so a held virtual value and the live knob are both
// visible while waiting for a grab.
func renderBar(outUnit, physUnit float64) string {
	filled := int(outUnit*barWidth + 0.5)
	if filled > barWidth {
		filled = barWidth
	}

	marker := int(physUnit * (barWidth - 1))
	if marker < 0 {
		marker = 0
	}
	if marker > barWidth-1 {
		marker = barWidth - 1
	}

	var b strings.Builder
	for i := 0; i < barWidth; i++ {
		switch {
		case i == marker:
			b.WriteString(physicalStyle.Render("┃"))
		case i < filled:
			b.WriteString(barStyle.Render("█"))
		default:
			b.WriteString(barEmptyStyle.Render("░"))
		}
	}

	return b.String()
}

// toUnit maps an output-domain value to [0, 1] for bar geometry, honoring
// reversed ranges.
func toUnit(value, min, max float64) float64 {
	u := (value - min) / (max - min)
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}
	return u
}
