package potsim

import (
	tea "github.com/charmbracelet/bubbletea"
)

// presetRecallFraction is where a simulated preset recall parks the virtual
// value, as a fraction of the output range.
const presetRecallFraction = 0.75

// Model is the Bubble Tea model for the simulator. One simulated raw input
// drives every pot, so differently configured pipelines can be compared
// side by side.
type Model struct {
	input InputSpec
	value float64
	pots  []*Pot

	selected int
	width    int
}

// NewModel builds the model and primes every pot with the initial input.
func NewModel(input InputSpec, pots []*Pot) Model {
	step := input.Step
	if step <= 0 {
		step = (input.Max - input.Min) / 100
	}
	input.Step = step

	m := Model{
		input: input,
		value: input.Min,
		pots:  pots,
	}
	m.process()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "left", "h":
			m.adjust(-m.input.Step)

		case "right", "l":
			m.adjust(m.input.Step)

		case "pgdown":
			m.adjust(-10 * m.input.Step)

		case "pgup":
			m.adjust(10 * m.input.Step)

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.pots)-1 {
				m.selected++
			}

		case "r":
			m.recall(m.pots[m.selected])

		case "R":
			for _, p := range m.pots {
				m.recall(p)
			}

		case "e":
			m.pots[m.selected].Head.Release()

		case "home":
			m.value = m.input.Min
			m.process()

		case "end":
			m.value = m.input.Max
			m.process()
		}
	}

	return m, nil
}

func (m *Model) adjust(delta float64) {
	m.value += delta
	if m.value < m.input.Min {
		m.value = m.input.Min
	}
	if m.value > m.input.Max {
		m.value = m.input.Max
	}
	m.process()
}

func (m *Model) process() {
	for _, p := range m.pots {
		p.Head.Update(m.value)
	}
}

// recall simulates a preset load: a new virtual value lands away from the
// physical position and the pot must be grabbed again.
func (m *Model) recall(p *Pot) {
	min, max := outputRange(p)
	p.Head.SetVirtualValue(min + presetRecallFraction*(max-min))
}

func outputRange(p *Pot) (min, max float64) {
	cfg := p.Head.Config()
	return cfg.OutputMin, cfg.OutputMax
}
