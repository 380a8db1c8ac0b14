package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/phasecast/internal/forecast"
)

const (
	graphWidth  = 80
	graphHeight = 14
	historyTail = 120
)

type TickMsg time.Time

// Model replays a completed forecast run step by step.
type Model struct {
	title    string
	history  []float64 // series tail, original units
	values   []float64 // forecast, original units
	records  []forecast.StepRecord
	shown    int
	playing  bool
	interval time.Duration
}

// NewModel builds a replay over a series tail and forecast output.
func NewModel(title string, history, values []float64, records []forecast.StepRecord, fps int) Model {
	if len(history) > historyTail {
		history = history[len(history)-historyTail:]
	}
	if fps <= 0 {
		fps = 10
	}
	return Model{
		title:    title,
		history:  history,
		values:   values,
		records:  records,
		playing:  true,
		interval: time.Second / time.Duration(fps),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
			if m.playing {
				return m, m.tick()
			}
			return m, nil
		case "r":
			m.shown = 0
			m.playing = true
			return m, m.tick()
		}
	case TickMsg:
		if m.playing && m.shown < len(m.values) {
			m.shown++
		}
		if m.playing {
			return m, m.tick()
		}
	}
	return m, nil
}

func (m Model) View() string {
	data := make([]float64, 0, len(m.history)+m.shown)
	data = append(data, m.history...)
	data = append(data, m.values[:m.shown]...)

	graph := ""
	if len(data) >= 2 {
		graph = asciigraph.Plot(data,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption(fmt.Sprintf("%s + %d-step forecast", m.title, len(m.values))),
		)
	}

	var stats strings.Builder
	stats.WriteString(labelStyle.Render("step") + valueStyle.Render(fmt.Sprintf("%d / %d", m.shown, len(m.values))) + "\n")
	if m.shown > 0 && m.shown <= len(m.records) {
		rec := m.records[m.shown-1]
		stats.WriteString(labelStyle.Render("mode") + modeStyle.Render(string(rec.Mode)) + "\n")
		stats.WriteString(labelStyle.Render("predicted") + valueStyle.Render(fmt.Sprintf("%.4f", rec.Predicted)) + "\n")
		switch rec.Mode {
		case forecast.ModeObserved:
			stats.WriteString(labelStyle.Render("true") + valueStyle.Render(fmt.Sprintf("%.4f", rec.True)) + "\n")
			stats.WriteString(labelStyle.Render("error") + valueStyle.Render(fmt.Sprintf("%+.4f", rec.Error)) + "\n")
		case forecast.ModeCorrected:
			stats.WriteString(labelStyle.Render("corrected") + valueStyle.Render(fmt.Sprintf("%.4f", rec.Corrected)) + "\n")
		}
	}
	state := "playing"
	if !m.playing {
		state = "paused"
	}
	stats.WriteString(labelStyle.Render("state") + valueStyle.Render(state))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		graphStyle.Render(graph),
		statsStyle.Render(stats.String()),
	)

	return headerStyle.Render("phasecast replay") + "\n" +
		body + "\n" +
		helpStyle.Render("space pause · r restart · q quit")
}

// Run launches the replay and blocks until the user quits.
func Run(title string, history, values []float64, records []forecast.StepRecord, fps int) error {
	p := tea.NewProgram(NewModel(title, history, values, records, fps))
	_, err := p.Run()
	return err
}
