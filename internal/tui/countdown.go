package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/darkroom/server/internal/countdown"
)

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// CountdownModel shows the page-level reveal countdown and the 24h
// developing countdown side by side.
type CountdownModel struct {
	reveal   *countdown.Countdown
	develop  *countdown.Countdown
	interval time.Duration
	styles   Styles
	footer   string
}

// NewCountdownModel creates the screen. Both countdowns are computed once
// from now and only move on ticks afterwards.
func NewCountdownModel(revealAt, now time.Time) CountdownModel {
	return CountdownModel{
		reveal:   countdown.FromTarget(revealAt, now),
		develop:  countdown.FromDuration(countdown.DevelopDuration),
		interval: time.Second,
		styles:   DefaultStyles(),
	}
}

// WithFooter sets a line rendered under the clocks.
func (m CountdownModel) WithFooter(s string) CountdownModel {
	m.footer = s
	return m
}

// Reveal returns the page-level countdown.
func (m CountdownModel) Reveal() *countdown.Countdown { return m.reveal }

// Develop returns the developing countdown.
func (m CountdownModel) Develop() *countdown.Countdown { return m.develop }

func (m CountdownModel) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m CountdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tickMsg:
		m.reveal.Tick()
		m.develop.Tick()
		return m, tickCmd(m.interval)
	}
	return m, nil
}

func (m CountdownModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Your photos are developing"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render("Reveal in   "))
	b.WriteString(m.styles.Clock.Render(m.reveal.String()))
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Developing  "))
	b.WriteString(m.styles.Clock.Render(m.develop.String()))
	b.WriteString("\n")

	if m.reveal.Done() {
		b.WriteString("\n")
		b.WriteString(m.styles.Success.Render("Photos are ready!"))
		b.WriteString("\n")
	}
	if m.footer != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(m.footer))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("q to quit"))
	return m.styles.Panel.Render(b.String())
}
