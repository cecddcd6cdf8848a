package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/darkroom/server/internal/phone"
	"github.com/darkroom/server/internal/workflow"
)

// ShakeDuration is how long an invalid field stays in the shake state.
const ShakeDuration = 500 * time.Millisecond

type shakeDoneMsg struct{ seq int }

type submitResultMsg struct {
	message string
	err     error
}

// PhoneModel is the notification sign-up form. The field is reformatted
// on every keystroke.
type PhoneModel struct {
	ctx       context.Context
	submitter workflow.PhoneSubmitter
	input     textinput.Model
	styles    Styles

	fieldErr   string
	submitErr  string
	message    string
	shaking    bool
	shakeSeq   int
	submitting bool
	done       bool
}

// NewPhoneModel creates the form.
func NewPhoneModel(ctx context.Context, submitter workflow.PhoneSubmitter) PhoneModel {
	ti := textinput.New()
	ti.Placeholder = "(555) 123-4567"
	ti.CharLimit = 20
	ti.Width = 20
	ti.Focus()

	return PhoneModel{
		ctx:       ctx,
		submitter: submitter,
		input:     ti,
		styles:    DefaultStyles(),
	}
}

// Value returns the formatted field content.
func (m PhoneModel) Value() string { return m.input.Value() }

// FieldError returns the validation message, if any.
func (m PhoneModel) FieldError() string { return m.fieldErr }

// SubmitError returns the submission failure message, if any.
func (m PhoneModel) SubmitError() string { return m.submitErr }

// Message returns the confirmation shown after a successful submit.
func (m PhoneModel) Message() string { return m.message }

// Shaking reports whether the field is in the transient invalid state.
func (m PhoneModel) Shaking() bool { return m.shaking }

// Submitting reports whether a submission is in flight.
func (m PhoneModel) Submitting() bool { return m.submitting }

// Done reports whether the number was saved.
func (m PhoneModel) Done() bool { return m.done }

func (m PhoneModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PhoneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.done {
				return m, tea.Quit
			}
			return m.submit()
		}
		if m.done || m.submitting {
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.input.SetValue(phone.Format(m.input.Value()))
		m.input.CursorEnd()
		m.fieldErr = ""
		return m, cmd

	case shakeDoneMsg:
		if msg.seq == m.shakeSeq {
			m.shaking = false
		}
		return m, nil

	case submitResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.submitErr = workflow.PhoneNotSavedMessage
			return m, nil
		}
		m.done = true
		m.message = msg.message
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PhoneModel) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.submitErr = ""

	if _, err := phone.Normalize(m.input.Value()); err != nil {
		m.fieldErr = phone.InvalidMessage
		m.shaking = true
		m.shakeSeq++
		seq := m.shakeSeq
		return m, tea.Tick(ShakeDuration, func(time.Time) tea.Msg {
			return shakeDoneMsg{seq: seq}
		})
	}

	m.submitting = true
	ctx, submitter, raw := m.ctx, m.submitter, m.input.Value()
	return m, func() tea.Msg {
		msg, err := workflow.SubmitPhone(ctx, submitter, raw)
		return submitResultMsg{message: msg, err: err}
	}
}

func (m PhoneModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Get a text when your photos are ready"))
	b.WriteString("\n\n")

	if m.done {
		b.WriteString(m.styles.Success.Render(m.message))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("enter to close"))
		return m.styles.Panel.Render(b.String())
	}

	field := m.input.View()
	if m.shaking {
		field = "  " + field
	}
	b.WriteString(field)
	b.WriteString("\n")

	if m.fieldErr != "" {
		b.WriteString(m.styles.Error.Render(m.fieldErr))
		b.WriteString("\n")
	}
	if m.submitErr != "" {
		b.WriteString(m.styles.Error.Render(m.submitErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString(m.styles.Muted.Render("Saving..."))
	} else {
		b.WriteString(m.styles.Muted.Render("enter to submit, esc to quit"))
	}
	return m.styles.Panel.Render(b.String())
}
