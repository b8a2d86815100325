package tui

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/randomtoy/kinun-go/internal/app"
	"github.com/randomtoy/kinun-go/internal/domain"
)

const statusTTL = 3 * time.Second

// Form fields in focus order.
const (
	fieldYear = iota
	fieldMonth
	fieldDay
	fieldCount
)

// unselected marks a select with no choice made.
const unselected = -1

// statusClearMsg clears the status line if no newer status replaced it.
type statusClearMsg struct{ seq int }

// Model renders an app.Session.
type Model struct {
	ctx     context.Context
	session *app.Session
	keys    KeyMap

	focus   int
	choices [fieldCount]int

	errMsg    string
	status    string
	statusOK  bool
	statusSeq int

	modalOpen bool
	qr        app.QRView

	width int
}

// NewModel returns a model for session, which should be in StateIntro.
func NewModel(ctx context.Context, session *app.Session) Model {
	m := Model{
		ctx:     ctx,
		session: session,
		keys:    DefaultKeyMap(),
	}
	m.resetForm()
	return m
}

func (m *Model) resetForm() {
	m.focus = fieldYear
	for i := range m.choices {
		m.choices[i] = unselected
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.session.State() {
		case app.StateIntro:
			return m.updateIntro(msg)
		case app.StateForm:
			return m.updateForm(msg)
		case app.StateResult:
			if m.modalOpen {
				return m.updateModal(msg)
			}
			return m.updateResult(msg)
		}
	}
	return m, nil
}

func (m Model) updateIntro(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Enter) {
		if err := m.session.Open(); err != nil {
			m.errMsg = err.Error()
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	case key.Matches(msg, m.keys.Right):
		m.focus = (m.focus + 1) % fieldCount
	case key.Matches(msg, m.keys.Down):
		m.step(1)
	case key.Matches(msg, m.keys.Up):
		m.step(-1)
	case key.Matches(msg, m.keys.Enter):
		if _, err := m.session.Submit(m.formInput()); err != nil {
			m.errMsg = userText(err)
			return m, nil
		}
		m.errMsg = ""
	}
	return m, nil
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Retry):
		if err := m.session.Retry(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.resetForm()
		m.status = ""
	case key.Matches(msg, m.keys.Share):
		view, err := m.session.QR()
		if err != nil {
			return m.setStatus(userText(err), false)
		}
		m.qr = view
		m.modalOpen = true
	case key.Matches(msg, m.keys.Copy):
		return m.copyMessage()
	}
	return m, nil
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Share):
		m.modalOpen = false
	case key.Matches(msg, m.keys.Copy):
		return m.copyMessage()
	}
	return m, nil
}

func (m Model) copyMessage() (tea.Model, tea.Cmd) {
	if err := m.session.Copy(m.ctx); err != nil {
		return m.setStatus(userText(err), false)
	}
	return m.setStatus("コピーしました！", true)
}

func (m Model) setStatus(text string, ok bool) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	m.statusOK = ok
	seq := m.statusSeq
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return statusClearMsg{seq: seq} })
}

// step moves the focused select by delta, wrapping around its options.
// From unselected, moving down picks the first option and up the last.
func (m *Model) step(delta int) {
	n := len(m.options(m.focus))
	if n == 0 {
		return
	}
	cur := m.choices[m.focus]
	switch {
	case cur == unselected && delta > 0:
		cur = 0
	case cur == unselected:
		cur = n - 1
	default:
		cur = (cur + delta + n) % n
	}
	m.choices[m.focus] = cur
}

func (m Model) options(field int) []int {
	opts := m.session.Options()
	switch field {
	case fieldYear:
		return opts.Years
	case fieldMonth:
		return opts.Months
	default:
		return opts.Days
	}
}

func (m Model) value(field int) string {
	idx := m.choices[field]
	if idx == unselected {
		return ""
	}
	return strconv.Itoa(m.options(field)[idx])
}

func (m Model) formInput() app.FormInput {
	return app.FormInput{
		Year:  m.value(fieldYear),
		Month: m.value(fieldMonth),
		Day:   m.value(fieldDay),
	}
}

func userText(err error) string {
	if msg := domain.UserMessage(err); msg != "" {
		return msg
	}
	if errors.Is(err, domain.ErrFeatureDisabled) {
		return "この機能は無効です。"
	}
	return err.Error()
}
