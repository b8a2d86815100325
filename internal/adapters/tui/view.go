package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/randomtoy/kinun-go/internal/app"
	"github.com/randomtoy/kinun-go/internal/domain"
)

const appTitle = "金運開花の扉"

var fieldSuffix = [fieldCount]string{"年", "月", "日"}

func (m Model) View() string {
	var body string
	switch m.session.State() {
	case app.StateIntro:
		body = m.viewIntro()
	case app.StateForm:
		body = m.viewForm()
	case app.StateResult:
		if m.modalOpen {
			body = m.viewModal()
		} else {
			body = m.viewResult()
		}
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("✦ "+appTitle+" ✦") + "\n\n")
	b.WriteString(body)
	if m.errMsg != "" {
		b.WriteString("\n" + styleError.Render(m.errMsg))
	}
	if m.status != "" {
		style := styleError
		if m.statusOK {
			style = styleSuccess
		}
		b.WriteString("\n" + style.Render(m.status))
	}
	b.WriteString("\n\n" + m.viewHelp())
	return b.String()
}

func (m Model) viewIntro() string {
	door := styleDoor.Render("金運開花の扉\n\n生年月日から、あなたの金運タイプを診断します")
	return door + "\n\n" + styleMuted.Render("enter で扉を開く")
}

func (m Model) viewForm() string {
	selects := make([]string, fieldCount)
	for f := 0; f < fieldCount; f++ {
		label := "----" + fieldSuffix[f]
		if v := m.value(f); v != "" {
			label = v + fieldSuffix[f]
		}
		style := styleSelect
		if f == m.focus {
			style = styleSelectOn
		}
		selects[f] = style.Render(label)
	}
	return styleLabel.Render("生年月日を選択してください") + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, selects...)
}

func (m Model) viewResult() string {
	res, ok := m.session.Current()
	if !ok {
		return ""
	}
	a := res.Diagnosis.Archetype

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", styleEmblem.Render(a.Emblem))
	fmt.Fprintf(&b, "%s\n", styleTitle.Render(res.TypeName))
	fmt.Fprintf(&b, "%s\n\n", a.Tagline)
	fmt.Fprintf(&b, "%s\n%s\n\n", styleLabel.Render("金運スタイル"), a.Style)
	fmt.Fprintf(&b, "%s\n%s\n\n", styleLabel.Render("金運開花のタネ"), a.Tip)
	fmt.Fprintf(&b, "%s %s", styleMuted.Render(domain.FormatDate(res.Diagnosis.Date)), styleMuted.Render("("+a.Name+" "+a.Reading+")"))
	card := styleCard.Render(b.String())

	return card + "\n\n" + styleLabel.Render("LINEで詳しく聞く") + "\n" + styleLink.Render(res.MessageURL)
}

func (m Model) viewModal() string {
	preview, _ := m.session.Preview()

	var b strings.Builder
	b.WriteString(styleLabel.Render("LINEで友だち追加") + "\n")
	if m.qr.Text != "" {
		b.WriteString(m.qr.Text + "\n")
	} else {
		b.WriteString(styleMuted.Render("QRコード画像: ") + styleLink.Render(m.qr.FallbackURL) + "\n")
	}
	b.WriteString(styleLink.Render(m.qr.AddFriendURL) + "\n\n")
	b.WriteString(styleLabel.Render("送信するメッセージ") + "\n")
	b.WriteString(preview)
	return styleModal.Render(b.String())
}

func (m Model) viewHelp() string {
	var bindings []key.Binding
	switch m.session.State() {
	case app.StateIntro:
		bindings = []key.Binding{m.keys.Enter, m.keys.Quit}
	case app.StateForm:
		bindings = []key.Binding{m.keys.Left, m.keys.Right, m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Quit}
	case app.StateResult:
		if m.modalOpen {
			bindings = []key.Binding{m.keys.Copy, m.keys.Back, m.keys.Quit}
		} else {
			bindings = []key.Binding{m.keys.Share, m.keys.Copy, m.keys.Retry, m.keys.Quit}
		}
	}

	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return styleMuted.Render(strings.Join(parts, " • "))
}
