package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/profileform/internal/form"
	"github.com/verte-zerg/profileform/internal/i18n"
)

const defaultAccent = "#C89A3A"

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type styles struct {
	accent     lipgloss.Color
	focused    lipgloss.Style
	title      lipgloss.Style
	input      lipgloss.Style
	inputError lipgloss.Style
	button     lipgloss.Style
	buttonOn   lipgloss.Style
}

func newStyles(accent string) styles {
	if strings.TrimSpace(accent) == "" {
		accent = defaultAccent
	}
	color := lipgloss.Color(accent)
	input := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6E6E6E")).Padding(0, 1)
	return styles{
		accent:     color,
		focused:    lipgloss.NewStyle().Foreground(color).Bold(true),
		title:      lipgloss.NewStyle().Foreground(color).Bold(true),
		input:      input,
		inputError: input.BorderForeground(lipgloss.Color("#FF4D4F")),
		button:     lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder()),
		buttonOn:   lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder()).BorderForeground(color).Foreground(color).Bold(true),
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	content := m.renderForm()
	if m.width == 0 || m.height == 0 {
		return content
	}
	footer := footerStyle.Render(m.help.View(m.keys))
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderForm() string {
	width := m.contentWidth()
	sections := []string{
		lipgloss.PlaceHorizontal(width, lipgloss.Center, mutedStyle.Render(avatar())),
		m.renderName(width),
		m.renderAge(),
		m.renderGender(),
		m.renderSubscribe(),
		m.renderSend(width),
	}
	if sum, ok := form.SummaryFor(m.state, m.catalog); ok {
		sections = append(sections, m.renderSummary(sum, width))
	}
	if m.status != "" {
		sections = append(sections, mutedStyle.Render(m.status))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(sections, "\n\n"))
}

func (m *Model) renderName(width int) string {
	label := m.fieldLabel(fieldName, m.catalog.Text(i18n.EnterName))
	box := m.styles.input
	if m.state.NameError {
		box = m.styles.inputError
	}
	lines := []string{label, box.Width(width - 2).Render(m.nameInput.View())}
	if m.state.NameError {
		lines = append(lines, errorStyle.Render(wrapText(m.catalog.Text(i18n.ErrorName), width)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderAge() string {
	label := m.fieldLabel(fieldAge, fmt.Sprintf("%s: %d", m.catalog.Text(i18n.Age), m.state.Age))
	return label + "\n" + m.ageBar.ViewAs(agePercent(m.state.Age))
}

func (m *Model) renderGender() string {
	label := m.fieldLabel(fieldGender, m.catalog.Text(i18n.Gender))
	male := radio(m.state.Gender == form.Male) + " " + m.catalog.Text(i18n.Male)
	female := radio(m.state.Gender == form.Female) + " " + m.catalog.Text(i18n.Female)
	return label + "\n" + labelStyle.Render(male+"   "+female)
}

func (m *Model) renderSubscribe() string {
	return m.fieldLabel(fieldSubscribe, checkbox(m.state.Subscribed)+" "+m.catalog.Text(i18n.Subscribe))
}

func (m *Model) renderSend(width int) string {
	style := m.styles.button
	if m.focus == fieldSend {
		style = m.styles.buttonOn
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(m.catalog.Text(i18n.Send)))
}

func (m *Model) renderSummary(sum form.Summary, width int) string {
	lines := []string{m.styles.title.Render(sum.Title)}
	for _, line := range alignSummary(sum.Lines) {
		lines = append(lines, labelStyle.Render(wrapText(line, width)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) fieldLabel(f field, text string) string {
	if m.focus == f {
		return m.styles.focused.Render("› " + text)
	}
	return labelStyle.Render("  " + text)
}

func radio(selected bool) string {
	if selected {
		return "(•)"
	}
	return "( )"
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func agePercent(age int) float64 {
	return float64(form.ClampAge(age)-form.MinAge) / float64(form.MaxAge-form.MinAge)
}
