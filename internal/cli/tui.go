package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/compliance"
	"github.com/brandforge/adcanvas/pkg/format"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ReportModel - Interactive compliance report browser
// =============================================================================

// ReportModel is the bubbletea model for browsing a compliance report.
// The check list is navigable; the selected check's full message is shown
// below the table.
type ReportModel struct {
	Report   compliance.Report
	FormatID string
	Cursor   int
}

// NewReportModel creates a report browser for the given report.
func NewReportModel(report compliance.Report, formatID string) ReportModel {
	return ReportModel{Report: report, FormatID: formatID}
}

func (m ReportModel) Init() tea.Cmd {
	return nil
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Report.Checks)-1 {
				m.Cursor++
			}
		}
	}
	return m, nil
}

func (m ReportModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Compliance Report"))
	b.WriteString(listDimStyle.Render("  " + m.FormatID))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	rows := [][]string{}
	for i, check := range m.Report.Checks {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		severity := "—"
		if check.Severity > 0 {
			severity = fmt.Sprintf("%d", check.Severity)
		}
		rows = append(rows, []string{cursor, statusText(check.Status), check.Label, severity})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Status", "Check", "Severity").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= len(m.Report.Checks) {
				return lipgloss.NewStyle()
			}
			check := m.Report.Checks[row]

			base := lipgloss.NewStyle()
			if col == 1 {
				base = base.Foreground(statusColor(check.Status))
			}
			if row == m.Cursor {
				return base.Bold(true)
			}
			if check.Status == canvas.StatusPass {
				return base.Foreground(colorDim)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	if m.Cursor < len(m.Report.Checks) {
		selected := m.Report.Checks[m.Cursor]
		msg := selected.Message
		if msg == "" {
			msg = "no issues found"
		}
		b.WriteString("  " + statusIcon(selected.Status) + " " + listNormalStyle.Render(msg))
		b.WriteString("\n\n")
	}

	b.WriteString("  " + StyleDim.Render("score") + " " +
		scoreStyle(m.Report.Score).Bold(true).Render(fmt.Sprintf("%d/100", m.Report.Score)))
	b.WriteString("\n")

	return b.String()
}

// statusText maps a check outcome to a short table cell.
func statusText(status canvas.CheckStatus) string {
	switch status {
	case canvas.StatusPass:
		return "pass"
	case canvas.StatusWarning:
		return "warn"
	default:
		return "fail"
	}
}

// statusColor maps a check outcome to its display color.
func statusColor(status canvas.CheckStatus) lipgloss.Color {
	switch status {
	case canvas.StatusPass:
		return colorGreen
	case canvas.StatusWarning:
		return colorYellow
	default:
		return colorRed
	}
}

// =============================================================================
// FormatListModel - Interactive format selection
// =============================================================================

// FormatListModel is the bubbletea model for picking a target format.
type FormatListModel struct {
	Formats  []format.Descriptor
	Cursor   int
	Selected *format.Descriptor
}

// NewFormatListModel creates a format list model over the catalog's formats.
func NewFormatListModel(formats []format.Descriptor) FormatListModel {
	return FormatListModel{Formats: formats}
}

func (m FormatListModel) Init() tea.Cmd {
	return nil
}

func (m FormatListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Formats)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Formats[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m FormatListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Target Format"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, fd := range m.Formats {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		dims := fmt.Sprintf("%.0f×%.0f", fd.Width, fd.Height)
		line := fmt.Sprintf("%s%-20s %-12s %s", cursor, fd.ID, dims, listDimStyle.Render(fd.Name))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Formats))))

	return b.String()
}
