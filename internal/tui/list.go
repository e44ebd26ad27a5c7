package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zsample/internal/customer"
)

const defaultListHeight = 15

var (
	nameCol  = lipgloss.NewStyle().Width(22)
	phoneCol = lipgloss.NewStyle().Width(12)
)

// listModel displays a batch in a scrollable list.
type listModel struct {
	records []customer.Record
	summary customer.Summary
	cursor  int
	offset  int
	height  int
	flash   string
}

func newListModel(records []customer.Record) listModel {
	return listModel{
		records: records,
		summary: customer.Summarize(records),
		height:  defaultListHeight,
	}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m listModel) handleKey(msg tea.KeyMsg) (listModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	switch msg.String() {
	case "n":
		return m, func() tea.Msg { return regenerateMsg{} }
	case "w":
		return m, func() tea.Msg { return writeBatchMsg{} }
	}

	if len(m.records) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		m.scroll()
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
		m.scroll()
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		r := m.records[m.cursor]
		return m, func() tea.Msg { return viewRecordMsg{record: r} }
	}

	return m, nil
}

// scroll keeps the cursor inside the visible window.
func (m *listModel) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m listModel) View() string {
	s := "\n"

	if len(m.records) == 0 {
		s += "  " + zstyle.MutedText.Render("empty batch") + "\n\n\n"
		return s
	}

	end := min(m.offset+m.height, len(m.records))
	for i := m.offset; i < end; i++ {
		r := m.records[i]
		line := nameCol.Render(truncate(r.Name, 21)) + " " + phoneCol.Render(r.Phone) + " " + truncate(r.Email, 32)

		if i == m.cursor {
			s += "  " + zstyle.Highlight.Render("▸") + " " + line + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	s += "\n  " + zstyle.MutedText.Render(fmt.Sprintf(
		"%d/%d  %d with email  %d with consent  %d unique phones",
		m.cursor+1, m.summary.Total, m.summary.WithEmail, m.summary.WithConsent, m.summary.UniquePhones,
	)) + "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}

// truncate cuts s to width display cells, ending in an ellipsis.
func truncate(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}
