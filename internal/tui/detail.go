package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zsample/internal/customer"
)

// recordField represents a labeled field for display and selection.
type recordField struct {
	label string
	value string
}

// detailModel displays all fields of one record.
type detailModel struct {
	record customer.Record
	fields []recordField
	cursor int
	flash  string
	copy   func(string) error
}

func newDetailModel(r customer.Record) detailModel {
	return detailModel{
		record: r,
		fields: recordFields(r),
		copy:   copyToClipboard,
	}
}

// recordFields pairs each column name with the record's value.
func recordFields(r customer.Record) []recordField {
	row := r.Row()
	fields := make([]recordField, len(customer.Columns))
	for i, c := range customer.Columns {
		fields[i] = recordField{label: c, value: row[i]}
	}
	return fields
}

func (m detailModel) Init() tea.Cmd {
	return nil
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m detailModel) handleKey(msg tea.KeyMsg) (detailModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewList} }
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.copyText(m.fields[m.cursor].value, "copied!")
	}

	if msg.String() == "c" {
		return m.copyText(m.allFieldsText(), "copied all!")
	}

	return m, nil
}

func (m detailModel) copyText(text, ok string) (detailModel, tea.Cmd) {
	if text == "" {
		m.flash = "nothing to copy"
		return m, clearFlashAfter()
	}
	if err := m.copy(text); err != nil {
		m.flash = "copy: " + err.Error()
		return m, clearFlashAfter()
	}
	m.flash = ok
	return m, clearFlashAfter()
}

func (m detailModel) allFieldsText() string {
	var b strings.Builder
	for _, f := range m.fields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	return b.String()
}

func (m detailModel) View() string {
	s := "\n  " + zstyle.Subtitle.Render(m.record.Name) + "\n\n"

	for i, f := range m.fields {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-13s", f.label))
		value := f.value
		if value == "" {
			value = zstyle.MutedText.Render("-")
		}
		if i == m.cursor {
			s += "  " + zstyle.Highlight.Render("▸") + " " + label + " " + value + "\n"
		} else {
			s += "    " + label + " " + value + "\n"
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
