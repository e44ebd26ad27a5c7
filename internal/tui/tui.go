// Package tui implements the Bubble Tea batch preview for zsample.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zsample/internal/customer"
)

type viewID int

const (
	viewList viewID = iota
	viewDetail
)

// WriteFunc persists a batch to path.
type WriteFunc func(path string, records []customer.Record, seed uint64) error

// Model is the root TUI model.
type Model struct {
	version string
	gen     *customer.Generator
	count   int
	output  string
	write   WriteFunc

	records []customer.Record
	seed    uint64
	active  viewID
	list    listModel
	detail  detailModel
	err     error

	// terminal dimensions
	width  int
	height int
}

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

// viewRecordMsg opens the detail view for one record.
type viewRecordMsg struct {
	record customer.Record
}

// regenerateMsg replaces the batch with a fresh one.
type regenerateMsg struct{}

// writeBatchMsg requests writing the current batch.
type writeBatchMsg struct{}

// writeResultMsg reports the outcome of a write.
type writeResultMsg struct {
	path string
	err  error
}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

// New creates the root model and generates the first batch.
func New(version string, gen *customer.Generator, count int, output string, write WriteFunc) Model {
	m := Model{
		version: version,
		gen:     gen,
		count:   count,
		output:  output,
		write:   write,
		active:  viewList,
	}
	return m.regenerate()
}

// Err reports a generation failure, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.height = listHeight(msg.Height)
		return m, nil

	case navigateMsg:
		m.active = msg.view
		return m, tea.ClearScreen

	case viewRecordMsg:
		m.detail = newDetailModel(msg.record)
		m.active = viewDetail
		return m, tea.ClearScreen

	case regenerateMsg:
		m.gen.Reseed(customer.RandomSeed())
		m = m.regenerate()
		if m.err != nil {
			m.list.flash = "generate: " + m.err.Error()
		} else {
			m.list.flash = fmt.Sprintf("new batch (seed %d)", m.seed)
		}
		return m, clearFlashAfter()

	case writeBatchMsg:
		return m, m.writeCmd()

	case writeResultMsg:
		if msg.err != nil {
			m.list.flash = "write: " + msg.err.Error()
		} else {
			m.list.flash = "wrote " + msg.path
		}
		return m, clearFlashAfter()

	case flashMsg:
		m.list.flash = ""
		m.detail.flash = ""
		return m, nil
	}

	return m.updateActive(msg)
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewList:
		m.list, cmd = m.list.Update(msg)
	case viewDetail:
		m.detail, cmd = m.detail.Update(msg)
	}

	return m, cmd
}

func (m Model) View() string {
	var content string
	switch m.active {
	case viewList:
		content = m.list.View()
	case viewDetail:
		content = m.detail.View()
	}

	header := "  " + zstyle.Title.Render("zsample") + " " + zstyle.MutedText.Render(m.version+"  "+viewTitle(m.active))
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// regenerate draws a batch from the generator's current seed. The seed is
// kept with the records so a write stamps the one that produced them.
func (m Model) regenerate() Model {
	seed := m.gen.Seed()
	records, err := m.gen.Batch(m.count)
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.records = records
	m.seed = seed
	height := m.list.height
	m.list = newListModel(records)
	if height > 0 {
		m.list.height = height
	}
	return m
}

func (m Model) writeCmd() tea.Cmd {
	if m.write == nil {
		return nil
	}
	write, path, records, seed := m.write, m.output, m.records, m.seed
	return func() tea.Msg {
		return writeResultMsg{path: path, err: write(path, records, seed)}
	}
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewList:
		return "Batch Preview"
	case viewDetail:
		return "Customer"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewList:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "view"},
			{Key: "n", Desc: "new batch"},
			{Key: "w", Desc: "write"},
			{Key: "q", Desc: "quit"},
		}
	case viewDetail:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

// listHeight leaves room for header, separator, footer and flash.
func listHeight(termHeight int) int {
	h := termHeight - 8
	if h < 3 {
		return 3
	}
	return h
}
