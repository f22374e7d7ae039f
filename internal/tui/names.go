package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/infogen/internal/name"
)

const maxShownResults = 15

var genderCycle = []name.Gender{name.All, name.Boy, name.Girl}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

// namesModel generates batches of names interactively.
type namesModel struct {
	gen       *name.Generator
	countIn   textinput.Model
	genderIdx int
	results   []string
	flash     string
}

func newNamesModel(gen *name.Generator) namesModel {
	ti := textinput.New()
	ti.CharLimit = 6
	ti.Width = 8
	ti.Prompt = ""
	ti.SetValue("10")
	ti.Focus()

	return namesModel{gen: gen, countIn: ti}
}

func (m namesModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m namesModel) Update(msg tea.Msg) (namesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m namesModel) handleKey(msg tea.KeyMsg) (namesModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if key.Matches(msg, zstyle.KeyTab) {
		m.genderIdx = (m.genderIdx + 1) % len(genderCycle)
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.generate()
	}

	// digits edit the count field; letters act as commands
	if len(msg.Runes) == 1 {
		switch r := msg.Runes[0]; {
		case r >= '0' && r <= '9':
			return m.updateInput(msg)
		case r == 'q':
			return m, tea.Quit
		case r == 'c':
			return m.copyResults()
		case r == 'e':
			return m.exportResults()
		}
		return m, nil
	}

	return m.updateInput(msg)
}

func (m namesModel) generate() (namesModel, tea.Cmd) {
	count, err := strconv.Atoi(strings.TrimSpace(m.countIn.Value()))
	if err != nil || count <= 0 {
		m.flash = "count must be a positive number"
		return m, clearFlashAfter()
	}

	m.results = m.gen.Names(count, genderCycle[m.genderIdx])
	return m, nil
}

func (m namesModel) copyResults() (namesModel, tea.Cmd) {
	if len(m.results) == 0 {
		m.flash = "nothing to copy"
		return m, clearFlashAfter()
	}
	if err := copyToClipboard(strings.Join(m.results, "\n")); err != nil {
		m.flash = "copy: " + err.Error()
		return m, clearFlashAfter()
	}
	m.flash = fmt.Sprintf("copied %d names!", len(m.results))
	return m, clearFlashAfter()
}

func (m namesModel) exportResults() (namesModel, tea.Cmd) {
	if len(m.results) == 0 {
		m.flash = "nothing to export"
		return m, clearFlashAfter()
	}
	path, err := exportLines("names", m.results)
	if err != nil {
		m.flash = "export: " + err.Error()
		return m, clearFlashAfter()
	}
	m.flash = "wrote " + path
	return m, clearFlashAfter()
}

func (m namesModel) updateInput(msg tea.Msg) (namesModel, tea.Cmd) {
	var cmd tea.Cmd
	m.countIn, cmd = m.countIn.Update(msg)
	return m, cmd
}

func (m namesModel) View() string {
	var b strings.Builder

	count := zstyle.MutedText.Render("count ")
	gender := zstyle.MutedText.Render("gender ")
	fmt.Fprintf(&b, "\n  %s%s   %s%s\n\n",
		count, m.countIn.View(),
		gender, zstyle.Highlight.Render(string(genderCycle[m.genderIdx])))

	shown := m.results
	if len(shown) > maxShownResults {
		shown = shown[:maxShownResults]
	}
	for _, n := range shown {
		b.WriteString("    " + n + "\n")
	}
	if rest := len(m.results) - len(shown); rest > 0 {
		b.WriteString("    " + zstyle.MutedText.Render(fmt.Sprintf("... and %d more", rest)) + "\n")
	}

	b.WriteString("\n")
	if m.flash != "" {
		b.WriteString("  " + zstyle.StatusOK.Render(m.flash) + "\n")
	} else {
		b.WriteString("\n")
	}

	return b.String()
}
