package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/infogen/internal/phone"
)

var carrierCycle = []phone.Carrier{"", phone.Mobile, phone.Unicom, phone.Telecom, phone.Virtual}

const (
	phoneFieldCount = iota
	phoneFieldPrefix
	phoneFieldTotal
)

// phonesModel generates batches of phone numbers interactively.
type phonesModel struct {
	gen        *phone.Generator
	inputs     [phoneFieldTotal]textinput.Model
	focus      int
	carrierIdx int
	unique     bool
	results    []string
	flash      string
}

func newPhonesModel(gen *phone.Generator) phonesModel {
	var inputs [phoneFieldTotal]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 6
		ti.Width = 8
		ti.Prompt = ""
		inputs[i] = ti
	}
	inputs[phoneFieldCount].SetValue("10")
	inputs[phoneFieldCount].Focus()

	return phonesModel{gen: gen, inputs: inputs, unique: true}
}

func (m phonesModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m phonesModel) Update(msg tea.Msg) (phonesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m phonesModel) handleKey(msg tea.KeyMsg) (phonesModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if key.Matches(msg, zstyle.KeyTab) {
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % phoneFieldTotal
		m.inputs[m.focus].Focus()
		return m, textinput.Blink
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.generate()
	}

	// the inputs only hold digits, so letters and space act as commands
	if len(msg.Runes) == 1 {
		switch r := msg.Runes[0]; {
		case r >= '0' && r <= '9':
			return m.updateInput(msg)
		case r == ' ':
			m.carrierIdx = (m.carrierIdx + 1) % len(carrierCycle)
			return m, nil
		case r == 'u':
			m.unique = !m.unique
			return m, nil
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

func (m phonesModel) generate() (phonesModel, tea.Cmd) {
	count, err := strconv.Atoi(strings.TrimSpace(m.inputs[phoneFieldCount].Value()))
	if err != nil || count <= 0 {
		m.flash = "count must be a positive number"
		return m, clearFlashAfter()
	}

	prefix := strings.TrimSpace(m.inputs[phoneFieldPrefix].Value())
	numbers, err := m.gen.Numbers(count, prefix, carrierCycle[m.carrierIdx], m.unique)
	if err != nil {
		m.flash = err.Error()
		return m, clearFlashAfter()
	}

	m.results = numbers
	if m.unique && len(numbers) < count {
		m.flash = fmt.Sprintf("only %d unique numbers available", len(numbers))
		return m, clearFlashAfter()
	}
	return m, nil
}

func (m phonesModel) copyResults() (phonesModel, tea.Cmd) {
	if len(m.results) == 0 {
		m.flash = "nothing to copy"
		return m, clearFlashAfter()
	}
	if err := copyToClipboard(strings.Join(m.results, "\n")); err != nil {
		m.flash = "copy: " + err.Error()
		return m, clearFlashAfter()
	}
	m.flash = fmt.Sprintf("copied %d numbers!", len(m.results))
	return m, clearFlashAfter()
}

func (m phonesModel) exportResults() (phonesModel, tea.Cmd) {
	if len(m.results) == 0 {
		m.flash = "nothing to export"
		return m, clearFlashAfter()
	}
	path, err := exportLines("phones", m.results)
	if err != nil {
		m.flash = "export: " + err.Error()
		return m, clearFlashAfter()
	}
	m.flash = "wrote " + path
	return m, clearFlashAfter()
}

func (m phonesModel) updateInput(msg tea.Msg) (phonesModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func carrierLabel(c phone.Carrier) string {
	if c == "" {
		return "any"
	}
	return string(c)
}

func (m phonesModel) View() string {
	var b strings.Builder

	uniqueLabel := "off"
	if m.unique {
		uniqueLabel = "on"
	}

	fmt.Fprintf(&b, "\n  %s%s   %s%s   %s%s   %s%s\n\n",
		zstyle.MutedText.Render("count "), m.inputs[phoneFieldCount].View(),
		zstyle.MutedText.Render("prefix "), m.inputs[phoneFieldPrefix].View(),
		zstyle.MutedText.Render("carrier "), zstyle.Highlight.Render(carrierLabel(carrierCycle[m.carrierIdx])),
		zstyle.MutedText.Render("unique "), zstyle.Highlight.Render(uniqueLabel))

	shown := m.results
	if len(shown) > maxShownResults {
		shown = shown[:maxShownResults]
	}
	for _, n := range shown {
		carrier := zstyle.MutedText.Render(m.gen.CarrierName(n))
		b.WriteString("    " + n + "  " + carrier + "\n")
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
