package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/infogen/internal/vcf"
)

const previewEntries = 3

// previewModel shows sample vCard entries without writing files.
type previewModel struct {
	gen        *vcf.Generator
	genderIdx  int
	carrierIdx int
	text       string
	flash      string
}

func newPreviewModel(gen *vcf.Generator) previewModel {
	m := previewModel{gen: gen}
	m.regenerate()
	return m
}

func (m *previewModel) regenerate() {
	text, err := m.gen.Preview(previewEntries, vcf.Options{
		Gender:  genderCycle[m.genderIdx],
		Carrier: carrierCycle[m.carrierIdx],
	})
	if err != nil {
		m.text = ""
		m.flash = err.Error()
		return
	}
	m.text = text
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (previewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m previewModel) handleKey(msg tea.KeyMsg) (previewModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	switch msg.String() {
	case "r":
		m.regenerate()
		return m, nil

	case "g":
		m.genderIdx = (m.genderIdx + 1) % len(genderCycle)
		m.regenerate()
		return m, nil

	case "t":
		m.carrierIdx = (m.carrierIdx + 1) % len(carrierCycle)
		m.regenerate()
		return m, nil

	case "c":
		if err := copyToClipboard(m.text); err != nil {
			m.flash = "copy: " + err.Error()
			return m, clearFlashAfter()
		}
		m.flash = "copied!"
		return m, clearFlashAfter()
	}

	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	gender := zstyle.Highlight.Render(string(genderCycle[m.genderIdx]))
	carrier := zstyle.Highlight.Render(carrierLabel(carrierCycle[m.carrierIdx]))
	b.WriteString("\n  " + zstyle.MutedText.Render("gender ") + gender +
		"   " + zstyle.MutedText.Render("carrier ") + carrier + "\n\n")

	for _, line := range strings.Split(strings.TrimRight(m.text, "\n"), "\n") {
		b.WriteString("    " + line + "\n")
	}

	b.WriteString("\n")
	if m.flash != "" {
		b.WriteString("  " + zstyle.StatusOK.Render(m.flash) + "\n")
	} else {
		b.WriteString("\n")
	}

	return b.String()
}
