package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/infogen/internal/name"
	"github.com/zarlcorp/infogen/internal/phone"
)

// statsModel shows the size of the underlying data pools.
type statsModel struct {
	names  name.Stats
	phones phone.Stats
}

func newStatsModel(ns name.Stats, ps phone.Stats) statsModel {
	return statsModel{names: ns, phones: ps}
}

func (m statsModel) Init() tea.Cmd {
	return nil
}

func (m statsModel) Update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}
		if key.Matches(msg, zstyle.KeyBack) {
			return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
		}
	}
	return m, nil
}

func (m statsModel) View() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		MarginLeft(2)

	var names strings.Builder
	names.WriteString(zstyle.Subtitle.Render("names") + "\n")
	fmt.Fprintf(&names, "surnames      %d\n", m.names.Surnames)
	fmt.Fprintf(&names, "boy given     %d double, %d single\n", m.names.BoyDouble, m.names.BoySingle)
	fmt.Fprintf(&names, "girl given    %d double, %d single\n", m.names.GirlDouble, m.names.GirlSingle)
	fmt.Fprintf(&names, "combinations  %d boy, %d girl", m.names.Combinations.Boy, m.names.Combinations.Girl)

	var phones strings.Builder
	phones.WriteString(zstyle.Subtitle.Render("phone prefixes") + "\n")
	fmt.Fprintf(&phones, "total    %d\n", m.phones.Total)
	fmt.Fprintf(&phones, "mobile   %d\n", m.phones.Mobile)
	fmt.Fprintf(&phones, "unicom   %d\n", m.phones.Unicom)
	fmt.Fprintf(&phones, "telecom  %d\n", m.phones.Telecom)
	fmt.Fprintf(&phones, "virtual  %d", m.phones.Virtual)

	return "\n" + box.Render(names.String()) + "\n" + box.Render(phones.String()) + "\n"
}
