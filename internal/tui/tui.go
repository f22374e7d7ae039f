// Package tui implements the root Bubble Tea model for infogen.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/infogen/internal/name"
	"github.com/zarlcorp/infogen/internal/phone"
	"github.com/zarlcorp/infogen/internal/vcf"
)

type viewID int

const (
	viewMenu viewID = iota
	viewNames
	viewPhones
	viewBatch
	viewPreview
	viewStats
)

// Model is the root TUI model.
type Model struct {
	version string
	names   *name.Generator
	phones  *phone.Generator
	vcards  *vcf.Generator

	active  viewID
	menu    menuModel
	namesV  namesModel
	phonesV phonesModel
	batch   batchModel
	preview previewModel
	stats   statsModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model.
func New(version string) Model {
	return Model{
		version: version,
		names:   name.New(),
		phones:  phone.New(),
		vcards:  vcf.New(),
		active:  viewMenu,
		menu:    newMenuModel(version),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		return m.navigate(msg.view)
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// the menu includes the logo and renders directly
	if m.active == viewMenu {
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewNames:
		content = m.namesV.View()
	case viewPhones:
		content = m.phonesV.View()
	case viewBatch:
		content = m.batch.View()
	case viewPreview:
		content = m.preview.View()
	case viewStats:
		content = m.stats.View()
	}

	header := "  " + zstyle.Title.Render("infogen") + "  " +
		zstyle.Subtitle.Render(viewTitle(m.active))
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewNames:
		return "Generate Names"
	case viewPhones:
		return "Generate Phone Numbers"
	case viewBatch:
		return "Generate vCard Files"
	case viewPreview:
		return "vCard Preview"
	case viewStats:
		return "Data Pools"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewNames:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "generate"},
			{Key: "tab", Desc: "gender"},
			{Key: "c", Desc: "copy"},
			{Key: "e", Desc: "export"},
			{Key: "esc", Desc: "back"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	case viewPhones:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "generate"},
			{Key: "tab", Desc: "next field"},
			{Key: "space", Desc: "carrier"},
			{Key: "u", Desc: "unique"},
			{Key: "c", Desc: "copy"},
			{Key: "e", Desc: "export"},
			{Key: "esc", Desc: "back"},
		}
	case viewBatch:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next field"},
			{Key: "space", Desc: "cycle"},
			{Key: "enter", Desc: "start"},
			{Key: "esc", Desc: "back"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	case viewPreview:
		return []zstyle.HelpPair{
			{Key: "r", Desc: "regenerate"},
			{Key: "g", Desc: "gender"},
			{Key: "t", Desc: "carrier"},
			{Key: "c", Desc: "copy"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewStats:
		return []zstyle.HelpPair{
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewNames:
		m.namesV, cmd = m.namesV.Update(msg)
	case viewPhones:
		m.phonesV, cmd = m.phonesV.Update(msg)
	case viewBatch:
		m.batch, cmd = m.batch.Update(msg)
	case viewPreview:
		m.preview, cmd = m.preview.Update(msg)
	case viewStats:
		m.stats, cmd = m.stats.Update(msg)
	}

	return m, cmd
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		m.menu = newMenuModel(m.version)
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewNames:
		m.namesV = newNamesModel(m.names)
		m.active = viewNames
		return m, tea.Batch(m.namesV.Init(), tea.ClearScreen)

	case viewPhones:
		m.phonesV = newPhonesModel(m.phones)
		m.active = viewPhones
		return m, tea.Batch(m.phonesV.Init(), tea.ClearScreen)

	case viewBatch:
		m.batch = newBatchModel(m.vcards)
		m.active = viewBatch
		return m, tea.Batch(m.batch.Init(), tea.ClearScreen)

	case viewPreview:
		m.preview = newPreviewModel(m.vcards)
		m.active = viewPreview
		return m, tea.ClearScreen

	case viewStats:
		m.stats = newStatsModel(m.names.Stats(), m.phones.Stats())
		m.active = viewStats
		return m, tea.ClearScreen
	}

	return m, nil
}
