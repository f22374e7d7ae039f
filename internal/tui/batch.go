package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/infogen/internal/vcf"
)

type batchPhase int

const (
	batchForm batchPhase = iota
	batchRunning
	batchDone
)

const (
	batchFieldFiles = iota
	batchFieldContacts
	batchFieldDir
	batchFieldPrefix
	batchFieldNaming
	batchFieldStart
	batchFieldGender
	batchFieldCarrier
	batchFieldUnique
	batchFieldTotal
)

var batchFieldLabels = [batchFieldTotal]string{
	"files",
	"contacts/file",
	"output dir",
	"file prefix",
	"naming",
	"start number",
	"gender",
	"carrier",
	"unique phones",
}

// textField reports whether a form field is backed by a text input.
func textField(i int) bool {
	switch i {
	case batchFieldFiles, batchFieldContacts, batchFieldDir, batchFieldPrefix, batchFieldStart:
		return true
	}
	return false
}

// batchProgressMsg carries a completion percentage from a running batch.
type batchProgressMsg int

// batchDoneMsg carries the result of a finished batch.
type batchDoneMsg struct {
	result vcf.BatchResult
}

// batchModel drives a multi-file vCard generation run.
type batchModel struct {
	gen    *vcf.Generator
	phase  batchPhase
	inputs [batchFieldTotal]textinput.Model
	focus  int

	namingIdx  int // 0 timestamp, 1 custom_number
	genderIdx  int
	carrierIdx int
	unique     bool

	bar     progress.Model
	percent int
	ch      chan int
	result  vcf.BatchResult
	flash   string
}

func newBatchModel(gen *vcf.Generator) batchModel {
	var inputs [batchFieldTotal]textinput.Model
	for i := range inputs {
		if !textField(i) {
			continue
		}
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 30
		ti.Prompt = ""
		inputs[i] = ti
	}
	inputs[batchFieldFiles].SetValue("1")
	inputs[batchFieldFiles].CharLimit = 6
	inputs[batchFieldFiles].Width = 8
	inputs[batchFieldContacts].SetValue("100")
	inputs[batchFieldContacts].CharLimit = 6
	inputs[batchFieldContacts].Width = 8
	inputs[batchFieldDir].SetValue("./contacts")
	inputs[batchFieldStart].SetValue("1")
	inputs[batchFieldStart].CharLimit = 6
	inputs[batchFieldStart].Width = 8

	inputs[batchFieldFiles].Focus()

	return batchModel{
		gen:    gen,
		inputs: inputs,
		unique: true,
		bar:    progress.New(progress.WithDefaultGradient()),
	}
}

func (m batchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m batchModel) Update(msg tea.Msg) (batchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case batchProgressMsg:
		m.percent = int(msg)
		return m, listenProgress(m.ch)

	case batchDoneMsg:
		m.result = msg.result
		m.percent = 100
		m.phase = batchDone
		return m, nil

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m batchModel) handleKey(msg tea.KeyMsg) (batchModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.phase {
	case batchRunning:
		// no interaction while writing
		return m, nil

	case batchDone:
		// any key returns to the menu
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	switch msg.String() {
	case "tab":
		return m.moveFocus(1), textinput.Blink
	case "shift+tab":
		return m.moveFocus(-1), textinput.Blink
	case " ":
		if !textField(m.focus) {
			return m.cycleFocused(), nil
		}
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.start()
	}

	if textField(m.focus) {
		return m.updateInput(msg)
	}
	return m, nil
}

func (m batchModel) moveFocus(delta int) batchModel {
	if textField(m.focus) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + batchFieldTotal) % batchFieldTotal
	if textField(m.focus) {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m batchModel) updateInput(msg tea.Msg) (batchModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m batchModel) cycleFocused() batchModel {
	switch m.focus {
	case batchFieldNaming:
		m.namingIdx = (m.namingIdx + 1) % 2
	case batchFieldGender:
		m.genderIdx = (m.genderIdx + 1) % len(genderCycle)
	case batchFieldCarrier:
		m.carrierIdx = (m.carrierIdx + 1) % len(carrierCycle)
	case batchFieldUnique:
		m.unique = !m.unique
	}
	return m
}

func (m batchModel) start() (batchModel, tea.Cmd) {
	opts, err := m.buildOptions()
	if err != nil {
		m.flash = err.Error()
		return m, clearFlashAfter()
	}

	m.phase = batchRunning
	m.percent = 0
	m.ch = make(chan int, 8)
	return m, tea.Batch(runBatch(m.gen, opts, m.ch), listenProgress(m.ch))
}

func (m batchModel) buildOptions() (vcf.BatchOptions, error) {
	files, err := strconv.Atoi(strings.TrimSpace(m.inputs[batchFieldFiles].Value()))
	if err != nil || files <= 0 {
		return vcf.BatchOptions{}, fmt.Errorf("files must be a positive number")
	}
	contacts, err := strconv.Atoi(strings.TrimSpace(m.inputs[batchFieldContacts].Value()))
	if err != nil || contacts <= 0 {
		return vcf.BatchOptions{}, fmt.Errorf("contacts must be a positive number")
	}
	start, err := strconv.Atoi(strings.TrimSpace(m.inputs[batchFieldStart].Value()))
	if err != nil || start < 0 {
		return vcf.BatchOptions{}, fmt.Errorf("start number must be >= 0")
	}
	dir := strings.TrimSpace(m.inputs[batchFieldDir].Value())
	if dir == "" {
		return vcf.BatchOptions{}, fmt.Errorf("output dir is required")
	}

	namingMode := vcf.NamingTimestamp
	if m.namingIdx == 1 {
		namingMode = vcf.NamingCustomNumber
	}

	return vcf.BatchOptions{
		FileCount:       files,
		ContactsPerFile: contacts,
		OutputDir:       dir,
		FilenamePrefix:  strings.TrimSpace(m.inputs[batchFieldPrefix].Value()),
		Gender:          genderCycle[m.genderIdx],
		Carrier:         carrierCycle[m.carrierIdx],
		UniquePhones:    m.unique,
		NamingMode:      namingMode,
		StartNumber:     start,
	}, nil
}

// runBatch writes the batch in a goroutine-backed command. Progress
// percentages go through ch; stale values are dropped rather than
// blocking the writer.
func runBatch(gen *vcf.Generator, opts vcf.BatchOptions, ch chan int) tea.Cmd {
	return func() tea.Msg {
		result := gen.WriteFiles(opts, func(percent int) {
			select {
			case ch <- percent:
			default:
			}
		})
		close(ch)
		return batchDoneMsg{result: result}
	}
}

// listenProgress re-arms after every received percentage until the
// channel closes.
func listenProgress(ch chan int) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return batchProgressMsg(p)
	}
}

func (m batchModel) View() string {
	switch m.phase {
	case batchForm:
		return m.viewForm()
	case batchRunning:
		return m.viewRunning()
	case batchDone:
		return m.viewDone()
	}
	return ""
}

func (m batchModel) fieldValue(i int) string {
	if textField(i) {
		return m.inputs[i].View()
	}

	switch i {
	case batchFieldNaming:
		if m.namingIdx == 1 {
			return "sequence number"
		}
		return "timestamp"
	case batchFieldGender:
		return string(genderCycle[m.genderIdx])
	case batchFieldCarrier:
		return carrierLabel(carrierCycle[m.carrierIdx])
	case batchFieldUnique:
		if m.unique {
			return "on"
		}
		return "off"
	}
	return ""
}

func (m batchModel) viewForm() string {
	var b strings.Builder
	b.WriteString("\n")

	for i := range batchFieldTotal {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-14s", batchFieldLabels[i]))
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}

		value := m.fieldValue(i)
		if !textField(i) && i == m.focus {
			value = zstyle.Highlight.Render(value)
		}

		fmt.Fprintf(&b, "  %s%s %s\n", cursor, label, value)
	}

	b.WriteString("\n")
	if m.flash != "" {
		b.WriteString("  " + zstyle.StatusErr.Render(m.flash) + "\n")
	} else {
		b.WriteString("\n")
	}

	est := m.estimate()
	if est != "" {
		b.WriteString("  " + zstyle.MutedText.Render(est) + "\n")
	}

	return b.String()
}

func (m batchModel) estimate() string {
	files, err1 := strconv.Atoi(strings.TrimSpace(m.inputs[batchFieldFiles].Value()))
	contacts, err2 := strconv.Atoi(strings.TrimSpace(m.inputs[batchFieldContacts].Value()))
	if err1 != nil || err2 != nil || files <= 0 || contacts <= 0 {
		return ""
	}
	est := vcf.EstimateBatch(files, contacts)
	return fmt.Sprintf("approx. %d contacts, %s on disk",
		est.TotalContacts, humanize.Bytes(uint64(est.TotalBytes)))
}

func (m batchModel) viewRunning() string {
	var b strings.Builder
	b.WriteString("\n  " + zstyle.MutedText.Render("writing vCard files...") + "\n\n")
	b.WriteString("  " + m.bar.ViewAs(float64(m.percent)/100) + "\n")
	fmt.Fprintf(&b, "\n  %d%%\n", m.percent)
	return b.String()
}

func (m batchModel) viewDone() string {
	var b strings.Builder

	if m.result.Success {
		b.WriteString("\n  " + zstyle.StatusOK.Render("batch complete") + "\n\n")
	} else {
		b.WriteString("\n  " + zstyle.StatusWarn.Render("batch finished with errors") + "\n\n")
		if m.result.Error != "" {
			b.WriteString("  " + zstyle.StatusErr.Render(m.result.Error) + "\n\n")
		}
	}

	fmt.Fprintf(&b, "  files created:  %d\n", m.result.FilesCreated)
	if m.result.FilesFailed > 0 {
		fmt.Fprintf(&b, "  files failed:   %d\n", m.result.FilesFailed)
	}
	fmt.Fprintf(&b, "  total contacts: %d\n", m.result.TotalContacts)
	fmt.Fprintf(&b, "  output dir:     %s\n", m.result.OutputDir)

	b.WriteString("\n  " + zstyle.MutedText.Render("press any key to continue") + "\n")
	return b.String()
}
