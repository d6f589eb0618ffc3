package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/gif-demux/gif"
)

// visibleFrames is the height of the frame list window.
const visibleFrames = 12

type interactiveModel struct {
	err      error
	doc      *gif.Document
	apps     []gif.Application
	opts     gif.Options
	filename string
	jump     textinput.Model
	selected int
	offset   int
	state    modelState
}

type modelState int

const (
	stateBrowse modelState = iota
	stateJump
)

func newInteractiveModel(filename string, opts gif.Options) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "frame: "
	ti.Placeholder = "0"
	ti.CharLimit = 6
	ti.Width = 10

	return &interactiveModel{
		filename: filename,
		opts:     opts,
		jump:     ti,
		state:    stateBrowse,
	}
}

type loadedMsg struct {
	err  error
	doc  *gif.Document
	apps []gif.Application
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.load
}

func (m *interactiveModel) load() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	doc, apps, err := parse(data, m.opts)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{doc: doc, apps: apps}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateJump {
			return m.updateJump(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			m.selectFrame(m.selected - 1)

		case "down", "j":
			m.selectFrame(m.selected + 1)

		case "home":
			m.selectFrame(0)

		case "end":
			if m.doc != nil {
				m.selectFrame(len(m.doc.Frames) - 1)
			}

		case "g", ":":
			if m.doc != nil && len(m.doc.Frames) > 0 {
				m.state = stateJump
				m.jump.SetValue("")
				return m, m.jump.Focus()
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.doc = msg.doc
		m.apps = msg.apps
	}

	return m, nil
}

func (m *interactiveModel) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		if n, err := strconv.Atoi(strings.TrimSpace(m.jump.Value())); err == nil {
			m.selectFrame(n)
		}
		m.jump.Blur()
		m.state = stateBrowse
		return m, nil

	case "esc":
		m.jump.Blur()
		m.state = stateBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

// selectFrame moves the cursor to frame i, clamped to the frame list, and
// scrolls the window to keep it visible.
func (m *interactiveModel) selectFrame(i int) {
	if m.doc == nil || len(m.doc.Frames) == 0 {
		return
	}
	m.selected = max(0, min(i, len(m.doc.Frames)-1))

	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visibleFrames {
		m.offset = m.selected - visibleFrames + 1
	}
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return warnStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.doc == nil {
		return "Loading GIF..."
	}

	st := colorStyles()
	var b strings.Builder

	b.WriteString(titleStyle.Render("GIF" + m.doc.Version))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	sd := m.doc.Screen
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n\n",
		st.render(st.label, "screen"), st.render(st.value, fmt.Sprintf("%dx%d", sd.Width, sd.Height)),
		st.render(st.label, "colors"), st.render(st.value, strconv.Itoa(int(sd.ColorCount))),
		st.render(st.label, "frames"), st.render(st.value, strconv.Itoa(len(m.doc.Frames)))))

	if len(m.doc.Frames) == 0 {
		b.WriteString("No frames.\n")
	}

	end := min(m.offset+visibleFrames, len(m.doc.Frames))
	for i := m.offset; i < end; i++ {
		line := frameSummary(i, &m.doc.Frames[i], m.doc)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if len(m.doc.Frames) > 0 {
		b.WriteString("\n")
		b.WriteString(m.frameDetail(&m.doc.Frames[m.selected]))
	}

	for _, app := range m.apps {
		b.WriteString("\n")
		b.WriteString(st.render(st.label, "application "))
		b.WriteString(app.Identifier + app.AuthCode)
	}
	if n := len(m.doc.Diagnostics); n > 0 {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d byte(s) skipped", n)))
	}
	if !m.doc.Terminated {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("no trailer"))
	}

	b.WriteString("\n\n")
	if m.state == stateJump {
		b.WriteString(m.jump.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter jump • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓ select • g jump to frame • q quit"))
	}

	return b.String()
}

// frameDetail renders the palette preview of a frame as colored swatches.
func (m *interactiveModel) frameDetail(f *gif.Frame) string {
	palette := f.Palette(m.doc)
	if len(palette) == 0 {
		return helpStyle.Render("no palette")
	}

	var b strings.Builder
	for i, c := range palette {
		if i == 32 {
			b.WriteString(helpStyle.Render(fmt.Sprintf(" +%d", len(palette)-32)))
			break
		}
		b.WriteString(swatch(c).Render("  "))
	}
	return b.String()
}

func swatch(c gif.RGB) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)))
}

func runInteractive(filename string, opts gif.Options) error {
	p := tea.NewProgram(newInteractiveModel(filename, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
