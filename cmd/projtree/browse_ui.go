package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// ExitState indicates how the program is exiting
type ExitState int

const (
	ExitStateNone    ExitState = iota // Not exiting
	ExitStateAbort                    // Exiting without a choice (ESC, Ctrl+C)
	ExitStateConfirm                  // Exiting with a choice (Enter)
)

var cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// browseModel is the Bubble Tea model of the directory browser.
type browseModel struct {
	textInput  textinput.Model
	searchTerm string

	allItems      []browseItem
	filteredItems []browseItem

	cursor    int
	exitState ExitState

	viewport viewport.Model
	ready    bool
}

func newBrowseModel(items []browseItem) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Type to fuzzy-search..."
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Focus()

	return browseModel{
		textInput:     ti,
		allItems:      items,
		filteredItems: items,
		viewport:      viewport.New(0, 0), // sized on tea.WindowSizeMsg
	}
}

// browseInteractively runs the TUI and returns the chosen directory path,
// or "" if the user aborted.
func browseInteractively(items []browseItem) (string, error) {
	// TUI goes to stderr so the chosen path can be piped from stdout
	p := tea.NewProgram(newBrowseModel(items), tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	finalM, ok := finalModel.(browseModel)
	if !ok {
		return "", fmt.Errorf("could not get final model state")
	}
	return finalM.selection(), nil
}

// selection returns the path under the cursor once the user confirmed.
func (m browseModel) selection() string {
	if m.exitState != ExitStateConfirm || len(m.filteredItems) == 0 {
		return ""
	}
	return m.filteredItems[m.cursor].Path
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.exitState != ExitStateNone {
		return m, tea.Quit
	}

	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.textInput.View()) + 1 // input + blank line
		footerHeight := 2                                       // status + usage hint
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight
		m.viewport.YPosition = headerHeight

		if !m.ready {
			m.updateViewportContent()
			m.ready = true
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.exitState = ExitStateAbort
			return m, tea.Quit

		case "enter":
			m.exitState = ExitStateConfirm
			return m, tea.Quit

		case "up":
			if m.cursor > 0 {
				m.cursor--
				m.updateViewportContent()
				m.ensureCursorVisible()
			}
			return m, nil

		case "down":
			if m.cursor < len(m.filteredItems)-1 {
				m.cursor++
				m.updateViewportContent()
				m.ensureCursorVisible()
			}
			return m, nil

		case "pgup":
			m.viewport.HalfViewUp()
			return m, nil

		case "pgdown":
			m.viewport.HalfViewDown()
			return m, nil

		case "home":
			m.cursor = 0
			m.viewport.GotoTop()
			m.updateViewportContent()
			return m, nil

		case "end":
			if len(m.filteredItems) > 0 {
				m.cursor = len(m.filteredItems) - 1
				m.viewport.GotoBottom()
				m.updateViewportContent()
			}
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	cmds = append(cmds, cmd)

	if term := m.textInput.Value(); term != m.searchTerm {
		m.searchTerm = term
		m.refilter()
		m.updateViewportContent()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m browseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	headerView := m.textInput.View() + "\n"
	statusLine := fmt.Sprintf("%d/%d directories", len(m.filteredItems), len(m.allItems))
	usageHint := "(↑/↓ to navigate, Enter to choose, Esc/Ctrl+C to abort)"
	return fmt.Sprintf("%s%s\n%s\n%s", headerView, m.viewport.View(), statusLine, usageHint)
}

// updateViewportContent redraws the list. Unfiltered, directories are
// indented by depth; while searching, full relative paths are shown.
func (m *browseModel) updateViewportContent() {
	var sb strings.Builder
	for i, it := range m.filteredItems {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}

		label := it.Rel + "/"
		if m.searchTerm == "" && it.Depth > 0 {
			label = strings.Repeat("  ", it.Depth-1) + it.Rel[strings.LastIndex(it.Rel, "/")+1:] + "/"
		}

		line := fmt.Sprintf("%s %s", cursor, label)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		sb.WriteString(line + "\n")
	}
	m.viewport.SetContent(sb.String())
}

func (m *browseModel) ensureCursorVisible() {
	top := m.viewport.YOffset
	bottom := m.viewport.YOffset + m.viewport.Height - 1

	if m.cursor < top {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor > bottom {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

// refilter narrows filteredItems to fuzzy matches of the search term,
// best match first.
func (m *browseModel) refilter() {
	m.cursor = 0
	if m.searchTerm == "" {
		m.filteredItems = m.allItems
		return
	}

	rels := make([]string, len(m.allItems))
	for i, it := range m.allItems {
		rels[i] = it.Rel
	}

	matches := fuzzy.Find(m.searchTerm, rels)
	filtered := make([]browseItem, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, m.allItems[match.Index])
	}
	m.filteredItems = filtered
}
