package diffview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pageThreshold is the line count above which Show switches from inline
// printing to the full-screen viewer.
const pageThreshold = 20

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Show displays content, paging it in a full-screen scrollable viewer
// when stdout is a terminal and the content is long; otherwise it prints
// inline. An empty content is a no-op.
func Show(title, content string) error {
	if content == "" {
		return nil
	}
	if !isTerminal() || strings.Count(content, "\n") <= pageThreshold {
		fmt.Print(content)
		if !strings.HasSuffix(content, "\n") {
			fmt.Println()
		}
		return nil
	}

	p := tea.NewProgram(pagerModel{title: title, content: content}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("showing diff: %w", err)
	}
	return nil
}

// pagerModel is the bubbletea model behind the full-screen viewer.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			m.viewport.ScrollUp(1)
		case "down", "j":
			m.viewport.ScrollDown(1)
		case "pgup", "b":
			m.viewport.PageUp()
		case "pgdown", "f", "space":
			m.viewport.PageDown()
		case "g", "home":
			m.viewport.GotoTop()
		case "G", "end":
			m.viewport.GotoBottom()
		}

	case tea.WindowSizeMsg:
		// One line of title, one of footer.
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.viewport.View() + "\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf("%3.0f%%  [↑/↓] scroll  [q] close", m.viewport.ScrollPercent()*100)))
	return b.String()
}
