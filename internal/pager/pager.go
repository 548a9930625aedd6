package pager

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statusHeight = 1

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// Options 描述分页器要展示的内容。
type Options struct {
	Title   string
	Content string
	// Inline 为 true 时不使用备用屏幕，退出后内容保留在终端。
	Inline bool
}

// Model 是只读分页器：viewport 负责滚动，底部一行状态栏。
type Model struct {
	viewport viewport.Model
	title    string
	content  string
	ready    bool
	width    int
}

// New 创建分页器模型，尺寸在收到 WindowSizeMsg 后确定。
func New(opts Options) *Model {
	return &Model{title: opts.Title, content: opts.Content}
}

// Run 启动 Bubble Tea 程序并阻塞到用户退出。
func Run(opts Options) error {
	programOptions := []tea.ProgramOption{}
	if !opts.Inline {
		programOptions = append(programOptions, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(New(opts), programOptions...).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) resize(width, height int) {
	bodyHeight := height - statusHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.width = width
	if !m.ready {
		m.viewport = viewport.New(width, bodyHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = bodyHeight
	}
	// 换行后的内容依赖宽度，每次尺寸变化都重新设置。
	m.viewport.SetContent(wrapContent(m.content, width))
}

func (m *Model) View() string {
	if !m.ready {
		return "\n  loading…"
	}
	return m.viewport.View() + "\n" + m.statusLine()
}

func (m *Model) statusLine() string {
	left := statusStyle.Render(m.title)
	right := hintStyle.Render(fmt.Sprintf("q quit  %3.f%%", m.viewport.ScrollPercent()*100))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
