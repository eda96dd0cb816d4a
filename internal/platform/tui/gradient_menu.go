package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/games/gradient"
)

// GradientSelection holds the user's starting level for the gradient campaign.
type GradientSelection struct {
	StartLevel int // 0-based campaign index
}

// GradientMenuModel lets users pick the campaign level to start from.
type GradientMenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection GradientSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewGradientMenuModel creates a new level selection model.
func NewGradientMenuModel(width, height int) GradientMenuModel {
	return GradientMenuModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m GradientMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GradientMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m GradientMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < gradient.LevelCount()-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = GradientSelection{StartLevel: m.cursor}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the level selection.
func (m GradientMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("G R A D I E N T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Start from level:", m.width))
	b.WriteString("\n\n")

	for i := 0; i < gradient.LevelCount(); i++ {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		level := gradient.GetLevel(i)
		line := fmt.Sprintf("%s%2d. %-8s %dx%d", cursor, i+1, level.ID, level.Rows, level.Cols)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m GradientMenuModel) Selected() *GradientSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m GradientMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m GradientMenuModel) WantsBack() bool {
	return m.back
}

// RunGradientSelector runs the level selection and returns the choice.
// A nil selection means the user backed out or quit.
func RunGradientSelector(cfg core.RuntimeConfig) (*GradientSelection, core.RuntimeConfig, error) {
	model := NewGradientMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(GradientMenuModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
