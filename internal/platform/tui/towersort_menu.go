package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// TowersortSelection holds the user's difficulty choice for Tower Sort.
type TowersortSelection struct {
	Preset config.DifficultyPreset
}

// TowersortMenuModel lets users choose a difficulty before playing Tower Sort.
type TowersortMenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection TowersortSelection
	choosing  bool
	quitting  bool
	back      bool
}

var towersortPresets = []struct {
	preset config.DifficultyPreset
	label  string
}{
	{config.DifficultyEasy, "Easy   (7 pegs, 5 colors)"},
	{config.DifficultyNormal, "Normal (8 pegs, 6 colors)"},
	{config.DifficultyHard, "Hard   (9 pegs, 7 colors)"},
}

// NewTowersortMenuModel creates a new difficulty selection model.
func NewTowersortMenuModel(width, height int) TowersortMenuModel {
	return TowersortMenuModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m TowersortMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m TowersortMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m TowersortMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(towersortPresets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = TowersortSelection{Preset: towersortPresets[m.cursor].preset}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty selection.
func (m TowersortMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T O W E R   S O R T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range towersortPresets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, p.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m TowersortMenuModel) Selected() *TowersortSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m TowersortMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m TowersortMenuModel) WantsBack() bool {
	return m.back
}

// RunTowersortSelector runs the difficulty selection and returns the choice.
// A nil selection means the user backed out or quit.
func RunTowersortSelector(cfg core.RuntimeConfig) (*TowersortSelection, core.RuntimeConfig, error) {
	model := NewTowersortMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(TowersortMenuModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
