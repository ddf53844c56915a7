package ui

import (
	"github.com/Mshel/falke-snake/internal/game"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// LoopStoppedMsg is delivered when the game loop went away without a collision.
type LoopStoppedMsg struct{}

// ControllerModel is the terminal front-end of one game. It never touches the game state
// directly: turns go in through the manager's channels and frames come back as snapshots.
type ControllerModel struct {
	GameManager  *game.GameManager
	Snapshot     game.Snapshot
	Err          error
	ScreenWidth  int
	ScreenHeight int

	started bool
	keys    KeyMap
	help    help.Model
}

func NewControllerModel(gameManager *game.GameManager, screenWidth int, screenHeight int) ControllerModel {
	h := help.New()
	h.ShowAll = true

	return ControllerModel{
		GameManager:  gameManager,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		keys:         DefaultKeyMap(),
		help:         h,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.listenForGameUpdates()
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if dir, ok := m.keys.Direction(msg); ok {
			if !m.GameManager.SendDirection(dir) {
				log.Debug("Direction dropped, input queue full", "direction", dir)
			}
			return m, nil
		}
		if key.Matches(msg, m.keys.Aux) {
			m.GameManager.SendAux()
		}
		return m, nil

	case game.FrameMsg:
		m.Snapshot = msg.Snapshot
		m.started = true
		return m, m.listenForGameUpdates()

	case game.SnakeDeadMsg:
		m.Snapshot = msg.Snapshot
		m.started = true
		m.Err = msg.Err
		return m, tea.Quit

	case LoopStoppedMsg:
		return m, tea.Quit
	}

	return m, nil
}

func (m ControllerModel) View() string {
	if !m.started {
		return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, "Game Loading...")
	}

	board := mapViewStyle.Render(renderBoard(m.Snapshot, m.GameManager.World.Size))
	status := statusPanelStyle.Render(renderStatusPanel(m.Snapshot, m.help.View(m.keys)))
	content := lipgloss.JoinHorizontal(lipgloss.Top, board, status)

	if m.ScreenWidth == 0 || m.ScreenHeight == 0 {
		return content
	}
	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, content)
}

func (m ControllerModel) listenForGameUpdates() tea.Cmd {
	updates := m.GameManager.UpdateChannel
	return func() tea.Msg {
		msg, ok := <-updates
		if !ok {
			return LoopStoppedMsg{}
		}
		return msg
	}
}
