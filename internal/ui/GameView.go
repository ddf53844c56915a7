package ui

import (
	"fmt"
	"strings"

	"github.com/Mshel/falke-snake/internal/game"
	"github.com/charmbracelet/lipgloss"
)

var (
	backgroundColor = lipgloss.Color(game.BackgroundColor.Hex())
	snakeColor      = lipgloss.Color(game.SnakeColor.Hex())
	fruitColor      = lipgloss.Color(game.FruitColor.Hex())

	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	cellStyle = lipgloss.NewStyle().Background(backgroundColor)

	// Every grid cell is two columns wide so the board comes out roughly square.
	emptyCell = cellStyle.Render("  ")
	bodyCell  = cellStyle.Foreground(snakeColor).Render("█▌")
	fruitCell = cellStyle.Foreground(fruitColor).Render("● ")

	headRunes = map[game.Direction]string{
		game.DirectionUp:    "▲ ",
		game.DirectionDown:  "▼ ",
		game.DirectionLeft:  "◀ ",
		game.DirectionRight: "▶ ",
	}
)

// renderBoard draws fruit first and the snake over it, the same order the desktop
// renderer uses.
func renderBoard(snapshot game.Snapshot, size int) string {
	cells := make([][]string, size)
	for y := range cells {
		cells[y] = make([]string, size)
		for x := range cells[y] {
			cells[y][x] = emptyCell
		}
	}

	put := func(p game.Position, cell string) {
		if p.X < 0 || p.Y < 0 || p.X >= size || p.Y >= size {
			return
		}
		cells[p.Y][p.X] = cell
	}

	for _, fruit := range snapshot.Fruits {
		put(fruit, fruitCell)
	}
	for i, segment := range snapshot.Segments {
		if i == 0 {
			put(segment, cellStyle.Foreground(snakeColor).Bold(true).Render(headRunes[snapshot.Heading]))
			continue
		}
		put(segment, bodyCell)
	}

	var sb strings.Builder
	for y, row := range cells {
		for _, cell := range row {
			sb.WriteString(cell)
		}
		if y < len(cells)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func renderStatusPanel(snapshot game.Snapshot, helpView string) string {
	var statusContent strings.Builder

	statusContent.WriteString(lipgloss.NewStyle().Bold(true).Render("--- Snake ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Length: %d\n", snapshot.Length))
	statusContent.WriteString(fmt.Sprintf("Fruit eaten: %d\n", snapshot.FruitsEaten))
	statusContent.WriteString(fmt.Sprintf("Tick: %d\n", snapshot.Tick))
	statusContent.WriteString(fmt.Sprintf("Heading: %s\n", strings.TrimSpace(headRunes[snapshot.Heading])))

	statusContent.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("--- Controls ---") + "\n")
	statusContent.WriteString(helpView)

	return statusContent.String()
}
