package game

import "time"

const (
	GridSize          = 20
	CellPixelSize     = 30
	TicksPerSecond    = 8
	GameTickDuration  = time.Second / TicksPerSecond
	OriginX           = 1
	OriginY           = 1
	InitialFruitCount = 1
	WindowTitle       = "Falke-Snake"

	directionBufferSize = 10
	updateBufferSize    = 1
)

// RGBA colour with components in [0, 1].
type Color [4]float32

var (
	BackgroundColor = Color{0.1, 0.05, 0.1, 1.0}
	SnakeColor      = Color{0.1, 0.7, 0.2, 1.0}
	FruitColor      = Color{0.8, 0.2, 0.1, 1.0}
)

// Hex returns the colour as #rrggbb, alpha dropped.
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i := 0; i < 3; i++ {
		v := int(c[i]*255 + 0.5)
		v = max(0, min(255, v))
		out[1+i*2] = digits[v>>4]
		out[2+i*2] = digits[v&0x0f]
	}
	return string(out)
}

// CellSquare returns the pixel origin and side of the square drawn for p.
// One pixel is left uncovered so adjacent cells stay visually separate.
func CellSquare(p Position) (x, y, side float32) {
	return float32(p.X * CellPixelSize), float32(p.Y * CellPixelSize), CellPixelSize - 1
}

// WindowPixelSize is the side of the square desktop window.
func WindowPixelSize() int {
	return GridSize * CellPixelSize
}
