package desktop

import (
	"fmt"
	"unsafe"

	"github.com/Mshel/falke-snake/internal/game"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uOrigin     int32
	uSide       int32
	uResolution int32
	uColor      int32

	// Logical drawing area in pixels; the framebuffer may be larger on HiDPI screens.
	resolution float32
}

func NewRenderer(resolution int) (*Renderer, error) {
	prog, err := linkProgram(cellVertSrc, cellFragSrc)
	if err != nil {
		return nil, fmt.Errorf("cell program: %w", err)
	}

	r := &Renderer{
		prog:       prog,
		resolution: float32(resolution),
	}

	// Unit quad (6 vertices, 2 triangles).
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.UseProgram(prog)
	r.uOrigin = gl.GetUniformLocation(prog, gl.Str("uOrigin\x00"))
	r.uSide = gl.GetUniformLocation(prog, gl.Str("uSide\x00"))
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.uColor = gl.GetUniformLocation(prog, gl.Str("uColor\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// DrawFrame clears to the background colour, then draws fruit and the snake on top.
func (r *Renderer) DrawFrame(snapshot game.Snapshot, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	bg := game.BackgroundColor
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.Uniform2f(r.uResolution, r.resolution, r.resolution)

	r.drawCells(snapshot.Fruits, game.FruitColor)
	r.drawCells(snapshot.Segments, game.SnakeColor)

	gl.BindVertexArray(0)
}

func (r *Renderer) drawCells(cells []game.Position, color game.Color) {
	gl.Uniform4f(r.uColor, color[0], color[1], color[2], color[3])
	for _, cell := range cells {
		x, y, side := game.CellSquare(cell)
		gl.Uniform2f(r.uOrigin, x, y)
		gl.Uniform1f(r.uSide, side)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}
}
