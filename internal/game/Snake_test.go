package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEatingAt(t *testing.T) {
	t.Run("fruit under the head", func(t *testing.T) {
		// Given: a fresh snake sitting on a fruit
		snake := NewSnake(Position{X: 1, Y: 1})
		fruits := []Fruit{{ID: 1, Position: Position{X: 1, Y: 1}}}

		// Then: it is eating
		require.True(t, snake.IsEating(fruits))
		require.True(t, IsEatingAt(snake.Head, fruits))
	})

	t.Run("fruit elsewhere", func(t *testing.T) {
		snake := NewSnake(Position{X: 1, Y: 1})
		fruits := []Fruit{{ID: 1, Position: Position{X: 1, Y: 2}}}

		require.False(t, snake.IsEating(fruits))
	})

	t.Run("no fruit", func(t *testing.T) {
		require.False(t, IsEatingAt(Position{X: 0, Y: 0}, nil))
	})
}

func TestSnake_Advance(t *testing.T) {
	t.Run("moves without growing", func(t *testing.T) {
		// Given: the starting snake and an empty board
		snake := NewSnake(Position{X: 1, Y: 1})

		// When: it advances once
		result := snake.Advance(nil)

		// Then: the head moved one cell right and the length stayed at 1
		require.False(t, result.Ate)
		require.Equal(t, Position{X: 2, Y: 1}, snake.Head)
		require.Equal(t, []Position{{X: 2, Y: 1}}, result.Segments)
		require.Equal(t, 1, snake.Len())
	})

	t.Run("grows on fruit", func(t *testing.T) {
		// Given: a fruit right in front of the snake
		snake := NewSnake(Position{X: 1, Y: 1})
		fruits := []Fruit{{ID: 42, Position: Position{X: 2, Y: 1}}}

		// When: it advances onto the fruit
		result := snake.Advance(fruits)

		// Then: it grew by one and reports which fruit it ate
		require.True(t, result.Ate)
		require.Equal(t, 42, result.FruitID)
		require.Equal(t, 2, snake.Len())
		require.Equal(t, Position{X: 2, Y: 1}, snake.Head)
		require.Equal(t, []Position{{X: 2, Y: 1}, {X: 1, Y: 1}}, snake.Segments)
	})

	t.Run("reports the first of stacked fruit", func(t *testing.T) {
		snake := NewSnake(Position{X: 1, Y: 1})
		fruits := []Fruit{
			{ID: 3, Position: Position{X: 2, Y: 1}},
			{ID: 4, Position: Position{X: 2, Y: 1}},
		}

		result := snake.Advance(fruits)

		require.True(t, result.Ate)
		require.Equal(t, 3, result.FruitID)
	})

	t.Run("vertical step", func(t *testing.T) {
		snake := NewSnake(Position{X: 5, Y: 5})
		require.True(t, snake.Turn(DirectionUp))

		snake.Advance(nil)

		require.Equal(t, Position{X: 5, Y: 4}, snake.Head)
	})

	t.Run("head stays in sync with the first segment", func(t *testing.T) {
		snake := NewSnake(Position{X: 3, Y: 3})
		fruits := []Fruit{{ID: 1, Position: Position{X: 4, Y: 3}}}

		snake.Advance(fruits)
		snake.Turn(DirectionDown)
		snake.Advance(nil)

		require.Equal(t, snake.Segments[0], snake.Head)
		require.Equal(t, []Position{{X: 4, Y: 4}, {X: 4, Y: 3}}, snake.Segments)
	})

	t.Run("result does not alias the body", func(t *testing.T) {
		snake := NewSnake(Position{X: 1, Y: 1})

		result := snake.Advance(nil)
		result.Segments[0] = Position{X: 9, Y: 9}

		assert.Equal(t, Position{X: 2, Y: 1}, snake.Segments[0])
	})
}

func TestSnake_Turn(t *testing.T) {
	tests := []struct {
		name     string
		from     Direction
		request  Direction
		accepted bool
		axis     Axis
		step     int
	}{
		{name: "horizontal to up", from: DirectionRight, request: DirectionUp, accepted: true, axis: Vertical, step: -1},
		{name: "horizontal to down", from: DirectionRight, request: DirectionDown, accepted: true, axis: Vertical, step: 1},
		{name: "horizontal ignores left", from: DirectionRight, request: DirectionLeft, accepted: false, axis: Horizontal, step: 1},
		{name: "horizontal ignores right", from: DirectionRight, request: DirectionRight, accepted: false, axis: Horizontal, step: 1},
		{name: "vertical to left", from: DirectionUp, request: DirectionLeft, accepted: true, axis: Horizontal, step: -1},
		{name: "vertical to right", from: DirectionUp, request: DirectionRight, accepted: true, axis: Horizontal, step: 1},
		{name: "vertical ignores down", from: DirectionUp, request: DirectionDown, accepted: false, axis: Vertical, step: -1},
		{name: "unknown direction", from: DirectionRight, request: Direction(99), accepted: false, axis: Horizontal, step: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a snake heading in tt.from
			snake := NewSnake(Position{X: 10, Y: 10})
			snake.Turn(tt.from)
			require.Equal(t, tt.from, snake.Heading())

			// When: a turn is requested
			accepted := snake.Turn(tt.request)

			// Then: axis and step follow the acceptance rule
			require.Equal(t, tt.accepted, accepted)
			require.Equal(t, tt.axis, snake.Axis)
			require.Equal(t, tt.step, snake.Step)
		})
	}
}

func TestSnake_TouchesSelf(t *testing.T) {
	t.Run("single segment never touches itself", func(t *testing.T) {
		for _, p := range []Position{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 19, Y: 19}, {X: -1, Y: 5}} {
			require.False(t, NewSnake(p).TouchesSelf(), p.String())
		}
	})

	t.Run("straight body", func(t *testing.T) {
		snake := &Snake{
			Segments: []Position{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}},
			Axis:     Horizontal,
			Step:     1,
			Head:     Position{X: 3, Y: 1},
		}

		require.False(t, snake.TouchesSelf())
	})

	t.Run("head turns into its own body", func(t *testing.T) {
		// Given: a body curled around so that moving down hits a segment
		snake := &Snake{
			Segments: []Position{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}},
			Axis:     Vertical,
			Step:     1,
			Head:     Position{X: 1, Y: 1},
		}

		// When: it advances
		snake.Advance(nil)

		// Then: the head shares a cell with the body
		require.True(t, snake.TouchesSelf())
	})

	t.Run("following the tail is safe", func(t *testing.T) {
		snake := &Snake{
			Segments: []Position{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}},
			Axis:     Vertical,
			Step:     1,
			Head:     Position{X: 1, Y: 1},
		}

		snake.Advance(nil)

		require.False(t, snake.TouchesSelf())
	})
}

func TestHeadingOf(t *testing.T) {
	for _, d := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
		axis, step, ok := d.heading()
		require.True(t, ok)
		assert.Equal(t, d, HeadingOf(axis, step), d.String())
	}
}
