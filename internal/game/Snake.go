package game

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Direction is a turn request coming from an input collaborator.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

var directionNames = map[Direction]string{
	DirectionUp:    "up",
	DirectionDown:  "down",
	DirectionLeft:  "left",
	DirectionRight: "right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// heading maps a direction onto the axis/step pair it selects.
func (d Direction) heading() (Axis, int, bool) {
	switch d {
	case DirectionUp:
		return Vertical, -1, true
	case DirectionDown:
		return Vertical, 1, true
	case DirectionLeft:
		return Horizontal, -1, true
	case DirectionRight:
		return Horizontal, 1, true
	}
	return Horizontal, 0, false
}

// HeadingOf is the inverse of a turn: the direction a snake with the given axis and step travels.
func HeadingOf(axis Axis, step int) Direction {
	switch {
	case axis == Vertical && step < 0:
		return DirectionUp
	case axis == Vertical:
		return DirectionDown
	case step < 0:
		return DirectionLeft
	default:
		return DirectionRight
	}
}

type Snake struct {
	Segments []Position
	Axis     Axis
	Step     int
	Head     Position
}

type AdvanceResult struct {
	Segments []Position
	Ate      bool
	FruitID  int
}

func NewSnake(origin Position) *Snake {
	return &Snake{
		Segments: []Position{origin},
		Axis:     Horizontal,
		Step:     1,
		Head:     origin,
	}
}

// NextHead is where the head will be after the next Advance.
func (s *Snake) NextHead() Position {
	next := s.Head
	if s.Axis == Horizontal {
		next.X += s.Step
	} else {
		next.Y += s.Step
	}
	return next
}

// Advance moves the snake one cell. The tail is kept when a fruit sits on the new head,
// so the snake grows by one; otherwise the body translates. Bounds and self collisions
// are left to the caller.
func (s *Snake) Advance(fruits []Fruit) AdvanceResult {
	next := s.NextHead()

	segments := make([]Position, 0, len(s.Segments)+1)
	segments = append(segments, next)
	segments = append(segments, s.Segments...)
	s.Segments = segments
	s.Head = next

	eaten, ate := fruitAt(next, fruits)
	if !ate {
		s.Segments = s.Segments[:len(s.Segments)-1]
	}

	result := AdvanceResult{
		Segments: s.Body(),
		Ate:      ate,
	}
	if ate {
		result.FruitID = eaten.ID
	}
	return result
}

// Turn applies a direction change when it switches axis. Requests along the current axis,
// reversals included, are ignored and reported as false.
func (s *Snake) Turn(d Direction) bool {
	axis, step, ok := d.heading()
	if !ok || axis == s.Axis {
		return false
	}
	s.Axis = axis
	s.Step = step
	return true
}

func (s *Snake) IsEating(fruits []Fruit) bool {
	return IsEatingAt(s.Head, fruits)
}

// TouchesSelf reports whether the head shares its cell with another segment.
func (s *Snake) TouchesSelf() bool {
	count := 0
	for _, segment := range s.Segments {
		if segment == s.Head {
			count++
		}
	}
	return count > 1
}

func (s *Snake) Len() int {
	return len(s.Segments)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Position {
	body := make([]Position, len(s.Segments))
	copy(body, s.Segments)
	return body
}

func (s *Snake) Heading() Direction {
	return HeadingOf(s.Axis, s.Step)
}

func IsEatingAt(p Position, fruits []Fruit) bool {
	_, ok := fruitAt(p, fruits)
	return ok
}
