package game

import "math/rand/v2"

type Fruit struct {
	ID int
	Position
}

// RandomizeFruits places count fruits on independent uniform cells. Overlaps with each
// other or with the snake are allowed.
func RandomizeFruits(rng *rand.Rand, world World, count int) []Fruit {
	fruits := make([]Fruit, 0, count)
	for i := range count {
		fruits = append(fruits, Fruit{
			ID: i + 1,
			Position: Position{
				X: rng.IntN(world.Size),
				Y: rng.IntN(world.Size),
			},
		})
	}
	return fruits
}

// FruitBasket owns the fruit on the board together with the random source used to
// place new ones.
type FruitBasket struct {
	world  World
	rng    *rand.Rand
	fruits []Fruit
	nextID int
}

func NewFruitBasket(rng *rand.Rand, world World) *FruitBasket {
	return &FruitBasket{
		world:  world,
		rng:    rng,
		nextID: 1,
	}
}

// Randomize replaces the current fruit with count randomly placed ones.
func (b *FruitBasket) Randomize(count int) {
	fruits := RandomizeFruits(b.rng, b.world, count)
	for i := range fruits {
		fruits[i].ID = b.nextID
		b.nextID++
	}
	b.fruits = fruits
}

// Remove drops the fruit with the given id. Only that entry is touched even when other
// fruit share its cell.
func (b *FruitBasket) Remove(id int) bool {
	for i, fruit := range b.fruits {
		if fruit.ID == id {
			b.fruits = append(b.fruits[:i], b.fruits[i+1:]...)
			return true
		}
	}
	return false
}

// SpawnReplacement puts one fruit on a cell free of snake and fruit. It returns false and
// places nothing when the board is full.
func (b *FruitBasket) SpawnReplacement(snake *Snake) (Fruit, bool) {
	free := b.world.FreeCells(snake.Segments, b.Positions())
	if len(free) == 0 {
		return Fruit{}, false
	}

	fruit := Fruit{ID: b.nextID, Position: free[b.rng.IntN(len(free))]}
	b.nextID++
	b.fruits = append(b.fruits, fruit)
	return fruit, true
}

func (b *FruitBasket) Fruits() []Fruit {
	fruits := make([]Fruit, len(b.fruits))
	copy(fruits, b.fruits)
	return fruits
}

func (b *FruitBasket) Positions() []Position {
	positions := make([]Position, len(b.fruits))
	for i, fruit := range b.fruits {
		positions[i] = fruit.Position
	}
	return positions
}

func (b *FruitBasket) Len() int {
	return len(b.fruits)
}

func fruitAt(p Position, fruits []Fruit) (Fruit, bool) {
	for _, fruit := range fruits {
		if fruit.Position == p {
			return fruit, true
		}
	}
	return Fruit{}, false
}
