package game

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

var ErrLoopRunning = errors.New("game loop is already running")

// FrameMsg carries the state after a tick to the render side.
type FrameMsg struct {
	Snapshot Snapshot
}

// SnakeDeadMsg is the last message a game loop publishes.
type SnakeDeadMsg struct {
	Err      error
	Snapshot Snapshot
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Tick        int
	Segments    []Position
	Fruits      []Position
	Head        Position
	Heading     Direction
	Length      int
	FruitsEaten int
	Dead        bool
}

type Option func(*GameManager)

func WithSeed(seed uint64) Option {
	return func(gm *GameManager) {
		gm.seed = seed
	}
}

func WithWorld(world World) Option {
	return func(gm *GameManager) {
		gm.World = world
	}
}

func WithOrigin(origin Position) Option {
	return func(gm *GameManager) {
		gm.origin = origin
	}
}

func WithFruitCount(count int) Option {
	return func(gm *GameManager) {
		gm.fruitCount = count
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(gm *GameManager) {
		gm.logger = logger
	}
}

func WithTickDuration(d time.Duration) Option {
	return func(gm *GameManager) {
		gm.tickDuration = d
	}
}

// GameManager owns one game. Whoever drives it, a StartGameLoop goroutine or a render
// thread calling ProcessTick directly, is the only one allowed to touch it.
type GameManager struct {
	World       World
	Snake       *Snake
	Fruits      *FruitBasket
	TickCount   int
	FruitsEaten int

	// Input collaborators write here while StartGameLoop runs.
	DirectionChannel chan Direction
	AuxChannel       chan struct{}
	UpdateChannel    chan any

	seed         uint64
	origin       Position
	fruitCount   int
	tickDuration time.Duration
	logger       *log.Logger
	err          error
	isRunning    atomic.Bool
}

func NewGameManager(opts ...Option) *GameManager {
	gm := &GameManager{
		World:            DefaultWorld(),
		DirectionChannel: make(chan Direction, directionBufferSize),
		AuxChannel:       make(chan struct{}, directionBufferSize),
		UpdateChannel:    make(chan any, updateBufferSize),
		seed:             uint64(time.Now().UnixNano()),
		origin:           Position{X: OriginX, Y: OriginY},
		fruitCount:       InitialFruitCount,
		tickDuration:     GameTickDuration,
		logger:           log.Default(),
	}
	for _, opt := range opts {
		opt(gm)
	}

	rng := rand.New(rand.NewPCG(gm.seed, gm.seed^0x9e3779b97f4a7c15))
	gm.Snake = NewSnake(gm.origin)
	gm.Fruits = NewFruitBasket(rng, gm.World)
	gm.Fruits.Randomize(gm.fruitCount)

	return gm
}

func (gm *GameManager) Seed() uint64 {
	return gm.seed
}

func (gm *GameManager) TickDuration() time.Duration {
	return gm.tickDuration
}

// Err returns the collision that ended the game, or nil while it is still running.
func (gm *GameManager) Err() error {
	return gm.err
}

func (gm *GameManager) ProcessInput(d Direction) {
	if gm.err != nil {
		return
	}
	if gm.Snake.Turn(d) {
		gm.logger.Debug("Turn accepted", "direction", d, "axis", gm.Snake.Axis, "step", gm.Snake.Step)
		return
	}
	gm.logger.Debug("Turn ignored", "direction", d, "axis", gm.Snake.Axis)
}

// ProcessTick advances the snake once, ends the game on a collision and otherwise
// replaces an eaten fruit. Once a collision happened every call returns it unchanged.
func (gm *GameManager) ProcessTick() error {
	if gm.err != nil {
		return gm.err
	}

	result := gm.Snake.Advance(gm.Fruits.fruits)
	gm.TickCount++

	if collision := gm.checkCollision(); collision != nil {
		gm.err = collision
		gm.logger.Error("Snake collided", "kind", collision.Kind, "head", collision.Head, "tick", collision.Tick)
		return collision
	}

	if !result.Ate {
		return nil
	}

	gm.FruitsEaten++
	gm.Fruits.Remove(result.FruitID)
	fruit, spawned := gm.Fruits.SpawnReplacement(gm.Snake)
	if !spawned {
		gm.logger.Warn("No free cell left, fruit not replaced", "length", gm.Snake.Len(), "tick", gm.TickCount)
		return nil
	}
	gm.logger.Debug("Fruit eaten", "fruit", result.FruitID, "length", gm.Snake.Len(), "spawned", fruit.Position)

	return nil
}

func (gm *GameManager) checkCollision() *CollisionError {
	head := gm.Snake.Head
	switch {
	case gm.World.IsOutOfBounds(head):
		return &CollisionError{Kind: BoundaryViolation, Head: head, Tick: gm.TickCount}
	case gm.Snake.TouchesSelf():
		return &CollisionError{Kind: SelfCollision, Head: head, Tick: gm.TickCount}
	}
	return nil
}

func (gm *GameManager) Snapshot() Snapshot {
	return Snapshot{
		Tick:        gm.TickCount,
		Segments:    gm.Snake.Body(),
		Fruits:      gm.Fruits.Positions(),
		Head:        gm.Snake.Head,
		Heading:     gm.Snake.Heading(),
		Length:      gm.Snake.Len(),
		FruitsEaten: gm.FruitsEaten,
		Dead:        gm.err != nil,
	}
}

// SendDirection queues a turn for the running loop. It never blocks; when the queue is
// full the request is dropped.
func (gm *GameManager) SendDirection(d Direction) bool {
	select {
	case gm.DirectionChannel <- d:
		return true
	default:
		return false
	}
}

func (gm *GameManager) SendAux() bool {
	select {
	case gm.AuxChannel <- struct{}{}:
		return true
	default:
		return false
	}
}

// StartGameLoop ticks the game until it is cancelled or the snake collides. Every tick is
// followed by a FrameMsg on UpdateChannel; a collision is reported as SnakeDeadMsg and
// returned. UpdateChannel is closed when the loop exits.
func (gm *GameManager) StartGameLoop(ctx context.Context) error {
	if !gm.isRunning.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer close(gm.UpdateChannel)

	gm.logger.Info("Game loop started", "seed", gm.seed, "tick", gm.tickDuration)

	ticker := time.NewTicker(gm.tickDuration)
	defer ticker.Stop()

	if !gm.publish(ctx, FrameMsg{Snapshot: gm.Snapshot()}) {
		gm.logger.Info("Game loop stopped")
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			gm.logger.Info("Game loop stopped", "tick", gm.TickCount)
			return nil

		case dir := <-gm.DirectionChannel:
			gm.ProcessInput(dir)

		case <-gm.AuxChannel:
			gm.logger.Debug("Space")

		case <-ticker.C:
			if err := gm.ProcessTick(); err != nil {
				gm.publish(ctx, SnakeDeadMsg{Err: err, Snapshot: gm.Snapshot()})
				return err
			}
			if !gm.publish(ctx, FrameMsg{Snapshot: gm.Snapshot()}) {
				gm.logger.Info("Game loop stopped", "tick", gm.TickCount)
				return nil
			}
		}
	}
}

func (gm *GameManager) publish(ctx context.Context, msg any) bool {
	select {
	case gm.UpdateChannel <- msg:
		return true
	case <-ctx.Done():
		return false
	}
}
