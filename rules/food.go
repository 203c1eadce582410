package rules

import (
	"math/rand"
	"sync"
	"time"
)

// FoodSpawner picks where the next piece of food goes.
type FoodSpawner interface {
	Spawn(snake *Snake, width, height int32) Point
}

// RandomSpawner places food uniformly at random on a free cell.
type RandomSpawner struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSpawner returns a spawner drawing from rng. A nil rng is seeded from
// the clock.
func NewRandomSpawner(rng *rand.Rand) *RandomSpawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomSpawner{rng: rng}
}

// Spawn samples cells until one is not covered by the snake. There is no retry
// limit: on a board the snake completely fills this never returns.
func (sp *RandomSpawner) Spawn(snake *Snake, width, height int32) Point {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	for {
		p := Point{
			X: sp.rng.Int31n(width),
			Y: sp.rng.Int31n(height),
		}
		if !snake.Occupies(p) {
			return p
		}
	}
}
