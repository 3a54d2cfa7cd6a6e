package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Variant tags an obstacle's shape class. It affects rendering only;
// collision uses the width/height box regardless of variant.
type Variant int

const (
	VariantCactusSmall Variant = iota
	VariantCactusLarge
	VariantRock
)

// catalogEntry is one template in the fixed obstacle catalog.
type catalogEntry struct {
	Width   int
	Height  int
	Variant Variant
}

// catalog is the fixed set of spawnable obstacles. Spawns pick uniformly.
var catalog = []catalogEntry{
	{Width: 1, Height: 2, Variant: VariantCactusSmall},
	{Width: 2, Height: 3, Variant: VariantCactusSmall},
	{Width: 2, Height: 4, Variant: VariantCactusLarge},
	{Width: 3, Height: 3, Variant: VariantCactusLarge},
	{Width: 3, Height: 2, Variant: VariantRock},
}

// Obstacle is a ground obstacle the runner must jump over.
// X is the left edge and decreases every tick by the current speed.
type Obstacle struct {
	X       float64
	Width   int
	Height  int
	Variant Variant
}

// Rect returns the collision rectangle for this obstacle in screen
// coordinates, given the ground line's y position.
func (o Obstacle) Rect(groundY int) core.Rect {
	return core.NewRect(int(o.X), groundY-o.Height, o.Width, o.Height)
}

// Spawner owns obstacle creation, scrolling and retirement.
// A countdown decrements once per tick; when it reaches zero exactly one
// obstacle spawns at the right edge and the countdown resets to the
// current spawn interval. At most one obstacle is created per tick.
type Spawner struct {
	obstacles []Obstacle
	rng       *rand.Rand
	screenW   int
	countdown int
}

// NewSpawner creates a spawner with the given RNG seed and screen width.
func NewSpawner(seed int64, screenW int, interval int) *Spawner {
	sp := &Spawner{
		obstacles: make([]Obstacle, 0, 8),
		screenW:   screenW,
	}
	sp.Reset(seed, interval)
	return sp
}

// Reset clears all obstacles, reseeds the RNG and restarts the countdown.
func (sp *Spawner) Reset(seed int64, interval int) {
	sp.obstacles = sp.obstacles[:0]
	sp.rng = rand.New(rand.NewSource(seed))
	sp.countdown = interval
}

// SetScreenWidth updates the right-edge spawn position.
func (sp *Spawner) SetScreenWidth(screenW int) {
	sp.screenW = screenW
}

// Advance runs one spawner tick: scrolls live obstacles left by speed,
// retires those whose trailing edge has passed the left boundary, then
// performs the single per-tick spawn check. Returns how many obstacles
// were retired (avoided) this tick.
func (sp *Spawner) Advance(speed float64, interval int) int {
	// Scroll
	for i := range sp.obstacles {
		sp.obstacles[i].X -= speed
	}

	// Retire off-screen obstacles
	avoided := 0
	live := sp.obstacles[:0]
	for _, o := range sp.obstacles {
		if o.X+float64(o.Width) > 0 {
			live = append(live, o)
		} else {
			avoided++
		}
	}
	sp.obstacles = live

	// Spawn check
	sp.countdown--
	if sp.countdown <= 0 {
		sp.spawn()
		sp.countdown = interval
	}

	return avoided
}

// spawn creates one obstacle at the right edge from the fixed catalog.
func (sp *Spawner) spawn() {
	entry := catalog[sp.rng.Intn(len(catalog))]
	sp.obstacles = append(sp.obstacles, Obstacle{
		X:       float64(sp.screenW),
		Width:   entry.Width,
		Height:  entry.Height,
		Variant: entry.Variant,
	})
}

// Obstacles returns the current list of live obstacles.
func (sp *Spawner) Obstacles() []Obstacle {
	return sp.obstacles
}

// Collides tests the runner's box against every live obstacle using the
// positions already updated this tick. The first hit is sufficient.
func (sp *Spawner) Collides(runner core.Rect, groundY int) bool {
	for _, o := range sp.obstacles {
		if runner.Intersects(o.Rect(groundY)) {
			return true
		}
	}
	return false
}
