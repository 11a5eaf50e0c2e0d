package world

import "math/rand"

// Room is a rectangular carved area of a floor.
type Room struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// Center returns the room's midpoint, where stairs and arriving players
// land.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains reports whether a point lies inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// RandomPoint picks a uniform point inside the room.
func (r Room) RandomPoint(rng *rand.Rand) (int, int) {
	return r.X + rng.Intn(r.Width), r.Y + rng.Intn(r.Height)
}
