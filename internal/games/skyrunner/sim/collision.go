package sim

import "github.com/go-gl/mathgl/mgl64"

// Collide tests the player position against every board and returns the
// struck obstacle, or nil. Each board is tested once; boards away from the
// player's depth plane reject without any geometric test. Earlier boards
// win ties, and within a board the lowest cell index wins.
func Collide(boards []*Board, p mgl64.Vec3) *Obstacle {
	for _, b := range boards {
		if o := b.TestCollision(p); o != nil {
			return o
		}
	}
	return nil
}
