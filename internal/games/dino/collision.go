package dino

import "github.com/allanrg4/runner/internal/core"

// Collision describes the first pair of overlapping sub-boxes, in world
// space. It is only meaningful when CheckForCollision reports true.
type Collision struct {
	ActorBox    core.CollisionBox
	ObstacleBox core.CollisionBox
}

// CheckForCollision tests the actor against one obstacle.
//
// The coarse phase compares the full sprite boxes trimmed by one pixel of
// border padding. Only when those overlap are the sub-boxes compared,
// actor boxes in the outer loop, each translated by its owner's coarse
// box origin. The first overlapping pair is returned.
func CheckForCollision(o *Obstacle, a *Actor) (Collision, bool) {
	if o == nil || a == nil {
		return Collision{}, false
	}

	actorBox := a.Box().Trim(1)
	obstacleBox := o.Box().Trim(1)
	if !actorBox.Intersects(obstacleBox) {
		return Collision{}, false
	}

	for _, ab := range a.CollisionBoxes() {
		adjActor := ab.Translate(actorBox)
		for _, ob := range o.CollisionBoxes {
			adjObstacle := ob.Translate(obstacleBox)
			if adjActor.Intersects(adjObstacle) {
				return Collision{ActorBox: adjActor, ObstacleBox: adjObstacle}, true
			}
		}
	}
	return Collision{}, false
}
