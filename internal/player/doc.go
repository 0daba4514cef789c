// Package player drives an animation from an algorithm step generator.
//
// A [Player] holds a pull iterator over the snapshots of one run and
// advances it from a frame loop: each call to [Player.Tick] pulls at
// most Speed snapshots. Rendering never blocks on the algorithm and the
// algorithm never runs ahead of the frames.
//
// # Lifecycle
//
//	Idle -> Running <-> Paused
//	Running -> Completed (generator exhausted)
//	any -> Idle (Stop)
//
// After completion the comparison chart is revealed progressively, two
// percentage points per tick.
//
// # Thread Safety
//
// Player is NOT thread-safe. It is meant to be owned by a single frame
// loop.
package player
