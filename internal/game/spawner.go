package game

import (
	"time"

	"github.com/tomz197/missiles/internal/config"
)

// Spawner decides when the next missile enters. The interval between
// spawns shrinks geometrically towards a floor.
type Spawner struct {
	Interval  time.Duration
	lastSpawn time.Duration
	spawned   bool // false until the first spawn since reset
}

// NewSpawner creates a spawner with the initial interval and no spawn
// recorded yet.
func NewSpawner() *Spawner {
	return &Spawner{Interval: config.InitialSpawnInterval}
}

// Reset restores the initial interval and clears the last spawn time.
func (s *Spawner) Reset() {
	s.Interval = config.InitialSpawnInterval
	s.lastSpawn = 0
	s.spawned = false
}

// Due reports whether a missile should spawn at simulation time now.
func (s *Spawner) Due(now time.Duration) bool {
	if !s.spawned {
		return true
	}
	return now-s.lastSpawn > s.Interval
}

// Record marks a spawn at now and shortens the interval.
func (s *Spawner) Record(now time.Duration) {
	s.lastSpawn = now
	s.spawned = true
	s.Interval = NextInterval(s.Interval)
}

// NextInterval returns the interval following cur: cur scaled by the decay
// factor, never below the floor.
func NextInterval(cur time.Duration) time.Duration {
	next := time.Duration(float64(cur) * config.SpawnDecay)
	return max(next, config.MinSpawnInterval)
}
