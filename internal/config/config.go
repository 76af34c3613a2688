package config

import "time"

// Game health and scoring
const (
	InitialHealth   = 5
	ScorePerMissile = 1
)

// Spawning. The interval shrinks geometrically after every spawn until it
// reaches the floor.
const (
	InitialSpawnInterval = 2000 * time.Millisecond
	MinSpawnInterval     = 400 * time.Millisecond
	SpawnDecay           = 0.995
)

// Missiles
const (
	MissileMinRadius     = 15.0
	MissileRadiusRange   = 10.0 // Radius is in [min, min+range)
	MissileMinSpeed      = 40.0 // Pixels per second
	MissileSpeedRange    = 30.0
	MissileSpeedPerScore = 1.0 // Added speed per point of score at spawn time
)

// Hit-testing
const (
	HitEnlargement = 1.3 // Radial hit area multiplier for imprecise taps
)

// Explosions
const (
	ExplosionDuration       = 800 * time.Millisecond
	ExplosionRadiusFactor   = 3.0
	ExplosionDefaultBaseRad = 20.0
	ExplosionCoreFactor     = 0.3
)

// Backdrop
const (
	StarCount         = 100
	PlanetRadiusRatio = 0.4 // Relative to min(width, height)
)

// Terminal rendering. Each half-block sub-pixel covers TerminalPixelScale
// simulation pixels in both directions.
const (
	TerminalPixelScale = 4
	MaxTermWidth       = 200
	MaxTermHeight      = 60
)

// Window rendering
const (
	WindowWidth  = 480
	WindowHeight = 720
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)
