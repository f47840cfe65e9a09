package config

// Rules holds every tunable parameter the simulation consumes.
// Nothing in the engine hard-codes these; tests and entrypoints build the
// Rules they need.
type Rules struct {
	// Field dimensions in logical units.
	FieldWidth  float64
	FieldHeight float64

	// Asteroid sizing. Fresh asteroids spawn with radius
	// MinAsteroidRadius * kind for a random kind in [1, AsteroidKinds].
	MinAsteroidRadius float64
	AsteroidKinds     int

	// Edge spawning.
	SpawnInterval    float64 // Seconds between spawns
	SpawnSpeedMin    float64 // Units per second
	SpawnSpeedMax    float64
	SpawnAngleSpread float64 // Degrees to either side of the inward normal

	// Splitting.
	SplitAngleMin   float64 // Degrees, lower bound of the deflection draw
	SplitAngleMax   float64 // Degrees, upper bound
	SplitSpeedScale float64 // Fragment speed multiplier per split

	// Ship.
	ShipRadius    float64
	ShipTurnSpeed float64 // Degrees per second
	ShipSpeed     float64 // Units per second
	ShotSpeed     float64
	ShotRadius    float64
	ShotCooldown  float64 // Minimum seconds between shots

	// Simulation.
	DespawnMargin float64 // Extra distance past the field edge before despawn
	MaxDelta      float64 // Largest dt a single tick may integrate, seconds
}

// MaxAsteroidRadius returns the radius of the largest spawnable asteroid.
func (r Rules) MaxAsteroidRadius() float64 {
	return r.MinAsteroidRadius * float64(r.AsteroidKinds)
}

// DefaultRules returns the standard game rules.
func DefaultRules() Rules {
	return Rules{
		FieldWidth:  1280,
		FieldHeight: 720,

		MinAsteroidRadius: 20,
		AsteroidKinds:     3,

		SpawnInterval:    0.8,
		SpawnSpeedMin:    40,
		SpawnSpeedMax:    100,
		SpawnAngleSpread: 30,

		SplitAngleMin:   20,
		SplitAngleMax:   50,
		SplitSpeedScale: 1.2,

		ShipRadius:    20,
		ShipTurnSpeed: 300,
		ShipSpeed:     200,
		ShotSpeed:     500,
		ShotRadius:    5,
		ShotCooldown:  0.3,

		DespawnMargin: 120,
		MaxDelta:      0.1,
	}
}

// RulesFromEnv returns the default rules with any ROCKFALL_* environment
// overrides applied.
func RulesFromEnv() Rules {
	r := DefaultRules()
	r.FieldWidth = GetEnvFloat("ROCKFALL_FIELD_WIDTH", r.FieldWidth)
	r.FieldHeight = GetEnvFloat("ROCKFALL_FIELD_HEIGHT", r.FieldHeight)
	r.MinAsteroidRadius = GetEnvFloat("ROCKFALL_MIN_ASTEROID_RADIUS", r.MinAsteroidRadius)
	r.AsteroidKinds = GetEnvInt("ROCKFALL_ASTEROID_KINDS", r.AsteroidKinds)
	r.SpawnInterval = GetEnvFloat("ROCKFALL_SPAWN_INTERVAL", r.SpawnInterval)
	r.SpawnSpeedMin = GetEnvFloat("ROCKFALL_SPAWN_SPEED_MIN", r.SpawnSpeedMin)
	r.SpawnSpeedMax = GetEnvFloat("ROCKFALL_SPAWN_SPEED_MAX", r.SpawnSpeedMax)
	r.SpawnAngleSpread = GetEnvFloat("ROCKFALL_SPAWN_ANGLE_SPREAD", r.SpawnAngleSpread)
	r.SplitAngleMin = GetEnvFloat("ROCKFALL_SPLIT_ANGLE_MIN", r.SplitAngleMin)
	r.SplitAngleMax = GetEnvFloat("ROCKFALL_SPLIT_ANGLE_MAX", r.SplitAngleMax)
	r.SplitSpeedScale = GetEnvFloat("ROCKFALL_SPLIT_SPEED_SCALE", r.SplitSpeedScale)
	r.ShipTurnSpeed = GetEnvFloat("ROCKFALL_SHIP_TURN_SPEED", r.ShipTurnSpeed)
	r.ShipSpeed = GetEnvFloat("ROCKFALL_SHIP_SPEED", r.ShipSpeed)
	r.ShotSpeed = GetEnvFloat("ROCKFALL_SHOT_SPEED", r.ShotSpeed)
	r.ShotCooldown = GetEnvFloat("ROCKFALL_SHOT_COOLDOWN", r.ShotCooldown)
	return r
}
