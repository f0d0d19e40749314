package sim

// Cadences, as tick moduli.
const (
	EarthCadence     = 2 // dirt, grass
	LavaCadence      = 2
	FireCadence      = 4
	AcidCadence      = 4
	StoneSlipCadence = 4

	WalkCadence    = 10
	GravityCadence = 4
	BreathCadence  = 6
)

// Probabilities expressed as one-in-N rolls.
const (
	GrassChance     = 50    // dirt grows grass (2%)
	BurnOutChance   = 10    // fire dies (10%)
	StoneSlipChance = 90000 // stone drops without lateral clearance
	LavaSparkChance = 90000 // lava melts the cell below
)

// Character survival budgets.
const (
	MaxBreath       = 16
	DrowningWarning = 7  // breath value at which the drowning cue plays
	FallWarning     = 6  // airTime at which the falling cue plays
	MaxAirTime      = 40 // falls longer than this kill on landing
)

// Default footprint for entities spawned without an explicit size.
const (
	DefaultSpriteW = 3
	DefaultSpriteH = 5
)
