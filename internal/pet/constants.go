package pet

// Game constants
const (
	MaxStat = 100
	MinStat = 0

	// Stat decay rates (points per hour) and their per-call caps. A single
	// Update never decreases a stat by more than its cap, however long the
	// pet was left alone.
	HungerDecayRate    = 5.0
	HungerDecayCap     = 5.0
	HappinessDecayRate = 3.0
	HappinessDecayCap  = 3.0
	EnergyDecayRate    = 2.0
	EnergyDecayCap     = 2.0

	HoursPerDay = 24

	// Health drops by a flat amount while hunger or happiness is critical
	CriticalStatThreshold = 20
	HealthDecayAmount     = 5

	// Action effects
	FeedHungerIncrease     = 30
	FeedEnergyIncrease     = 5
	PlayHappinessIncrease  = 20
	PlayHungerDecrease     = 10
	PlayEnergyDecrease     = 15
	SleepHappinessIncrease = 5

	// Starting stats for a newly hatched pet
	InitialHunger    = 50
	InitialHappiness = 50
	InitialEnergy    = 100
	InitialHealth    = 100
)
