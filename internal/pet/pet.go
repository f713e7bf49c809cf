package pet

import (
	"log"
	"math"
	"math/rand"
	"time"
)

// Testable time and random functions
var (
	TimeNow     = func() time.Time { return time.Now() }
	RandFloat64 = rand.Float64
)

// Pet represents the virtual pet's state
type Pet struct {
	Name        string        `json:"name"`
	Hunger      int           `json:"hunger"`
	Happiness   int           `json:"happiness"`
	Energy      int           `json:"energy"`
	Health      int           `json:"health"`
	Age         int           `json:"age"` // whole days
	LastUpdated time.Time     `json:"last_updated"`
	Mood        Mood          `json:"mood"`
	Character   CharacterType `json:"character,omitempty"`
}

// New creates a pet with default stats and a random character variant.
func New(name string) Pet {
	p := Pet{
		Name:        name,
		Hunger:      InitialHunger,
		Happiness:   InitialHappiness,
		Energy:      InitialEnergy,
		Health:      InitialHealth,
		Age:         0,
		LastUpdated: TimeNow(),
		Mood:        MoodHappy,
		Character:   RandomCharacter(),
	}
	log.Printf("Created new pet: %s (%s)", p.Name, p.Character)
	return p
}

// Update advances the pet's stats for the time elapsed since LastUpdated.
// Decay is capped per call: no matter how long the pet was neglected, one
// Update decreases hunger/happiness/energy by at most 5/3/2 points. Callers
// that poll more often than once an hour will under-decay relative to rare
// callers with the same total elapsed time; that quantization is part of the
// gameplay balance, not something to smooth out.
func (p *Pet) Update(now time.Time) {
	hours := now.Sub(p.LastUpdated).Seconds() / 3600.0
	if hours < 0 {
		// Clock went backwards; skip decay but still adopt the new timestamp
		hours = 0
	}

	p.Hunger = max(p.Hunger-int(math.Min(HungerDecayRate*hours, HungerDecayCap)), MinStat)
	p.Happiness = max(p.Happiness-int(math.Min(HappinessDecayRate*hours, HappinessDecayCap)), MinStat)
	p.Energy = max(p.Energy-int(math.Min(EnergyDecayRate*hours, EnergyDecayCap)), MinStat)

	// Whole days only; fractional progress below 24h is discarded each call
	p.Age += int(hours / HoursPerDay)

	if p.Hunger < CriticalStatThreshold || p.Happiness < CriticalStatThreshold {
		p.Health = max(p.Health-HealthDecayAmount, MinStat)
	}

	p.updateMood()
	p.LastUpdated = now
}

// Feed raises hunger and gives a small energy boost.
func (p *Pet) Feed() {
	p.Hunger = min(p.Hunger+FeedHungerIncrease, MaxStat)
	p.Energy = min(p.Energy+FeedEnergyIncrease, MaxStat)
	p.updateMood()
}

// Play raises happiness at the cost of hunger and energy.
func (p *Pet) Play() {
	p.Happiness = min(p.Happiness+PlayHappinessIncrease, MaxStat)
	p.Hunger = max(p.Hunger-PlayHungerDecrease, MinStat)
	p.Energy = max(p.Energy-PlayEnergyDecrease, MinStat)
	p.updateMood()
}

// Sleep fully restores energy and cheers the pet up a little.
func (p *Pet) Sleep() {
	p.Energy = MaxStat
	p.Happiness = min(p.Happiness+SleepHappinessIncrease, MaxStat)
	p.updateMood()
}

// Heal fully restores health.
func (p *Pet) Heal() {
	p.Health = MaxStat
	p.updateMood()
}

// IsAlive reports whether the pet still has health left.
func (p *Pet) IsAlive() bool {
	return p.Health > 0
}

// Helper functions
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
