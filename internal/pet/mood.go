package pet

// Mood is the pet's derived well-being classification. It is recomputed by
// the engine after every stat change and is never set from outside; a mood
// read between operations always reflects the stats at the last change.
type Mood string

const (
	MoodHappy    Mood = "Happy"
	MoodNeutral  Mood = "Neutral"
	MoodSad      Mood = "Sad"
	MoodSick     Mood = "Sick"
	MoodSleeping Mood = "Sleeping"
	MoodExcited  Mood = "Excited"
	MoodPlayful  Mood = "Playful"
)

// updateMood reclassifies the pet's mood from its current stats. The rules
// are checked in priority order and the first match wins.
func (p *Pet) updateMood() {
	switch {
	case p.Health < 30:
		p.Mood = MoodSick
	case p.Energy < 20:
		p.Mood = MoodSleeping
	case p.Hunger < 30 || p.Happiness < 30:
		p.Mood = MoodSad
	case p.Hunger > 70 && p.Happiness > 70 && p.Energy > 70:
		p.Mood = MoodExcited
	case p.Hunger > 70 && p.Happiness > 70:
		p.Mood = MoodHappy
	case p.Happiness > 80:
		p.Mood = MoodPlayful
	default:
		p.Mood = MoodNeutral
	}
}

// Valid reports whether m is one of the seven known moods. Hand-edited or
// pre-mood save files fail this check and get reclassified on load.
func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodNeutral, MoodSad, MoodSick, MoodSleeping, MoodExcited, MoodPlayful:
		return true
	}
	return false
}

// Emoji returns the face shown next to the pet's name.
func (m Mood) Emoji() string {
	switch m {
	case MoodHappy:
		return "😊"
	case MoodNeutral:
		return "😐"
	case MoodSad:
		return "😢"
	case MoodSick:
		return "🤒"
	case MoodSleeping:
		return "😴"
	case MoodExcited:
		return "🤩"
	case MoodPlayful:
		return "😋"
	default:
		return "❓"
	}
}

// Message returns the pet's one-liner for the mood.
func (m Mood) Message() string {
	switch m {
	case MoodHappy:
		return "💖 I'm happy! 💖"
	case MoodNeutral:
		return "🌱 I'm doing okay. 🌱"
	case MoodSad:
		return "💧 I'm feeling sad... 💧"
	case MoodSick:
		return "🌡️ I don't feel well... 💊"
	case MoodSleeping:
		return "💤 Zzz... 💤"
	case MoodExcited:
		return "✨ I'm super excited! ✨"
	case MoodPlayful:
		return "🎮 Let's play! 🎮"
	default:
		return ""
	}
}

// Frames returns the kaomoji idle animation for the mood.
func (m Mood) Frames() []string {
	switch m {
	case MoodHappy:
		return []string{"(⌦ᕔ ᕕ ᕔ⌦)", "(⌦ᕔ‿ᕔ⌦)", "(⌦ᕔ ᕕ ᕔ⌦)", "(⌦ᕔ‿ᕔ⌦)"}
	case MoodNeutral:
		return []string{"(・ω・)", "(・ω・)", "(・ω・)", "(・ω・)"}
	case MoodSad:
		return []string{"(╥_╥)", "(╥︣_╥︭)", "(╥_╥)", "(╥︣_╥︭)"}
	case MoodSick:
		return []string{"(˘_˘)", "(˘_˘)", "(˘_˘)", "(*￣m￣)"}
	case MoodSleeping:
		return []string{"(-.-)zzz", "(-_-)zzz", "(-.-)zzz", "(-_-)zzz"}
	case MoodExcited:
		return []string{"(★^O^★)", "(☆^ー^☆)", "(★^O^★)", "(☆^ー^☆)"}
	case MoodPlayful:
		return []string{"(◕ᗜ◕✿)", "(◠‿◠✿)", "(◕ᗜ◕✿)", "(◠‿◠✿)"}
	default:
		return []string{"(・ω・)"}
	}
}
