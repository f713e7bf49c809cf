package pet

// CharacterType identifies the pet's cosmetic character design. It only
// affects how the pet is drawn; all characters share the same rules.
type CharacterType string

const (
	CharacterBlob   CharacterType = "blob"
	CharacterSquare CharacterType = "square"
	CharacterGhost  CharacterType = "ghost"
	CharacterCat    CharacterType = "cat"
	CharacterRobo   CharacterType = "robo"
)

var characterTypes = []CharacterType{
	CharacterBlob,
	CharacterSquare,
	CharacterGhost,
	CharacterCat,
	CharacterRobo,
}

// RandomCharacter picks a character design for a new pet. Save files written
// before character variants existed have no character tag, so Load also uses
// this to backfill one.
func RandomCharacter() CharacterType {
	index := int(RandFloat64() * float64(len(characterTypes)))
	if index >= len(characterTypes) {
		index = len(characterTypes) - 1
	}
	return characterTypes[index]
}

// Valid reports whether c is a known character design.
func (c CharacterType) Valid() bool {
	for _, known := range characterTypes {
		if c == known {
			return true
		}
	}
	return false
}

// Neutral returns the character's resting pose.
func (c CharacterType) Neutral() string {
	switch c {
	case CharacterBlob:
		return `
  ████████
 ██        ██
██  ○    ○  ██
██          ██
██    ◡     ██
 ██        ██
  ████████
`
	case CharacterSquare:
		return `
 ▄▄▄▄▄▄▄▄▄▄
 █ ▓  ▓    █
 █         █
 █    ‿    █
 ▀▀▀▀▀▀▀▀▀▀
`
	case CharacterGhost:
		return `
   ▄████▄
  █ ◕  ◕ █
  █      █
  █  ▿   █
  █▀▀▀▀▀▀█
 ▀ ▀  ▀▀ ▀ ▀
`
	case CharacterCat:
		return `
 /\_/\
( o.o )
 > ᴥ <
`
	case CharacterRobo:
		return `
  ▄███▄
 █[□ □]█
 █  ▼  █
 ▀▀█ █▀▀
   ▀▀▀
`
	}
	return ""
}

// Eating returns the character mid-meal.
func (c CharacterType) Eating() string {
	switch c {
	case CharacterBlob:
		return `
  ████████
 ██        ██
██  ○    ○  ██
██          ██
██    O     ██
 ██        ██
  ████████
`
	case CharacterSquare:
		return `
 ▄▄▄▄▄▄▄▄▄▄
 █ ▓  ▓    █
 █         █
 █    O    █
 ▀▀▀▀▀▀▀▀▀▀
`
	case CharacterGhost:
		return `
   ▄████▄
  █ ◕  ◕ █
  █      █
  █  O   █
  █▀▀▀▀▀▀█
 ▀ ▀  ▀▀ ▀ ▀
`
	case CharacterCat:
		return `
 /\_/\
( o.o )
 > O <
`
	case CharacterRobo:
		return `
  ▄███▄
 █[□ □]█
 █  O  █
 ▀▀█ █▀▀
   ▀▀▀
`
	}
	return ""
}

// Sleeping returns the character with its eyes shut.
func (c CharacterType) Sleeping() string {
	switch c {
	case CharacterBlob:
		return `
  ████████
 ██        ██
██  -    -  ██
██          ██
██    ◡     ██
 ██        ██
  ████████
`
	case CharacterSquare:
		return `
 ▄▄▄▄▄▄▄▄▄▄
 █ -  -    █
 █         █
 █    ‿    █
 ▀▀▀▀▀▀▀▀▀▀
`
	case CharacterGhost:
		return `
   ▄████▄
  █ -  - █
  █      █
  █  ▿   █
  █▀▀▀▀▀▀█
 ▀ ▀  ▀▀ ▀ ▀
`
	case CharacterCat:
		return `
 /\_/\
( -.-)z
 > ᴥ <
`
	case CharacterRobo:
		return `
  ▄███▄
 █[- -]█
 █  ▼  █
 ▀▀█ █▀▀
   ▀▀▀
`
	}
	return ""
}

// Playing returns the character having fun.
func (c CharacterType) Playing() string {
	switch c {
	case CharacterBlob:
		return `
  ████████
 ██        ██
██  ◕    ◕  ██
██          ██
██    ◠     ██
 ██        ██
  ████████
`
	case CharacterSquare:
		return `
 ▄▄▄▄▄▄▄▄▄▄
 █ ♥  ♥    █
 █         █
 █    ◡    █
 ▀▀▀▀▀▀▀▀▀▀
`
	case CharacterGhost:
		return `
   ▄████▄
  █ ★  ★ █
  █      █
  █  ▽   █
  █▀▀▀▀▀▀█
 ▀ ▀  ▀▀ ▀ ▀
`
	case CharacterCat:
		return `
 /\_/\
(^o.o^)~
 > ᴥ <
`
	case CharacterRobo:
		return `
  ▄███▄
 █[! !]█
 █  ▲  █
 ▀▀█ █▀▀
   ▀▀▀
`
	}
	return ""
}

// Healing returns the character being patched up.
func (c CharacterType) Healing() string {
	switch c {
	case CharacterBlob:
		return `
  ████████
 ██        ██
██  +    +  ██
██          ██
██    ◡     ██
 ██        ██
  ████████
`
	case CharacterSquare:
		return `
 ▄▄▄▄▄▄▄▄▄▄
 █ +  +    █
 █         █
 █    ‿    █
 ▀▀▀▀▀▀▀▀▀▀
`
	case CharacterGhost:
		return `
   ▄████▄
  █ +  + █
  █      █
  █  ▿   █
  █▀▀▀▀▀▀█
 ▀ ▀  ▀▀ ▀ ▀
`
	case CharacterCat:
		return `
 /\_/\
( +.+ )
 > ᴥ <
`
	case CharacterRobo:
		return `
  ▄███▄
 █[+ +]█
 █  ▼  █
 ▀▀█ █▀▀
   ▀▀▀
`
	}
	return ""
}
