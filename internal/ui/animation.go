package ui

import (
	"time"

	"nybbler/internal/pet"
)

// AnimationType represents the type of action animation
type AnimationType int

const (
	AnimNone AnimationType = iota
	AnimFeed
	AnimPlay
	AnimSleep
	AnimHeal
)

// Animation holds the current animation state
type Animation struct {
	Type      AnimationType
	Frame     int
	StartTime time.Time
}

// animationCaptions holds the caption shown under the character art for each
// frame of an action animation
var animationCaptions = map[AnimationType][]string{
	AnimFeed: {
		"🍽️ Nom nom nom...",
		"🍽️ Nom nom nom...",
		"😋 Yummy! That was delicious!",
	},
	AnimPlay: {
		"🎯 Wheee!",
		"🏀 Bouncing around with joy!",
		"🎉 So much fun!",
	},
	AnimSleep: {
		"😴 Zzz...",
		"💭 Dreaming of treats and toys...",
		"💤 What a refreshing nap!",
	},
	AnimHeal: {
		"🌡️ Recovering...",
		"💊 The medicine is working...",
		"💪 All better now! Healthy and strong!",
	},
}

// AnimationFrameDuration is how long each frame displays
const AnimationFrameDuration = 400 * time.Millisecond

// characterPose returns the character art matching an animation type
func characterPose(c pet.CharacterType, animType AnimationType) string {
	switch animType {
	case AnimFeed:
		return c.Eating()
	case AnimPlay:
		return c.Playing()
	case AnimSleep:
		return c.Sleeping()
	case AnimHeal:
		return c.Healing()
	default:
		return c.Neutral()
	}
}

// GetAnimationFrame returns the rendered frame for an animation
func GetAnimationFrame(anim Animation, c pet.CharacterType) string {
	captions := animationCaptions[anim.Type]
	if len(captions) == 0 {
		return ""
	}
	index := anim.Frame
	if index >= len(captions) {
		index = len(captions) - 1
	}
	return characterPose(c, anim.Type) + "\n" + captions[index]
}

// IsAnimationComplete returns true if the animation has finished
func IsAnimationComplete(anim Animation) bool {
	return anim.Frame >= len(animationCaptions[anim.Type])
}

// AnimationTotalFrames returns the number of frames for an animation type
func AnimationTotalFrames(animType AnimationType) int {
	return len(animationCaptions[animType])
}
