package journal

import "strings"

const (
	MoodHappy      = "happy"
	MoodSad        = "sad"
	MoodExcited    = "excited"
	MoodCalm       = "calm"
	MoodAnxious    = "anxious"
	MoodAngry      = "angry"
	MoodThoughtful = "thoughtful"
	MoodInspired   = "inspired"
	MoodNeutral    = "neutral"
)

var Moods = []string{
	MoodHappy, MoodSad, MoodExcited, MoodCalm, MoodAnxious,
	MoodAngry, MoodThoughtful, MoodInspired, MoodNeutral,
}

func IsValidMood(mood string) bool {
	for _, m := range Moods {
		if mood == m {
			return true
		}
	}
	return false
}

// NormalizeMood lowercases the label and maps anything outside the
// fixed set to neutral.
func NormalizeMood(mood string) string {
	mood = strings.ToLower(strings.TrimSpace(mood))
	if IsValidMood(mood) {
		return mood
	}
	return MoodNeutral
}
