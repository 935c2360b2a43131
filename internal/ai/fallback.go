package ai

import "strings"

// Keyword heuristics used when no AI provider is configured or the
// provider call fails. Mood labels match the journal's fixed set.

var moodKeywordMap = map[string][]string{
	"happy":      {"happy", "glad", "great", "wonderful", "joy", "joyful", "smile", "laughed", "grateful", "blessed", "lucky", "amazing", "fantastic", "love", "loved"},
	"sad":        {"sad", "down", "blue", "lonely", "cry", "crying", "tears", "miss", "heartbroken", "grief", "loss", "empty", "hopeless"},
	"excited":    {"excited", "thrilled", "hyped", "pumped", "can't wait", "cant wait", "looking forward", "stoked", "buzzing"},
	"calm":       {"calm", "peaceful", "relaxed", "quiet", "still", "serene", "rested", "slow", "cozy", "content"},
	"anxious":    {"anxious", "worried", "nervous", "stressed", "overwhelmed", "panic", "tense", "uneasy", "scared", "overthinking", "dread"},
	"angry":      {"angry", "furious", "mad", "annoyed", "frustrated", "irritated", "rage", "unfair", "hate"},
	"thoughtful": {"thinking", "wonder", "wondering", "reflect", "reflecting", "question", "pondering", "realized", "perspective", "meaning"},
	"inspired":   {"inspired", "motivated", "creative", "idea", "ideas", "project", "dream", "goal", "ambitious", "energized", "determined"},
}

var moodBaseScore = map[string]int{
	"happy":      85,
	"excited":    90,
	"inspired":   88,
	"calm":       75,
	"thoughtful": 60,
	"neutral":    50,
	"anxious":    35,
	"sad":        25,
	"angry":      20,
}

var fallbackInsights = map[string]string{
	"happy":      "It sounds like today brought you real joy — hold on to what made it shine.",
	"sad":        "Heavy days are part of the journey; writing them down is already a step through them.",
	"excited":    "That anticipation jumps off the page — enjoy the build-up as much as the moment.",
	"calm":       "There's a steady, grounded tone in this entry. Protect whatever gave you that peace.",
	"anxious":    "Naming worries on paper loosens their grip; be gentle with yourself today.",
	"angry":      "Strong feelings deserve space. Getting them out here is healthier than holding them in.",
	"thoughtful": "You're turning something over carefully — that kind of reflection tends to pay off.",
	"inspired":   "There's real momentum in these words. Capture the next small step while it's fresh.",
	"neutral":    "An ordinary day recorded is still a day remembered. Keep showing up.",
}

var fallbackReplies = []string{
	"Thank you for sharing that with me. What part of it is sitting with you the most right now?",
	"That sounds like a lot to carry. How are you feeling about it at this moment?",
	"I hear you. If you could change one small thing about today, what would it be?",
	"It means something that you put this into words. What would feel like a good next step?",
	"I'm glad you told me. What usually helps you when things feel like this?",
}

var fallbackSuggestionMap = map[string][]Suggestion{
	"happy": {
		{Title: "Gratitude list", Kind: "activity", Reason: "Writing down three good things extends a happy streak."},
		{Title: "Share the moment", Kind: "activity", Reason: "Telling someone about a good day doubles it."},
		{Title: "Upbeat playlist", Kind: "music", Reason: "Match the energy your entries have been carrying."},
	},
	"sad": {
		{Title: "Short walk outside", Kind: "activity", Reason: "Gentle movement and daylight take the edge off low days."},
		{Title: "Comfort rewatch", Kind: "activity", Reason: "Familiar stories are a soft landing when you're hurting."},
		{Title: "Reasons to Stay Alive", Kind: "book", Reason: "Matt Haig writes honestly about moving through heaviness."},
	},
	"anxious": {
		{Title: "4-7-8 breathing", Kind: "exercise", Reason: "A two-minute breath pattern that settles a racing mind."},
		{Title: "Brain dump page", Kind: "activity", Reason: "Unload every open loop onto paper so your head doesn't hold them."},
		{Title: "Lo-fi focus mix", Kind: "music", Reason: "Low-stimulation sound helps when everything feels like too much."},
	},
	"angry": {
		{Title: "Hard workout", Kind: "exercise", Reason: "Anger is energy — spend it somewhere it can't do damage."},
		{Title: "Unsent letter", Kind: "activity", Reason: "Say everything in writing first; decide later what needs saying aloud."},
	},
	"calm": {
		{Title: "Body-scan meditation", Kind: "exercise", Reason: "Deepen the settled tone showing up in your entries."},
		{Title: "The Things You Can See Only When You Slow Down", Kind: "book", Reason: "A quiet read that matches a quiet stretch."},
	},
	"inspired": {
		{Title: "Idea capture session", Kind: "activity", Reason: "Your entries are full of momentum — bank the ideas before they fade."},
		{Title: "The War of Art", Kind: "book", Reason: "Fuel for turning inspiration into finished work."},
	},
	"thoughtful": {
		{Title: "Long-form essay", Kind: "article", Reason: "Your reflective streak pairs well with something meaty to chew on."},
		{Title: "Evening journaling prompt", Kind: "activity", Reason: "A pointed question can focus the thinking you're already doing."},
	},
}

var defaultSuggestions = []Suggestion{
	{Title: "Daily check-in", Kind: "activity", Reason: "A short entry each day builds the streaks and insights over time."},
	{Title: "Five-minute stretch", Kind: "exercise", Reason: "A small reset that fits any mood."},
	{Title: "Instrumental playlist", Kind: "music", Reason: "A neutral backdrop for your next writing session."},
}

func fallbackAnalyze(content string) *MoodAnalysis {
	lower := strings.ToLower(content)

	bestMood := "neutral"
	bestHits := 0
	var keywords []string
	for mood, words := range moodKeywordMap {
		hits := 0
		for _, w := range words {
			if strings.Contains(lower, w) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			bestMood = mood
		}
	}
	for _, w := range moodKeywordMap[bestMood] {
		if strings.Contains(lower, w) && len(keywords) < 5 {
			keywords = append(keywords, w)
		}
	}

	return &MoodAnalysis{
		Mood:     bestMood,
		Score:    moodBaseScore[bestMood],
		Keywords: keywords,
		Insight:  fallbackInsights[bestMood],
	}
}

func fallbackReply(history []ChatTurn) string {
	// Rotate through canned replies so consecutive turns differ.
	return fallbackReplies[len(history)%len(fallbackReplies)]
}

func fallbackSuggestions(topMoods []string) []Suggestion {
	var out []Suggestion
	for _, mood := range topMoods {
		out = append(out, fallbackSuggestionMap[mood]...)
	}
	if len(out) == 0 {
		return defaultSuggestions
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// BaseScore exposes the heuristic score for a mood label so entry
// creation can score manually tagged entries consistently.
func BaseScore(mood string) int {
	if s, ok := moodBaseScore[mood]; ok {
		return s
	}
	return 50
}
