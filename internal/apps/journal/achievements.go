package journal

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AchievementDef is one row of the achievement catalog. New
// achievements are added by appending rows, not branches.
type AchievementDef struct {
	ID          string                    `json:"id"`
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Icon        string                    `json:"icon"`
	Rarity      Rarity                    `json:"rarity"`
	Qualifies   func(st *StatsState) bool `json:"-"`
}

var AchievementCatalog = []AchievementDef{
	{
		ID:          "first_entry",
		Title:       "First Entry",
		Description: "Write your very first journal entry",
		Icon:        "✍️",
		Rarity:      RarityCommon,
		Qualifies:   func(st *StatsState) bool { return st.TotalEntries == 1 },
	},
	{
		ID:          "week_warrior",
		Title:       "Week Warrior",
		Description: "Journal 7 days in a row",
		Icon:        "🔥",
		Rarity:      RarityRare,
		Qualifies:   func(st *StatsState) bool { return st.CurrentStreak >= 7 },
	},
	{
		ID:          "month_master",
		Title:       "Month Master",
		Description: "Journal 30 days in a row",
		Icon:        "🏆",
		Rarity:      RarityEpic,
		Qualifies:   func(st *StatsState) bool { return st.CurrentStreak >= 30 },
	},
	{
		ID:          "storyteller",
		Title:       "Storyteller",
		Description: "Write 10 journal entries",
		Icon:        "📖",
		Rarity:      RarityCommon,
		Qualifies:   func(st *StatsState) bool { return st.TotalEntries >= 10 },
	},
	{
		ID:          "dedicated_fifty",
		Title:       "Dedicated",
		Description: "Write 50 journal entries",
		Icon:        "🌟",
		Rarity:      RarityRare,
		Qualifies:   func(st *StatsState) bool { return st.TotalEntries >= 50 },
	},
	{
		ID:          "centurion",
		Title:       "Centurion",
		Description: "Write 100 journal entries",
		Icon:        "💯",
		Rarity:      RarityLegendary,
		Qualifies:   func(st *StatsState) bool { return st.TotalEntries >= 100 },
	},
	{
		ID:          "mood_explorer",
		Title:       "Mood Explorer",
		Description: "Record an entry with every mood",
		Icon:        "🎭",
		Rarity:      RarityEpic,
		Qualifies:   func(st *StatsState) bool { return len(st.MoodCounts) >= len(Moods) },
	},
}

// NewlyUnlocked returns the catalog rows whose predicates hold for the
// aggregate and which are not already in the unlocked set. Unlocking is
// idempotent: already-unlocked ids are never re-evaluated.
func NewlyUnlocked(st *StatsState, unlocked map[string]bool) []AchievementDef {
	var newly []AchievementDef
	for _, def := range AchievementCatalog {
		if unlocked[def.ID] {
			continue
		}
		if def.Qualifies(st) {
			newly = append(newly, def)
		}
	}
	return newly
}
