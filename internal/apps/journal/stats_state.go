package journal

import (
	"sort"
	"time"
)

const maxFavoriteThemes = 10

// StatsState is the in-memory form of a user's stats aggregate. All
// bookkeeping below is pure; persistence lives in StatsService.
type StatsState struct {
	TotalEntries   int
	CurrentStreak  int
	LongestStreak  int
	MoodCounts     map[string]int
	FavoriteThemes []string
	LastEntryDate  *time.Time
}

func NewStatsState() *StatsState {
	return &StatsState{MoodCounts: make(map[string]int)}
}

// ApplyEntryCreated folds a newly created entry into the aggregate:
// streak first (it needs the previous last-entry date), then the mood
// bucket, themes and total.
func (st *StatsState) ApplyEntryCreated(mood string, tags []string, createdAt time.Time) {
	st.advanceStreak(createdAt)
	st.addMood(mood)
	st.mergeThemes(tags)
	st.TotalEntries++
}

// ApplyEntryDeleted removes a deleted entry's mood from the histogram
// and decrements the total, both floored at zero. The streak and
// last-entry date are deliberately left untouched; see StatsService.
func (st *StatsState) ApplyEntryDeleted(mood string) {
	st.removeMood(mood)
	if st.TotalEntries > 0 {
		st.TotalEntries--
	}
}

// SwapMood moves one entry between mood buckets when an entry's mood
// is edited. Total and streak are unaffected.
func (st *StatsState) SwapMood(oldMood, newMood string) {
	if oldMood == newMood {
		return
	}
	st.removeMood(oldMood)
	st.addMood(newMood)
}

// advanceStreak applies the calendar-day streak rule. Comparison is on
// UTC calendar days, never raw timestamps, so two entries late at
// night and early next morning land on distinct days consistently.
func (st *StatsState) advanceStreak(entryAt time.Time) {
	today := dayOf(entryAt)

	switch {
	case st.LastEntryDate == nil:
		st.CurrentStreak++
	case dayOf(*st.LastEntryDate).Equal(today):
		// second entry the same day does not extend the streak
	case dayOf(*st.LastEntryDate).Equal(today.AddDate(0, 0, -1)):
		st.CurrentStreak++
	default:
		st.CurrentStreak = 1
	}

	if st.CurrentStreak > st.LongestStreak {
		st.LongestStreak = st.CurrentStreak
	}

	st.LastEntryDate = &entryAt
}

func (st *StatsState) addMood(mood string) {
	if st.MoodCounts == nil {
		st.MoodCounts = make(map[string]int)
	}
	st.MoodCounts[mood]++
}

// removeMood decrements a bucket and drops it at zero: the histogram
// never holds zero-valued keys.
func (st *StatsState) removeMood(mood string) {
	if st.MoodCounts[mood] <= 1 {
		delete(st.MoodCounts, mood)
		return
	}
	st.MoodCounts[mood]--
}

// mergeThemes merges the entry's tags into the favorite-themes list:
// insertion order, deduplicated, capped. Earliest-seen tags win over
// newer ones once the cap is reached.
func (st *StatsState) mergeThemes(tags []string) {
	seen := make(map[string]bool, len(st.FavoriteThemes))
	for _, t := range st.FavoriteThemes {
		seen[t] = true
	}
	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		st.FavoriteThemes = append(st.FavoriteThemes, t)
		seen[t] = true
	}
	if len(st.FavoriteThemes) > maxFavoriteThemes {
		st.FavoriteThemes = st.FavoriteThemes[:maxFavoriteThemes]
	}
}

// TopMoods returns the n most frequent mood labels.
func (st *StatsState) TopMoods(n int) []string {
	type moodCount struct {
		mood  string
		count int
	}
	counts := make([]moodCount, 0, len(st.MoodCounts))
	for mood, count := range st.MoodCounts {
		counts = append(counts, moodCount{mood, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})
	result := make([]string, 0, n)
	for i := 0; i < n && i < len(counts); i++ {
		result = append(result, counts[i].mood)
	}
	return result
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
