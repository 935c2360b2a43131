package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unlockedIDs(defs []AchievementDef) []string {
	ids := make([]string, 0, len(defs))
	for _, d := range defs {
		ids = append(ids, d.ID)
	}
	return ids
}

func TestAchievements_FirstEntryUnlocksExactlyOnce(t *testing.T) {
	st := NewStatsState()
	unlocked := map[string]bool{}

	st.ApplyEntryCreated("happy", nil, day(2024, time.January, 1))
	newly := NewlyUnlocked(st, unlocked)
	assert.Contains(t, unlockedIDs(newly), "first_entry")

	for _, d := range newly {
		unlocked[d.ID] = true
	}

	st.ApplyEntryCreated("happy", nil, day(2024, time.January, 2))
	newly = NewlyUnlocked(st, unlocked)
	assert.NotContains(t, unlockedIDs(newly), "first_entry")
}

func TestAchievements_WeekWarriorAtSevenDayStreak(t *testing.T) {
	st := NewStatsState()
	unlocked := map[string]bool{}

	for i := 0; i < 6; i++ {
		st.ApplyEntryCreated("calm", nil, day(2024, time.January, 10+i))
		for _, d := range NewlyUnlocked(st, unlocked) {
			unlocked[d.ID] = true
		}
	}
	require.Equal(t, 6, st.CurrentStreak)
	assert.False(t, unlocked["week_warrior"])

	st.ApplyEntryCreated("calm", nil, day(2024, time.January, 16))
	require.Equal(t, 7, st.CurrentStreak)

	newly := NewlyUnlocked(st, unlocked)
	assert.Contains(t, unlockedIDs(newly), "week_warrior")
}

func TestAchievements_MonthMasterAtThirtyDayStreak(t *testing.T) {
	st := NewStatsState()
	st.CurrentStreak = 30
	st.TotalEntries = 30

	newly := NewlyUnlocked(st, map[string]bool{"first_entry": true, "week_warrior": true, "storyteller": true})
	assert.Contains(t, unlockedIDs(newly), "month_master")
}

func TestAchievements_UnlockIsIdempotent(t *testing.T) {
	st := NewStatsState()
	st.TotalEntries = 1

	unlocked := map[string]bool{"first_entry": true}
	assert.Empty(t, NewlyUnlocked(st, unlocked))
}

func TestAchievements_MultipleUnlocksInOneEvaluation(t *testing.T) {
	st := NewStatsState()
	for i := 0; i < 7; i++ {
		st.ApplyEntryCreated("calm", nil, day(2024, time.March, 1+i))
	}

	// No prior unlocks: catching up yields every satisfied row at once.
	newly := unlockedIDs(NewlyUnlocked(st, map[string]bool{}))
	assert.Contains(t, newly, "week_warrior")
	assert.NotContains(t, newly, "first_entry", "total is 7, not 1")
	assert.NotContains(t, newly, "month_master")
}

func TestAchievements_MoodExplorerNeedsEveryMood(t *testing.T) {
	st := NewStatsState()
	for i, mood := range Moods {
		if mood == MoodNeutral {
			continue
		}
		st.ApplyEntryCreated(mood, nil, day(2024, time.April, 1+i))
	}

	newly := unlockedIDs(NewlyUnlocked(st, map[string]bool{}))
	assert.NotContains(t, newly, "mood_explorer")

	st.ApplyEntryCreated(MoodNeutral, nil, day(2024, time.April, 20))
	newly = unlockedIDs(NewlyUnlocked(st, map[string]bool{}))
	assert.Contains(t, newly, "mood_explorer")
}

func TestAchievements_CatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range AchievementCatalog {
		require.False(t, seen[d.ID], "duplicate achievement id %q", d.ID)
		require.NotNil(t, d.Qualifies)
		seen[d.ID] = true
	}
}
