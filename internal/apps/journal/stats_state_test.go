package journal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func TestStreak_FirstEntryStartsAtOne(t *testing.T) {
	st := NewStatsState()
	st.ApplyEntryCreated("happy", nil, day(2024, time.January, 10))

	assert.Equal(t, 1, st.CurrentStreak)
	assert.Equal(t, 1, st.LongestStreak)
	assert.Equal(t, 1, st.TotalEntries)
	require.NotNil(t, st.LastEntryDate)
}

func TestStreak_ConsecutiveDayExtends(t *testing.T) {
	st := NewStatsState()

	// Six consecutive days, then one more.
	for i := 0; i < 6; i++ {
		st.ApplyEntryCreated("calm", nil, day(2024, time.January, 5+i))
	}
	require.Equal(t, 6, st.CurrentStreak)

	st.ApplyEntryCreated("calm", nil, day(2024, time.January, 11))
	assert.Equal(t, 7, st.CurrentStreak)
	assert.Equal(t, 7, st.LongestStreak)
}

func TestStreak_SecondEntrySameDayDoesNotExtend(t *testing.T) {
	st := NewStatsState()
	st.ApplyEntryCreated("happy", nil, day(2024, time.March, 3))
	st.ApplyEntryCreated("sad", nil, day(2024, time.March, 3).Add(5*time.Hour))

	assert.Equal(t, 1, st.CurrentStreak)
	assert.Equal(t, 2, st.TotalEntries)
}

func TestStreak_GapResetsToOne(t *testing.T) {
	st := NewStatsState()
	st.ApplyEntryCreated("happy", nil, day(2024, time.January, 1))
	st.ApplyEntryCreated("happy", nil, day(2024, time.January, 2))
	require.Equal(t, 2, st.CurrentStreak)

	st.ApplyEntryCreated("happy", nil, day(2024, time.January, 5))
	assert.Equal(t, 1, st.CurrentStreak)
	assert.Equal(t, 2, st.LongestStreak, "longest streak survives the reset")
}

func TestStreak_CalendarDayNotTwentyFourHours(t *testing.T) {
	st := NewStatsState()

	// 23:50 and 00:10 the next day are distinct calendar days even
	// though only 20 minutes apart.
	st.ApplyEntryCreated("thoughtful", nil, time.Date(2024, time.June, 1, 23, 50, 0, 0, time.UTC))
	st.ApplyEntryCreated("thoughtful", nil, time.Date(2024, time.June, 2, 0, 10, 0, 0, time.UTC))

	assert.Equal(t, 2, st.CurrentStreak)
}

func TestStreak_LongestNeverBelowCurrent(t *testing.T) {
	st := NewStatsState()
	for i := 0; i < 10; i++ {
		st.ApplyEntryCreated("happy", nil, day(2024, time.February, 1+i))
		assert.GreaterOrEqual(t, st.LongestStreak, st.CurrentStreak)
	}
}

func TestMoodCounts_NoZeroValuedKeys(t *testing.T) {
	st := NewStatsState()
	st.ApplyEntryCreated("happy", nil, day(2024, time.April, 1))
	st.ApplyEntryCreated("sad", nil, day(2024, time.April, 2))
	st.ApplyEntryCreated("sad", nil, day(2024, time.April, 3))

	st.ApplyEntryDeleted("sad")
	assert.Equal(t, 1, st.MoodCounts["sad"])

	st.ApplyEntryDeleted("sad")
	_, present := st.MoodCounts["sad"]
	assert.False(t, present, "bucket must be dropped at zero, not stored as 0")
	assert.Equal(t, 1, st.MoodCounts["happy"])
}

func TestMoodCounts_DeleteFloorsAtZero(t *testing.T) {
	st := NewStatsState()

	// Deleting with an empty aggregate must not underflow.
	st.ApplyEntryDeleted("happy")
	assert.Equal(t, 0, st.TotalEntries)
	assert.Empty(t, st.MoodCounts)
}

func TestMoodCounts_DeletePreservesStreak(t *testing.T) {
	st := NewStatsState()
	st.ApplyEntryCreated("happy", nil, day(2024, time.May, 1))
	st.ApplyEntryCreated("happy", nil, day(2024, time.May, 2))
	require.Equal(t, 2, st.CurrentStreak)

	st.ApplyEntryDeleted("happy")

	assert.Equal(t, 2, st.CurrentStreak)
	assert.Equal(t, 2, st.LongestStreak)
	require.NotNil(t, st.LastEntryDate)
	assert.Equal(t, 1, st.TotalEntries)
}

func TestSwapMood_MovesOneBetweenBuckets(t *testing.T) {
	st := NewStatsState()
	st.ApplyEntryCreated("happy", nil, day(2024, time.May, 1))
	st.ApplyEntryCreated("happy", nil, day(2024, time.May, 2))

	st.SwapMood("happy", "calm")

	assert.Equal(t, 1, st.MoodCounts["happy"])
	assert.Equal(t, 1, st.MoodCounts["calm"])
	assert.Equal(t, 2, st.TotalEntries)
	assert.Equal(t, 2, st.CurrentStreak)
}

func TestSwapMood_SameMoodIsNoop(t *testing.T) {
	st := NewStatsState()
	st.ApplyEntryCreated("happy", nil, day(2024, time.May, 1))

	st.SwapMood("happy", "happy")

	assert.Equal(t, 1, st.MoodCounts["happy"])
}

func TestThemes_InsertionOrderAndDedup(t *testing.T) {
	st := NewStatsState()
	st.ApplyEntryCreated("happy", []string{"work", "family"}, day(2024, time.July, 1))
	st.ApplyEntryCreated("calm", []string{"family", "travel"}, day(2024, time.July, 2))

	assert.Equal(t, []string{"work", "family", "travel"}, st.FavoriteThemes)
}

func TestThemes_CappedAtTenFirstSeenWins(t *testing.T) {
	st := NewStatsState()

	var first []string
	for i := 0; i < 10; i++ {
		first = append(first, fmt.Sprintf("theme%02d", i))
	}
	st.ApplyEntryCreated("happy", first, day(2024, time.July, 1))
	st.ApplyEntryCreated("happy", []string{"latecomer"}, day(2024, time.July, 2))

	assert.Len(t, st.FavoriteThemes, 10)
	assert.NotContains(t, st.FavoriteThemes, "latecomer")
	assert.Equal(t, first, st.FavoriteThemes)
}

func TestThemes_EmptyTagsIgnored(t *testing.T) {
	st := NewStatsState()
	st.ApplyEntryCreated("happy", []string{"", "work", ""}, day(2024, time.July, 1))

	assert.Equal(t, []string{"work"}, st.FavoriteThemes)
}

func TestTopMoods_OrderedByFrequency(t *testing.T) {
	st := NewStatsState()
	for i := 0; i < 3; i++ {
		st.ApplyEntryCreated("calm", nil, day(2024, time.August, 1+i))
	}
	st.ApplyEntryCreated("happy", nil, day(2024, time.August, 4))

	top := st.TopMoods(2)
	require.Len(t, top, 2)
	assert.Equal(t, "calm", top[0])
	assert.Equal(t, "happy", top[1])
}

func TestTopMoods_NLargerThanBuckets(t *testing.T) {
	st := NewStatsState()
	st.ApplyEntryCreated("happy", nil, day(2024, time.August, 1))

	assert.Equal(t, []string{"happy"}, st.TopMoods(5))
}
