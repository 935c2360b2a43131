package journal

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JournalEntry struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	Title     string         `gorm:"size:200" json:"title"`
	Content   string         `gorm:"type:text" json:"content"`
	Mood      string         `gorm:"size:20;index" json:"mood"`
	MoodScore int            `gorm:"default:50" json:"mood_score"`
	Tags      datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"tags"`
	PhotoURL  string         `gorm:"type:text" json:"photo_url"`
	AIInsight string         `gorm:"type:text" json:"ai_insight"`
	EntryDate time.Time      `gorm:"index" json:"entry_date"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TagList decodes the JSONB tags column.
func (e *JournalEntry) TagList() []string {
	var tags []string
	if len(e.Tags) > 0 {
		_ = json.Unmarshal(e.Tags, &tags)
	}
	return tags
}

// UserStats is the persisted per-user aggregate. One row per user,
// created zeroed at registration.
type UserStats struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	TotalEntries     int            `gorm:"default:0" json:"total_entries"`
	CurrentStreak    int            `gorm:"default:0" json:"current_streak"`
	LongestStreak    int            `gorm:"default:0" json:"longest_streak"`
	MoodDistribution datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"mood_distribution"`
	FavoriteThemes   datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"favorite_themes"`
	LastEntryDate    *time.Time     `json:"last_entry_date"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// State inflates the row into the pure aggregate form.
func (u *UserStats) State() *StatsState {
	st := &StatsState{
		TotalEntries:  u.TotalEntries,
		CurrentStreak: u.CurrentStreak,
		LongestStreak: u.LongestStreak,
		MoodCounts:    make(map[string]int),
		LastEntryDate: u.LastEntryDate,
	}
	if len(u.MoodDistribution) > 0 {
		_ = json.Unmarshal(u.MoodDistribution, &st.MoodCounts)
	}
	if len(u.FavoriteThemes) > 0 {
		_ = json.Unmarshal(u.FavoriteThemes, &st.FavoriteThemes)
	}
	return st
}

// SetState writes the aggregate back onto the row.
func (u *UserStats) SetState(st *StatsState) {
	u.TotalEntries = st.TotalEntries
	u.CurrentStreak = st.CurrentStreak
	u.LongestStreak = st.LongestStreak
	u.LastEntryDate = st.LastEntryDate

	moods, _ := json.Marshal(st.MoodCounts)
	u.MoodDistribution = datatypes.JSON(moods)

	themes := st.FavoriteThemes
	if themes == nil {
		themes = []string{}
	}
	b, _ := json.Marshal(themes)
	u.FavoriteThemes = datatypes.JSON(b)
}

// AchievementRecord marks one unlocked achievement. The unique index
// over (user_id, achievement_id) makes unlocking idempotent at the
// storage layer as well.
type AchievementRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_achievement_user" json:"user_id"`
	AchievementID string    `gorm:"size:50;uniqueIndex:idx_achievement_user" json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// --- DTOs ---

type CreateEntryRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Mood     string   `json:"mood"`
	Tags     []string `json:"tags"`
	PhotoURL string   `json:"photo_url"`
}

type UpdateEntryRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Mood     *string   `json:"mood"`
	Tags     *[]string `json:"tags"`
	PhotoURL *string   `json:"photo_url"`
}

type CreateEntryResponse struct {
	Entry           JournalEntry     `json:"entry"`
	Stats           UserStats        `json:"stats"`
	NewAchievements []AchievementDef `json:"new_achievements"`
}

type EntryListResponse struct {
	Entries []JournalEntry `json:"entries"`
	Total   int64          `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}

type SearchEntriesResponse struct {
	Entries []JournalEntry `json:"entries"`
	Total   int64          `json:"total"`
	Query   string         `json:"query"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}

type DeleteEntryResponse struct {
	Message string    `json:"message"`
	Stats   UserStats `json:"stats"`
}

type AchievementStatus struct {
	AchievementDef
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

type StatsResponse struct {
	Stats        UserStats           `json:"stats"`
	Achievements []AchievementStatus `json:"achievements"`
}

type DailyMood struct {
	Date  string `json:"date"`
	Mood  string `json:"mood"`
	Score int    `json:"score"`
}

type WeeklyInsights struct {
	AverageMoodScore int            `json:"average_mood_score"`
	MoodTrend        string         `json:"mood_trend"`
	TopMood          string         `json:"top_mood"`
	TotalEntries     int            `json:"total_entries"`
	DailyMoods       []DailyMood    `json:"daily_moods"`
	MoodDistribution map[string]int `json:"mood_distribution"`
	TimePattern      map[string]int `json:"time_pattern"`
	StreakData       StreakData     `json:"streak_data"`
}

type StreakData struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
	Total   int `json:"total"`
}
