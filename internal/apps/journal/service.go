package journal

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/Arihant25/janya-backend/internal/ai"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrContentRequired = errors.New("entry content is required")
	ErrInvalidMood     = errors.New("invalid mood label")
	ErrEntryNotFound   = errors.New("journal entry not found")
	ErrNotOwner        = errors.New("you do not own this journal entry")
)

type JournalService struct {
	db    *gorm.DB
	stats *StatsService
	ai    *ai.Client
}

func NewJournalService(db *gorm.DB, stats *StatsService, aiClient *ai.Client) *JournalService {
	return &JournalService{db: db, stats: stats, ai: aiClient}
}

// CreateEntry persists a new entry and folds it into the user's stats
// aggregate. When no mood is supplied the AI provider classifies the
// text; unrecognized labels collapse to neutral before they reach the
// aggregate.
func (s *JournalService) CreateEntry(userID uuid.UUID, req CreateEntryRequest) (*CreateEntryResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrContentRequired
	}

	mood := req.Mood
	moodScore := 0
	insight := ""
	tags := req.Tags

	if mood == "" && s.ai != nil {
		if analysis, err := s.ai.AnalyzeEntry(content); err == nil {
			mood = analysis.Mood
			moodScore = analysis.Score
			insight = analysis.Insight
			tags = append(tags, analysis.Keywords...)
		}
	}
	mood = NormalizeMood(mood)
	if moodScore == 0 {
		moodScore = ai.BaseScore(mood)
	}

	tagJSON, _ := json.Marshal(dedupeTags(tags))

	entry := JournalEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     strings.TrimSpace(req.Title),
		Content:   content,
		Mood:      mood,
		MoodScore: moodScore,
		Tags:      datatypes.JSON(tagJSON),
		PhotoURL:  req.PhotoURL,
		AIInsight: insight,
		EntryDate: time.Now().UTC(),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	stats, newly, err := s.stats.ApplyEntryCreated(userID, mood, entry.TagList(), entry.EntryDate)
	if err != nil {
		return nil, err
	}
	if newly == nil {
		newly = []AchievementDef{}
	}

	return &CreateEntryResponse{
		Entry:           entry,
		Stats:           *stats,
		NewAchievements: newly,
	}, nil
}

func (s *JournalService) GetEntries(userID uuid.UUID, limit, offset int) ([]JournalEntry, int64, error) {
	var entries []JournalEntry
	var total int64

	s.db.Model(&JournalEntry{}).Where("user_id = ?", userID).Count(&total)

	err := s.db.Where("user_id = ?", userID).
		Order("entry_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error

	return entries, total, err
}

func (s *JournalService) SearchEntries(userID uuid.UUID, query string, limit, offset int) (*SearchEntriesResponse, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, errors.New("search query must be at least 2 characters")
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var entries []JournalEntry
	var total int64

	searchPattern := "%" + query + "%"

	countQuery := s.db.Model(&JournalEntry{}).
		Where("user_id = ? AND (content ILIKE ? OR title ILIKE ? OR mood = ?)",
			userID, searchPattern, searchPattern, strings.ToLower(query))
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, errors.New("failed to count search results")
	}

	fetchQuery := s.db.
		Where("user_id = ? AND (content ILIKE ? OR title ILIKE ? OR mood = ?)",
			userID, searchPattern, searchPattern, strings.ToLower(query)).
		Order("entry_date DESC").
		Limit(limit).
		Offset(offset)

	if err := fetchQuery.Find(&entries).Error; err != nil {
		return nil, errors.New("failed to fetch search results")
	}

	return &SearchEntriesResponse{
		Entries: entries,
		Total:   total,
		Query:   query,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

func (s *JournalService) GetEntry(userID, entryID uuid.UUID) (*JournalEntry, error) {
	var entry JournalEntry
	if err := s.db.First(&entry, "id = ?", entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	if entry.UserID != userID {
		return nil, ErrNotOwner
	}

	return &entry, nil
}

// UpdateEntry edits an entry in place. A mood change rebalances the
// histogram buckets but never touches total or streak.
func (s *JournalService) UpdateEntry(userID, entryID uuid.UUID, req UpdateEntryRequest) (*JournalEntry, error) {
	entry, err := s.GetEntry(userID, entryID)
	if err != nil {
		return nil, err
	}

	oldMood := entry.Mood

	if req.Title != nil {
		entry.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, ErrContentRequired
		}
		entry.Content = content
	}
	if req.Mood != nil {
		if !IsValidMood(strings.ToLower(*req.Mood)) {
			return nil, ErrInvalidMood
		}
		entry.Mood = strings.ToLower(*req.Mood)
		entry.MoodScore = ai.BaseScore(entry.Mood)
	}
	if req.Tags != nil {
		tagJSON, _ := json.Marshal(dedupeTags(*req.Tags))
		entry.Tags = datatypes.JSON(tagJSON)
	}
	if req.PhotoURL != nil {
		entry.PhotoURL = *req.PhotoURL
	}

	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}

	if entry.Mood != oldMood {
		if _, err := s.stats.SwapMood(userID, oldMood, entry.Mood); err != nil && !errors.Is(err, ErrStatsNotFound) {
			return nil, err
		}
	}

	return entry, nil
}

// DeleteEntry removes an entry and decrements its mood bucket and the
// total count. The streak is not recomputed on delete.
func (s *JournalService) DeleteEntry(userID, entryID uuid.UUID) (*UserStats, error) {
	entry, err := s.GetEntry(userID, entryID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(entry).Error; err != nil {
		return nil, err
	}

	return s.stats.ApplyEntryDeleted(userID, entry.Mood)
}

// GetStats returns the aggregate together with the full achievement
// catalog annotated with unlock status.
func (s *JournalService) GetStats(userID uuid.UUID) (*StatsResponse, error) {
	stats, err := s.stats.GetStats(userID)
	if err != nil {
		return nil, err
	}

	records, err := s.stats.UnlockedRecords(userID)
	if err != nil {
		return nil, err
	}

	achievements := make([]AchievementStatus, 0, len(AchievementCatalog))
	for _, def := range AchievementCatalog {
		status := AchievementStatus{AchievementDef: def}
		if rec, ok := records[def.ID]; ok {
			status.Unlocked = true
			unlockedAt := rec.UnlockedAt
			status.UnlockedAt = &unlockedAt
		}
		achievements = append(achievements, status)
	}

	return &StatsResponse{Stats: *stats, Achievements: achievements}, nil
}

// GetWeeklyInsights summarizes the last 7 days of entries.
func (s *JournalService) GetWeeklyInsights(userID uuid.UUID) (*WeeklyInsights, error) {
	sevenDaysAgo := time.Now().UTC().AddDate(0, 0, -7)

	var entries []JournalEntry
	err := s.db.Where("user_id = ? AND entry_date >= ?", userID, sevenDaysAgo).
		Order("entry_date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	insights := &WeeklyInsights{
		MoodTrend:        "stable",
		DailyMoods:       []DailyMood{},
		MoodDistribution: map[string]int{},
		TimePattern:      map[string]int{"morning": 0, "afternoon": 0, "evening": 0, "night": 0},
	}

	stats, statsErr := s.stats.GetStats(userID)
	if statsErr == nil {
		insights.StreakData = StreakData{
			Current: stats.CurrentStreak,
			Longest: stats.LongestStreak,
			Total:   stats.TotalEntries,
		}
	}

	if len(entries) == 0 {
		return insights, nil
	}

	totalScore := 0
	for _, e := range entries {
		totalScore += e.MoodScore
		insights.MoodDistribution[e.Mood]++
		insights.DailyMoods = append(insights.DailyMoods, DailyMood{
			Date:  e.EntryDate.Format("2006-01-02"),
			Mood:  e.Mood,
			Score: e.MoodScore,
		})

		hour := e.EntryDate.Hour()
		switch {
		case hour >= 5 && hour < 12:
			insights.TimePattern["morning"]++
		case hour >= 12 && hour < 17:
			insights.TimePattern["afternoon"]++
		case hour >= 17 && hour < 21:
			insights.TimePattern["evening"]++
		default:
			insights.TimePattern["night"]++
		}
	}

	insights.AverageMoodScore = totalScore / len(entries)
	insights.TotalEntries = len(entries)

	maxCount := 0
	for mood, count := range insights.MoodDistribution {
		if count > maxCount {
			maxCount = count
			insights.TopMood = mood
		}
	}

	if len(entries) >= 2 {
		mid := len(entries) / 2
		firstHalfTotal := 0
		for i := 0; i < mid; i++ {
			firstHalfTotal += entries[i].MoodScore
		}
		secondHalfTotal := 0
		for i := mid; i < len(entries); i++ {
			secondHalfTotal += entries[i].MoodScore
		}
		firstHalfAvg := firstHalfTotal / mid
		secondHalfAvg := secondHalfTotal / (len(entries) - mid)
		diff := secondHalfAvg - firstHalfAvg
		if diff > 5 {
			insights.MoodTrend = "improving"
		} else if diff < -5 {
			insights.MoodTrend = "declining"
		}
	}

	return insights, nil
}

func dedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(strings.ToLower(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
