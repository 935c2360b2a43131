package journal

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrStatsNotFound = errors.New("stats aggregate not found")

// StatsService owns the per-user stats aggregate. Every mutation runs
// inside a transaction holding a row lock on the aggregate, so
// concurrent entry writes for one user serialize at the database
// instead of clobbering each other's read-modify-write.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// InitStats creates the zeroed aggregate for a fresh user. Called from
// registration; safe to call on the caller's transaction.
func (s *StatsService) InitStats(tx *gorm.DB, userID uuid.UUID) error {
	stats := UserStats{ID: uuid.New(), UserID: userID}
	stats.SetState(NewStatsState())
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&stats).Error
}

// ApplyEntryCreated folds a new entry into the aggregate and returns
// the updated row plus any achievements that just unlocked.
func (s *StatsService) ApplyEntryCreated(userID uuid.UUID, mood string, tags []string, createdAt time.Time) (*UserStats, []AchievementDef, error) {
	var stats UserStats
	var newly []AchievementDef

	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&stats).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			stats = UserStats{ID: uuid.New(), UserID: userID}
			stats.SetState(NewStatsState())
			if err := tx.Create(&stats).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		st := stats.State()
		st.ApplyEntryCreated(mood, tags, createdAt)
		stats.SetState(st)
		if err := tx.Save(&stats).Error; err != nil {
			return err
		}

		unlocked, err := s.unlockedSet(tx, userID)
		if err != nil {
			return err
		}
		newly = NewlyUnlocked(st, unlocked)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	// Achievement rows are best-effort secondary writes: the stats
	// update above stays committed even if this insert fails.
	if len(newly) > 0 {
		now := time.Now().UTC()
		records := make([]AchievementRecord, 0, len(newly))
		for _, def := range newly {
			records = append(records, AchievementRecord{
				ID:            uuid.New(),
				UserID:        userID,
				AchievementID: def.ID,
				UnlockedAt:    now,
			})
		}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&records).Error; err != nil {
			slog.Error("failed to persist achievement unlocks",
				"user_id", userID.String(), "count", len(records), "error", err)
		}
	}

	return &stats, newly, nil
}

// ApplyEntryDeleted decrements the mood bucket and total for a removed
// entry. The streak and last-entry date are not recomputed: the
// aggregate only tracks forward progress, and rebuilding the streak
// would need a scan over all remaining entries.
func (s *StatsService) ApplyEntryDeleted(userID uuid.UUID, mood string) (*UserStats, error) {
	var stats UserStats

	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&stats).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStatsNotFound
		}
		if err != nil {
			return err
		}

		st := stats.State()
		st.ApplyEntryDeleted(mood)
		stats.SetState(st)
		return tx.Save(&stats).Error
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// SwapMood rebalances the histogram when an entry's mood is edited.
func (s *StatsService) SwapMood(userID uuid.UUID, oldMood, newMood string) (*UserStats, error) {
	if oldMood == newMood {
		return s.GetStats(userID)
	}

	var stats UserStats
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&stats).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStatsNotFound
		}
		if err != nil {
			return err
		}

		st := stats.State()
		st.SwapMood(oldMood, newMood)
		stats.SetState(st)
		return tx.Save(&stats).Error
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetStats returns the aggregate, creating the zero state when the row
// is missing so long-lived accounts predating the aggregate still work.
func (s *StatsService) GetStats(userID uuid.UUID) (*UserStats, error) {
	var stats UserStats
	err := s.db.Where("user_id = ?", userID).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stats = UserStats{ID: uuid.New(), UserID: userID}
		stats.SetState(NewStatsState())
		if createErr := s.db.Create(&stats).Error; createErr != nil {
			return nil, createErr
		}
		return &stats, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// UnlockedRecords returns the user's achievement records keyed by id.
func (s *StatsService) UnlockedRecords(userID uuid.UUID) (map[string]AchievementRecord, error) {
	var records []AchievementRecord
	if err := s.db.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]AchievementRecord, len(records))
	for _, r := range records {
		byID[r.AchievementID] = r
	}
	return byID, nil
}

// MoodSummary exposes the top moods and favorite themes for other
// modules (recommendations read this through the StatsReader interface).
func (s *StatsService) MoodSummary(userID uuid.UUID) ([]string, []string, error) {
	stats, err := s.GetStats(userID)
	if err != nil {
		return nil, nil, err
	}
	st := stats.State()
	return st.TopMoods(3), st.FavoriteThemes, nil
}

func (s *StatsService) unlockedSet(tx *gorm.DB, userID uuid.UUID) (map[string]bool, error) {
	var ids []string
	if err := tx.Model(&AchievementRecord{}).Where("user_id = ?", userID).
		Pluck("achievement_id", &ids).Error; err != nil {
		return nil, err
	}
	unlocked := make(map[string]bool, len(ids))
	for _, id := range ids {
		unlocked[id] = true
	}
	return unlocked, nil
}
