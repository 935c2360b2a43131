package discover

import (
	"github.com/Arihant25/janya-backend/internal/ai"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatsReader supplies the mood/theme summary recommendations are built from.
// Implemented by the journal app's stats service.
type StatsReader interface {
	MoodSummary(userID uuid.UUID) ([]string, []string, error)
}

// DiscoverService generates and stores content recommendations.
type DiscoverService struct {
	db       *gorm.DB
	stats    StatsReader
	aiClient *ai.Client
}

func NewDiscoverService(db *gorm.DB, stats StatsReader, aiClient *ai.Client) *DiscoverService {
	return &DiscoverService{db: db, stats: stats, aiClient: aiClient}
}

// Refresh replaces the user's recommendation set with freshly generated
// suggestions based on their current mood summary.
func (s *DiscoverService) Refresh(userID uuid.UUID) ([]Recommendation, error) {
	topMoods, themes, err := s.stats.MoodSummary(userID)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.aiClient.Recommend(topMoods, themes)
	if err != nil {
		return nil, err
	}

	source := SourceAI
	if !s.aiClient.HasKey() {
		source = SourceFallback
	}

	recs := make([]Recommendation, 0, len(suggestions))
	for _, sug := range suggestions {
		recs = append(recs, Recommendation{
			UserID: userID,
			Title:  sug.Title,
			Kind:   sug.Kind,
			Reason: sug.Reason,
			Source: source,
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&Recommendation{}).Error; err != nil {
			return err
		}
		if len(recs) == 0 {
			return nil
		}
		return tx.Create(&recs).Error
	})
	if err != nil {
		return nil, err
	}

	return recs, nil
}

// List returns the user's current recommendation set.
func (s *DiscoverService) List(userID uuid.UUID) (*RecommendationListResponse, error) {
	var recs []Recommendation
	err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	resp := &RecommendationListResponse{Recommendations: recs}
	if len(recs) > 0 {
		resp.RefreshedAt = &recs[0].CreatedAt
	}
	return resp, nil
}
