package discover

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Suggestion sources.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Recommendation is a stored content suggestion for a user.
type Recommendation struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string         `gorm:"size:200;not null" json:"title"`
	Kind      string         `gorm:"size:50;not null" json:"kind"`
	Reason    string         `gorm:"size:500" json:"reason"`
	Source    string         `gorm:"size:20;not null" json:"source"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// --- Request/Response DTOs ---

type RecommendationListResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
	RefreshedAt     *time.Time       `json:"refreshed_at"`
}
