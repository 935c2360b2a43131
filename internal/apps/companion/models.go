package companion

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single turn in the user's companion conversation.
type ChatMessage struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Role      string         `gorm:"size:20;not null" json:"role"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// --- Request/Response DTOs ---

type SendMessageRequest struct {
	Message string `json:"message"`
}

type SendMessageResponse struct {
	UserMessage ChatMessage `json:"user_message"`
	Reply       ChatMessage `json:"reply"`
}

type HistoryResponse struct {
	Messages []ChatMessage `json:"messages"`
	Total    int64         `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

type ClearHistoryResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}
