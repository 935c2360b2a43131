package companion

import (
	"errors"
	"strings"

	"github.com/Arihant25/janya-backend/internal/ai"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMessageRequired = errors.New("message is required")

// Number of recent turns sent to the model as conversation context.
const historyWindow = 12

// CompanionService handles the rolling chat conversation with the AI companion.
type CompanionService struct {
	db       *gorm.DB
	aiClient *ai.Client
}

func NewCompanionService(db *gorm.DB, aiClient *ai.Client) *CompanionService {
	return &CompanionService{db: db, aiClient: aiClient}
}

// SendMessage stores the user's message, asks the companion for a reply
// using the most recent turns as context, and stores the reply.
func (s *CompanionService) SendMessage(userID uuid.UUID, text string) (*SendMessageResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrMessageRequired
	}

	userMsg := ChatMessage{
		UserID:  userID,
		Role:    RoleUser,
		Content: text,
	}
	if err := s.db.Create(&userMsg).Error; err != nil {
		return nil, err
	}

	history, err := s.recentTurns(userID)
	if err != nil {
		return nil, err
	}

	replyText, err := s.aiClient.CompanionReply(history)
	if err != nil {
		return nil, err
	}

	reply := ChatMessage{
		UserID:  userID,
		Role:    RoleAssistant,
		Content: replyText,
	}
	if err := s.db.Create(&reply).Error; err != nil {
		return nil, err
	}

	return &SendMessageResponse{UserMessage: userMsg, Reply: reply}, nil
}

// GetHistory returns the conversation newest first, paginated.
func (s *CompanionService) GetHistory(userID uuid.UUID, limit, offset int) (*HistoryResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := s.db.Model(&ChatMessage{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, err
	}

	var messages []ChatMessage
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	return &HistoryResponse{
		Messages: messages,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// ClearHistory soft-deletes the user's entire conversation.
func (s *CompanionService) ClearHistory(userID uuid.UUID) (int64, error) {
	result := s.db.Where("user_id = ?", userID).Delete(&ChatMessage{})
	return result.RowsAffected, result.Error
}

// recentTurns loads the last historyWindow messages, oldest first.
func (s *CompanionService) recentTurns(userID uuid.UUID) ([]ai.ChatTurn, error) {
	var messages []ChatMessage
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(historyWindow).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	turns := make([]ai.ChatTurn, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		turns = append(turns, ai.ChatTurn{
			Role:    messages[i].Role,
			Content: messages[i].Content,
		})
	}
	return turns, nil
}
