package companion

import (
	"github.com/Arihant25/janya-backend/internal/ai"
	"github.com/Arihant25/janya-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CompanionPlugin struct {
	aiClient *ai.Client
}

func New(aiClient *ai.Client) *CompanionPlugin {
	return &CompanionPlugin{aiClient: aiClient}
}

func (p *CompanionPlugin) ID() string { return "companion" }

func (p *CompanionPlugin) Models() []interface{} {
	return []interface{}{
		&ChatMessage{},
	}
}

func (p *CompanionPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewCompanionService(db, p.aiClient)
	handler := NewCompanionHandler(svc)

	router.Post("/companion/chat", handler.SendMessage)
	router.Get("/companion/chat", handler.GetHistory)
	router.Delete("/companion/chat", handler.ClearHistory)
}
