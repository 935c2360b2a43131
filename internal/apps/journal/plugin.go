package journal

import (
	"github.com/Arihant25/janya-backend/internal/ai"
	"github.com/Arihant25/janya-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type JournalPlugin struct {
	aiClient *ai.Client
}

func New(aiClient *ai.Client) *JournalPlugin {
	return &JournalPlugin{aiClient: aiClient}
}

func (p *JournalPlugin) ID() string { return "journal" }

func (p *JournalPlugin) Models() []interface{} {
	return []interface{}{
		&JournalEntry{},
		&UserStats{},
		&AchievementRecord{},
	}
}

func (p *JournalPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	stats := NewStatsService(db)
	svc := NewJournalService(db, stats, p.aiClient)
	handler := NewJournalHandler(svc)

	// Journal CRUD routes
	router.Post("/journal", handler.Create)
	router.Get("/journal", handler.List)
	router.Get("/journal/search", handler.Search)
	router.Get("/journal/stats", handler.GetStats)
	router.Get("/journal/achievements", handler.GetAchievements)
	router.Get("/journal/insights", handler.GetWeeklyInsights)
	router.Get("/journal/:id", handler.Get)
	router.Put("/journal/:id", handler.Update)
	router.Delete("/journal/:id", handler.Delete)
}
