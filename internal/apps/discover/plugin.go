package discover

import (
	"github.com/Arihant25/janya-backend/internal/ai"
	"github.com/Arihant25/janya-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DiscoverPlugin struct {
	stats    StatsReader
	aiClient *ai.Client
}

func New(stats StatsReader, aiClient *ai.Client) *DiscoverPlugin {
	return &DiscoverPlugin{stats: stats, aiClient: aiClient}
}

func (p *DiscoverPlugin) ID() string { return "discover" }

func (p *DiscoverPlugin) Models() []interface{} {
	return []interface{}{
		&Recommendation{},
	}
}

func (p *DiscoverPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewDiscoverService(db, p.stats, p.aiClient)
	handler := NewDiscoverHandler(svc)

	router.Get("/discover", handler.List)
	router.Post("/discover/refresh", handler.Refresh)
}
