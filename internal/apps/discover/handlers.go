package discover

import (
	"github.com/Arihant25/janya-backend/internal/auth"
	"github.com/Arihant25/janya-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type DiscoverHandler struct {
	service *DiscoverService
}

func NewDiscoverHandler(service *DiscoverService) *DiscoverHandler {
	return &DiscoverHandler{service: service}
}

func (h *DiscoverHandler) Refresh(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	recs, err := h.service.Refresh(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to refresh recommendations",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"recommendations": recs,
	})
}

func (h *DiscoverHandler) List(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resp, err := h.service.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch recommendations",
		})
	}

	return c.JSON(resp)
}
