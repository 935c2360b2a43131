package companion

import (
	"errors"
	"strconv"

	"github.com/Arihant25/janya-backend/internal/auth"
	"github.com/Arihant25/janya-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type CompanionHandler struct {
	service *CompanionService
}

func NewCompanionHandler(service *CompanionService) *CompanionHandler {
	return &CompanionHandler{service: service}
}

func (h *CompanionHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.service.SendMessage(userID, req.Message)
	if err != nil {
		if errors.Is(err, ErrMessageRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to send message",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *CompanionHandler) GetHistory(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	resp, err := h.service.GetHistory(userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch chat history",
		})
	}

	return c.JSON(resp)
}

func (h *CompanionHandler) ClearHistory(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	deleted, err := h.service.ClearHistory(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to clear chat history",
		})
	}

	return c.JSON(ClearHistoryResponse{
		Message: "Chat history cleared",
		Deleted: deleted,
	})
}
