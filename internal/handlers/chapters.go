package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/worldscribe/worldscribe/internal/assets"
	"github.com/worldscribe/worldscribe/internal/services"
	"github.com/worldscribe/worldscribe/internal/utils"
	"gorm.io/gorm"
)

// ChapterHandler handles chapter routes
type ChapterHandler struct {
	DB    *gorm.DB
	Store *assets.Store
}

// GetLongReadChapters handles GET /api/longreads/:id/chapters
func (h *ChapterHandler) GetLongReadChapters(c *fiber.Ctx) error {
	longreadID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "chapters.validation.id")
	}
	chapters, err := services.ListLongReadChapters(h.DB, longreadID)
	if err != nil {
		return serviceError(c, err, "chapters.list")
	}
	return c.Status(fiber.StatusOK).JSON(chapters)
}

// GetChapter handles GET /api/chapters/:id
func (h *ChapterHandler) GetChapter(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "chapters.validation.id")
	}
	ch, err := services.GetChapter(h.DB, id)
	if err != nil {
		return serviceError(c, err, "chapters.get")
	}
	return c.Status(fiber.StatusOK).JSON(ch)
}

// CreateChapter handles POST /api/longreads/:id/chapters
func (h *ChapterHandler) CreateChapter(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "chapters.context")
	}
	longreadID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "chapters.validation.id")
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "chapters.validation.input")
	}

	ch, err := services.CreateChapter(h.DB, userID, longreadID, body.Name)
	if err != nil {
		return serviceError(c, err, "chapters.create")
	}
	return utils.CreatedResponse(c, ch)
}

// UpdateChapter handles PUT /api/chapters/:id
func (h *ChapterHandler) UpdateChapter(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "chapters.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "chapters.validation.id")
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "chapters.validation.input")
	}

	ch, err := services.UpdateChapter(h.DB, userID, id, body.Name)
	if err != nil {
		return serviceError(c, err, "chapters.update")
	}
	return c.Status(fiber.StatusOK).JSON(ch)
}

// DeleteChapter handles DELETE /api/chapters/:id
func (h *ChapterHandler) DeleteChapter(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "chapters.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "chapters.validation.id")
	}

	if err := services.DeleteChapter(h.DB, h.Store, userID, id); err != nil {
		return serviceError(c, err, "chapters.delete")
	}
	return utils.MessageResponse(c, "Chapter deleted")
}
