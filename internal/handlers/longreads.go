package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/worldscribe/worldscribe/internal/assets"
	"github.com/worldscribe/worldscribe/internal/services"
	"github.com/worldscribe/worldscribe/internal/utils"
	"gorm.io/gorm"
)

// LongReadHandler handles longread routes, including the map and timeline
// assets each longread carries alongside its cover image.
type LongReadHandler struct {
	DB    *gorm.DB
	Store *assets.Store
}

// GetLongReads handles GET /api/longreads
func (h *LongReadHandler) GetLongReads(c *fiber.Ctx) error {
	longreads, err := services.ListLongReads(h.DB)
	if err != nil {
		return serviceError(c, err, "longreads.list")
	}
	return c.Status(fiber.StatusOK).JSON(longreads)
}

// GetWorldLongReads handles GET /api/worlds/:id/longreads
func (h *LongReadHandler) GetWorldLongReads(c *fiber.Ctx) error {
	worldID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "longreads.validation.id")
	}
	longreads, err := services.ListWorldLongReads(h.DB, worldID)
	if err != nil {
		return serviceError(c, err, "longreads.list")
	}
	return c.Status(fiber.StatusOK).JSON(longreads)
}

// GetLongRead handles GET /api/longreads/:id
func (h *LongReadHandler) GetLongRead(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "longreads.validation.id")
	}
	lr, err := services.GetLongRead(h.DB, id)
	if err != nil {
		return serviceError(c, err, "longreads.get")
	}
	return c.Status(fiber.StatusOK).JSON(lr)
}

// GetLongReadMap handles GET /api/longreads/:id/map
func (h *LongReadHandler) GetLongReadMap(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "longreads.validation.id")
	}
	lr, err := services.GetLongRead(h.DB, id)
	if err != nil {
		return serviceError(c, err, "longreads.map")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"map_link": lr.MapLink})
}

// GetLongReadTimeline handles GET /api/longreads/:id/timeline
func (h *LongReadHandler) GetLongReadTimeline(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "longreads.validation.id")
	}
	lr, err := services.GetLongRead(h.DB, id)
	if err != nil {
		return serviceError(c, err, "longreads.timeline")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"timeline_link": lr.TimelineLink})
}

// CreateLongRead handles POST /api/worlds/:id/longreads
func (h *LongReadHandler) CreateLongRead(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "longreads.context")
	}
	worldID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "longreads.validation.id")
	}

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "longreads.validation.input")
	}

	lr, err := services.CreateLongRead(h.DB, h.Store, userID, worldID, body.Name, body.Description)
	if err != nil {
		return serviceError(c, err, "longreads.create")
	}
	return utils.CreatedResponse(c, lr)
}

// UpdateLongRead handles PUT /api/longreads/:id
func (h *LongReadHandler) UpdateLongRead(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "longreads.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "longreads.validation.id")
	}

	var body services.UpdateLongReadInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "longreads.validation.input")
	}

	lr, err := services.UpdateLongRead(h.DB, userID, id, body)
	if err != nil {
		return serviceError(c, err, "longreads.update")
	}
	return c.Status(fiber.StatusOK).JSON(lr)
}

// DeleteLongRead handles DELETE /api/longreads/:id
func (h *LongReadHandler) DeleteLongRead(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "longreads.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "longreads.validation.id")
	}

	if err := services.DeleteLongRead(h.DB, h.Store, userID, id); err != nil {
		return serviceError(c, err, "longreads.delete")
	}
	return utils.MessageResponse(c, "Longread deleted")
}

// EditLongReadImage handles POST /api/longreads/:id/image
func (h *LongReadHandler) EditLongReadImage(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "longreads.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "longreads.validation.id")
	}

	lr, err := services.BindLongReadImage(h.DB, h.Store, userID, id, uploadedFile(c))
	if err != nil {
		return serviceError(c, err, "longreads.image")
	}
	return c.Status(fiber.StatusOK).JSON(lr)
}

// EditLongReadMap handles POST /api/longreads/:id/map
func (h *LongReadHandler) EditLongReadMap(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "longreads.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "longreads.validation.id")
	}

	lr, err := services.BindLongReadMap(h.DB, h.Store, userID, id, uploadedFile(c))
	if err != nil {
		return serviceError(c, err, "longreads.map")
	}
	return c.Status(fiber.StatusOK).JSON(lr)
}

// EditLongReadTimeline handles POST /api/longreads/:id/timeline
func (h *LongReadHandler) EditLongReadTimeline(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "longreads.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "longreads.validation.id")
	}

	lr, err := services.BindLongReadTimeline(h.DB, h.Store, userID, id, uploadedFile(c))
	if err != nil {
		return serviceError(c, err, "longreads.timeline")
	}
	return c.Status(fiber.StatusOK).JSON(lr)
}
