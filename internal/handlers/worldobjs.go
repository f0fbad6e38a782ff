package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/worldscribe/worldscribe/internal/assets"
	"github.com/worldscribe/worldscribe/internal/services"
	"github.com/worldscribe/worldscribe/internal/utils"
	"gorm.io/gorm"
)

// WorldObjHandler handles world object routes
type WorldObjHandler struct {
	DB    *gorm.DB
	Store *assets.Store
}

// GetWorldWorldObjs handles GET /api/worlds/:id/worldobjs
func (h *WorldObjHandler) GetWorldWorldObjs(c *fiber.Ctx) error {
	worldID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "worldobjs.validation.id")
	}
	objs, err := services.ListWorldWorldObjs(h.DB, worldID)
	if err != nil {
		return serviceError(c, err, "worldobjs.list")
	}
	return c.Status(fiber.StatusOK).JSON(objs)
}

// GetWorldObj handles GET /api/worldobjs/:id
func (h *WorldObjHandler) GetWorldObj(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "worldobjs.validation.id")
	}
	wo, err := services.GetWorldObj(h.DB, id)
	if err != nil {
		return serviceError(c, err, "worldobjs.get")
	}
	return c.Status(fiber.StatusOK).JSON(wo)
}

// GetWorldObjBlocks handles GET /api/worldobjs/:id/blocks
func (h *WorldObjHandler) GetWorldObjBlocks(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "worldobjs.validation.id")
	}
	blocks, err := services.ListWorldObjBlockContents(h.DB, id)
	if err != nil {
		return serviceError(c, err, "worldobjs.blocks")
	}
	return c.Status(fiber.StatusOK).JSON(blocks)
}

// CreateWorldObj handles POST /api/worlds/:id/worldobjs
func (h *WorldObjHandler) CreateWorldObj(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "worldobjs.context")
	}
	worldID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "worldobjs.validation.id")
	}

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "worldobjs.validation.input")
	}

	wo, err := services.CreateWorldObj(h.DB, h.Store, userID, worldID, body.Name, body.Description)
	if err != nil {
		return serviceError(c, err, "worldobjs.create")
	}
	return utils.CreatedResponse(c, wo)
}

// UpdateWorldObj handles PUT /api/worldobjs/:id
func (h *WorldObjHandler) UpdateWorldObj(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "worldobjs.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "worldobjs.validation.id")
	}

	var body services.UpdateWorldObjInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "worldobjs.validation.input")
	}

	wo, err := services.UpdateWorldObj(h.DB, userID, id, body)
	if err != nil {
		return serviceError(c, err, "worldobjs.update")
	}
	return c.Status(fiber.StatusOK).JSON(wo)
}

// DeleteWorldObj handles DELETE /api/worldobjs/:id. Linked block contents
// survive; only the association rows go.
func (h *WorldObjHandler) DeleteWorldObj(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "worldobjs.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "worldobjs.validation.id")
	}

	if err := services.DeleteWorldObj(h.DB, h.Store, userID, id); err != nil {
		return serviceError(c, err, "worldobjs.delete")
	}
	return utils.MessageResponse(c, "World object deleted")
}

// EditWorldObjImage handles POST /api/worldobjs/:id/image
func (h *WorldObjHandler) EditWorldObjImage(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "worldobjs.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "worldobjs.validation.id")
	}

	wo, err := services.BindWorldObjImage(h.DB, h.Store, userID, id, uploadedFile(c))
	if err != nil {
		return serviceError(c, err, "worldobjs.image")
	}
	return c.Status(fiber.StatusOK).JSON(wo)
}
