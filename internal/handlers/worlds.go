package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/worldscribe/worldscribe/internal/assets"
	"github.com/worldscribe/worldscribe/internal/services"
	"github.com/worldscribe/worldscribe/internal/utils"
	"gorm.io/gorm"
)

// WorldHandler handles world routes
type WorldHandler struct {
	DB    *gorm.DB
	Store *assets.Store
}

// GetWorlds handles GET /api/worlds. Reads are public and unscoped.
// @Summary List all worlds
// @Tags Worlds
// @Produce json
// @Success 200 {array} models.World
// @Router /worlds [get]
func (h *WorldHandler) GetWorlds(c *fiber.Ctx) error {
	worlds, err := services.ListWorlds(h.DB)
	if err != nil {
		return serviceError(c, err, "worlds.list")
	}
	return c.Status(fiber.StatusOK).JSON(worlds)
}

// GetWorld handles GET /api/worlds/:id
// @Summary Get a world
// @Tags Worlds
// @Produce json
// @Param id path int true "World ID"
// @Success 200 {object} models.World
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /worlds/{id} [get]
func (h *WorldHandler) GetWorld(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "worlds.validation.id")
	}
	world, err := services.GetWorld(h.DB, id)
	if err != nil {
		return serviceError(c, err, "worlds.get")
	}
	return c.Status(fiber.StatusOK).JSON(world)
}

// CreateWorld handles POST /api/worlds
// @Summary Create a world owned by the authenticated user
// @Tags Worlds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.World
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /worlds [post]
func (h *WorldHandler) CreateWorld(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "worlds.context")
	}

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "worlds.validation.input")
	}

	world, err := services.CreateWorld(h.DB, h.Store, userID, body.Name, body.Description)
	if err != nil {
		return serviceError(c, err, "worlds.create")
	}
	return utils.CreatedResponse(c, world)
}

// UpdateWorld handles PUT /api/worlds/:id. Only supplied fields change.
// @Summary Update a world
// @Tags Worlds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "World ID"
// @Success 200 {object} models.World
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /worlds/{id} [put]
func (h *WorldHandler) UpdateWorld(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "worlds.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "worlds.validation.id")
	}

	var body services.UpdateWorldInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "worlds.validation.input")
	}

	world, err := services.UpdateWorld(h.DB, userID, id, body)
	if err != nil {
		return serviceError(c, err, "worlds.update")
	}
	return c.Status(fiber.StatusOK).JSON(world)
}

// DeleteWorld handles DELETE /api/worlds/:id. The cascade removes every
// longread, chapter, block content and world object beneath the world.
// @Summary Delete a world and everything beneath it
// @Tags Worlds
// @Produce json
// @Security BearerAuth
// @Param id path int true "World ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /worlds/{id} [delete]
func (h *WorldHandler) DeleteWorld(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "worlds.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "worlds.validation.id")
	}

	if err := services.DeleteWorld(h.DB, h.Store, userID, id); err != nil {
		return serviceError(c, err, "worlds.delete")
	}
	return utils.MessageResponse(c, "World deleted")
}

// EditWorldImage handles POST /api/worlds/:id/image. An empty upload keeps
// the current image.
// @Summary Replace a world's image
// @Tags Worlds
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "World ID"
// @Param uploaded-file formData file false "Image file"
// @Success 200 {object} models.World
// @Router /worlds/{id}/image [post]
func (h *WorldHandler) EditWorldImage(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "worlds.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "worlds.validation.id")
	}

	world, err := services.BindWorldImage(h.DB, h.Store, userID, id, uploadedFile(c))
	if err != nil {
		return serviceError(c, err, "worlds.image")
	}
	return c.Status(fiber.StatusOK).JSON(world)
}
