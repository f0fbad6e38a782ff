package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/worldscribe/worldscribe/internal/assets"
	"github.com/worldscribe/worldscribe/internal/services"
	"github.com/worldscribe/worldscribe/internal/types"
	"github.com/worldscribe/worldscribe/internal/utils"
	"gorm.io/gorm"
)

// BlockContentHandler handles block content routes: the blocks themselves,
// their timeline-event attributes, and the world object associations.
type BlockContentHandler struct {
	DB    *gorm.DB
	Store *assets.Store
}

// GetChapterBlocks handles GET /api/chapters/:id/blocks
func (h *BlockContentHandler) GetChapterBlocks(c *fiber.Ctx) error {
	chapterID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "blocks.validation.id")
	}
	blocks, err := services.ListChapterBlockContents(h.DB, chapterID)
	if err != nil {
		return serviceError(c, err, "blocks.list")
	}
	return c.Status(fiber.StatusOK).JSON(blocks)
}

// GetLongReadBlocks handles GET /api/longreads/:id/blocks
func (h *BlockContentHandler) GetLongReadBlocks(c *fiber.Ctx) error {
	longreadID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "blocks.validation.id")
	}
	blocks, err := services.ListLongReadBlockContents(h.DB, longreadID)
	if err != nil {
		return serviceError(c, err, "blocks.list")
	}
	return c.Status(fiber.StatusOK).JSON(blocks)
}

// GetBlock handles GET /api/blocks/:id
func (h *BlockContentHandler) GetBlock(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "blocks.validation.id")
	}
	bc, err := services.GetBlockContent(h.DB, id)
	if err != nil {
		return serviceError(c, err, "blocks.get")
	}
	return c.Status(fiber.StatusOK).JSON(bc)
}

// CreateBlock handles POST /api/chapters/:id/blocks. The longread reference
// comes from the chapter row, never from the request.
func (h *BlockContentHandler) CreateBlock(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "blocks.context")
	}
	chapterID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "blocks.validation.id")
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "blocks.validation.input")
	}

	bc, err := services.CreateBlockContent(h.DB, h.Store, userID, chapterID, body.Text)
	if err != nil {
		return serviceError(c, err, "blocks.create")
	}
	return utils.CreatedResponse(c, bc)
}

// UpdateBlock handles PUT /api/blocks/:id
func (h *BlockContentHandler) UpdateBlock(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "blocks.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "blocks.validation.id")
	}

	var body services.UpdateBlockContentInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "blocks.validation.input")
	}

	bc, err := services.UpdateBlockContent(h.DB, userID, id, body)
	if err != nil {
		return serviceError(c, err, "blocks.update")
	}
	return c.Status(fiber.StatusOK).JSON(bc)
}

// DeleteBlock handles DELETE /api/blocks/:id
func (h *BlockContentHandler) DeleteBlock(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "blocks.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "blocks.validation.id")
	}

	if err := services.DeleteBlockContent(h.DB, h.Store, userID, id); err != nil {
		return serviceError(c, err, "blocks.delete")
	}
	return utils.MessageResponse(c, "Block content deleted")
}

// SetBlockEvent handles PUT /api/blocks/:id/event. All four event fields are
// required together; coordinates and time accept numbers or numeric strings.
func (h *BlockContentHandler) SetBlockEvent(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "blocks.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "blocks.validation.id")
	}

	var body struct {
		CoordX       *types.FlexInt64 `json:"coordx"`
		CoordY       *types.FlexInt64 `json:"coordy"`
		Time         *types.FlexInt64 `json:"time"`
		FloatingText *string          `json:"floating_text"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "blocks.validation.input")
	}
	if body.CoordX == nil || body.CoordY == nil || body.Time == nil || body.FloatingText == nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "blocks.validation.input")
	}

	bc, err := services.SetBlockEvent(h.DB, userID, id,
		body.CoordX.Int64(), body.CoordY.Int64(), body.Time.Int64(), *body.FloatingText)
	if err != nil {
		return serviceError(c, err, "blocks.event")
	}
	return c.Status(fiber.StatusOK).JSON(bc)
}

// ClearBlockEvent handles DELETE /api/blocks/:id/event. The block row
// survives; only the event attributes are cleared.
func (h *BlockContentHandler) ClearBlockEvent(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "blocks.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "blocks.validation.id")
	}

	bc, err := services.ClearBlockEvent(h.DB, userID, id)
	if err != nil {
		return serviceError(c, err, "blocks.event")
	}
	return c.Status(fiber.StatusOK).JSON(bc)
}

// EditBlockImage handles POST /api/blocks/:id/image
func (h *BlockContentHandler) EditBlockImage(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "blocks.context")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "blocks.validation.id")
	}

	bc, err := services.BindBlockContentImage(h.DB, h.Store, userID, id, uploadedFile(c))
	if err != nil {
		return serviceError(c, err, "blocks.image")
	}
	return c.Status(fiber.StatusOK).JSON(bc)
}

// GetBlockWorldObjs handles GET /api/blocks/:id/worldobjs
func (h *BlockContentHandler) GetBlockWorldObjs(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "blocks.validation.id")
	}
	objs, err := services.ListBlockContentWorldObjs(h.DB, id)
	if err != nil {
		return serviceError(c, err, "blocks.worldobjs")
	}
	return c.Status(fiber.StatusOK).JSON(objs)
}

// AttachWorldObj handles PUT /api/blocks/:id/worldobjs/:worldobjId.
// Attaching an already-linked pair is a no-op.
func (h *BlockContentHandler) AttachWorldObj(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "blocks.context")
	}
	blockID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "blocks.validation.id")
	}
	worldObjID, err := parseID(c, "worldobjId")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "blocks.validation.id")
	}

	if err := services.AttachWorldObj(h.DB, userID, blockID, worldObjID); err != nil {
		return serviceError(c, err, "blocks.attach")
	}
	return utils.MessageResponse(c, "World object attached")
}

// DetachWorldObj handles DELETE /api/blocks/:id/worldobjs/:worldobjId.
// Detaching a pair that is not linked is a no-op.
func (h *BlockContentHandler) DetachWorldObj(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "blocks.context")
	}
	blockID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "blocks.validation.id")
	}
	worldObjID, err := parseID(c, "worldobjId")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "blocks.validation.id")
	}

	if err := services.DetachWorldObj(h.DB, userID, blockID, worldObjID); err != nil {
		return serviceError(c, err, "blocks.detach")
	}
	return utils.MessageResponse(c, "World object detached")
}
