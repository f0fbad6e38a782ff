// content_service.go
//
// CRUD over the content hierarchy: worlds, longreads, chapters, block
// contents, world objects, and the block↔object association. Creation
// verifies every supplied parent id belongs to the acting user and stamps
// the owner onto the new row; updates apply only the fields supplied.

package services

import (
	"errors"

	"github.com/worldscribe/worldscribe/internal/assets"
	"github.com/worldscribe/worldscribe/internal/models"
	"gorm.io/gorm"
)

// UpdateWorldInput carries a partial update; nil fields keep prior values.
type UpdateWorldInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateLongReadInput carries a partial update; nil fields keep prior values.
type UpdateLongReadInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateBlockContentInput carries a partial update; nil fields keep prior values.
type UpdateBlockContentInput struct {
	Text *string `json:"text"`
}

// UpdateWorldObjInput carries a partial update; nil fields keep prior values.
type UpdateWorldObjInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---- worlds ----

func GetWorld(db *gorm.DB, id uint64) (*models.World, error) {
	var w models.World
	if err := db.First(&w, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &w, nil
}

func ListWorlds(db *gorm.DB) ([]models.World, error) {
	var worlds []models.World
	if err := db.Order("id").Find(&worlds).Error; err != nil {
		return nil, err
	}
	return worlds, nil
}

func CreateWorld(db *gorm.DB, store *assets.Store, userID uint64, name, description string) (*models.World, error) {
	if name == "" || description == "" {
		return nil, ErrValidation
	}
	w := models.World{
		UserID:      userID,
		Name:        name,
		Description: description,
		ImgLink:     store.Placeholder(assets.KindWorld),
	}
	if err := db.Create(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func UpdateWorld(db *gorm.DB, userID, id uint64, in UpdateWorldInput) (*models.World, error) {
	w, err := GetWorld(db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(w.UserID, userID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, ErrValidation
		}
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		if *in.Description == "" {
			return nil, ErrValidation
		}
		updates["description"] = *in.Description
	}
	if len(updates) == 0 {
		return w, nil
	}
	if err := db.Model(w).Updates(updates).Error; err != nil {
		return nil, err
	}
	return w, nil
}

// ---- longreads ----

func GetLongRead(db *gorm.DB, id uint64) (*models.LongRead, error) {
	var lr models.LongRead
	if err := db.First(&lr, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &lr, nil
}

func ListLongReads(db *gorm.DB) ([]models.LongRead, error) {
	var longreads []models.LongRead
	if err := db.Order("id").Find(&longreads).Error; err != nil {
		return nil, err
	}
	return longreads, nil
}

// ListWorldLongReads returns a world's longreads; a missing world is
// ErrNotFound, an existing world with no longreads is an empty list.
func ListWorldLongReads(db *gorm.DB, worldID uint64) ([]models.LongRead, error) {
	if _, err := GetWorld(db, worldID); err != nil {
		return nil, err
	}
	var longreads []models.LongRead
	if err := db.Where("world_id = ?", worldID).Order("id").Find(&longreads).Error; err != nil {
		return nil, err
	}
	return longreads, nil
}

func CreateLongRead(db *gorm.DB, store *assets.Store, userID, worldID uint64, name, description string) (*models.LongRead, error) {
	if name == "" || description == "" {
		return nil, ErrValidation
	}
	world, err := GetWorld(db, worldID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(world.UserID, userID); err != nil {
		return nil, err
	}

	lr := models.LongRead{
		WorldID:      world.ID,
		UserID:       world.UserID,
		Name:         name,
		Description:  description,
		ImgLink:      store.Placeholder(assets.KindLongRead),
		MapLink:      store.Placeholder(assets.KindMap),
		TimelineLink: store.Placeholder(assets.KindTimeline),
	}
	if err := db.Create(&lr).Error; err != nil {
		return nil, err
	}
	return &lr, nil
}

func UpdateLongRead(db *gorm.DB, userID, id uint64, in UpdateLongReadInput) (*models.LongRead, error) {
	lr, err := GetLongRead(db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(lr.UserID, userID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, ErrValidation
		}
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		if *in.Description == "" {
			return nil, ErrValidation
		}
		updates["description"] = *in.Description
	}
	if len(updates) == 0 {
		return lr, nil
	}
	if err := db.Model(lr).Updates(updates).Error; err != nil {
		return nil, err
	}
	return lr, nil
}

// ---- chapters ----

func GetChapter(db *gorm.DB, id uint64) (*models.Chapter, error) {
	var ch models.Chapter
	if err := db.First(&ch, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &ch, nil
}

func ListLongReadChapters(db *gorm.DB, longreadID uint64) ([]models.Chapter, error) {
	if _, err := GetLongRead(db, longreadID); err != nil {
		return nil, err
	}
	var chapters []models.Chapter
	if err := db.Where("long_read_id = ?", longreadID).Order("id").Find(&chapters).Error; err != nil {
		return nil, err
	}
	return chapters, nil
}

func CreateChapter(db *gorm.DB, userID, longreadID uint64, name string) (*models.Chapter, error) {
	if name == "" {
		return nil, ErrValidation
	}
	lr, err := GetLongRead(db, longreadID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(lr.UserID, userID); err != nil {
		return nil, err
	}

	ch := models.Chapter{
		LongReadID: lr.ID,
		UserID:     lr.UserID,
		Name:       name,
	}
	if err := db.Create(&ch).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

func UpdateChapter(db *gorm.DB, userID, id uint64, name string) (*models.Chapter, error) {
	if name == "" {
		return nil, ErrValidation
	}
	ch, err := GetChapter(db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(ch.UserID, userID); err != nil {
		return nil, err
	}
	if err := db.Model(ch).Update("name", name).Error; err != nil {
		return nil, err
	}
	return ch, nil
}

// ---- block contents ----

func GetBlockContent(db *gorm.DB, id uint64) (*models.BlockContent, error) {
	var bc models.BlockContent
	if err := db.First(&bc, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &bc, nil
}

func ListChapterBlockContents(db *gorm.DB, chapterID uint64) ([]models.BlockContent, error) {
	if _, err := GetChapter(db, chapterID); err != nil {
		return nil, err
	}
	var blocks []models.BlockContent
	if err := db.Where("chapter_id = ?", chapterID).Order("id").Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func ListLongReadBlockContents(db *gorm.DB, longreadID uint64) ([]models.BlockContent, error) {
	if _, err := GetLongRead(db, longreadID); err != nil {
		return nil, err
	}
	var blocks []models.BlockContent
	if err := db.Where("long_read_id = ?", longreadID).Order("id").Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// CreateBlockContent creates a block under a chapter; the longread reference
// is taken from the chapter row, which keeps the chapter/longread pair
// consistent by construction.
func CreateBlockContent(db *gorm.DB, store *assets.Store, userID, chapterID uint64, text string) (*models.BlockContent, error) {
	ch, err := GetChapter(db, chapterID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(ch.UserID, userID); err != nil {
		return nil, err
	}

	bc := models.BlockContent{
		LongReadID: ch.LongReadID,
		ChapterID:  ch.ID,
		UserID:     ch.UserID,
		Text:       text,
		ImgLink:    store.Placeholder(assets.KindBlockContent),
	}
	if err := db.Create(&bc).Error; err != nil {
		return nil, err
	}
	return &bc, nil
}

func UpdateBlockContent(db *gorm.DB, userID, id uint64, in UpdateBlockContentInput) (*models.BlockContent, error) {
	bc, err := GetBlockContent(db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(bc.UserID, userID); err != nil {
		return nil, err
	}
	if in.Text == nil {
		return bc, nil
	}
	if err := db.Model(bc).Update("text", *in.Text).Error; err != nil {
		return nil, err
	}
	return bc, nil
}

// SetBlockEvent attaches timeline-event attributes to a block.
func SetBlockEvent(db *gorm.DB, userID, id uint64, coordX, coordY, eventTime int64, floatingText string) (*models.BlockContent, error) {
	bc, err := GetBlockContent(db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(bc.UserID, userID); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"coord_x":       coordX,
		"coord_y":       coordY,
		"time":          eventTime,
		"floating_text": floatingText,
	}
	if err := db.Model(bc).Updates(updates).Error; err != nil {
		return nil, err
	}
	bc.CoordX, bc.CoordY, bc.Time, bc.FloatingText = &coordX, &coordY, &eventTime, &floatingText
	return bc, nil
}

// ClearBlockEvent removes the event attributes; the block itself survives.
func ClearBlockEvent(db *gorm.DB, userID, id uint64) (*models.BlockContent, error) {
	bc, err := GetBlockContent(db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(bc.UserID, userID); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"coord_x":       nil,
		"coord_y":       nil,
		"time":          nil,
		"floating_text": nil,
	}
	if err := db.Model(bc).Updates(updates).Error; err != nil {
		return nil, err
	}
	bc.CoordX, bc.CoordY, bc.Time, bc.FloatingText = nil, nil, nil, nil
	return bc, nil
}

// ---- world objects ----

func GetWorldObj(db *gorm.DB, id uint64) (*models.WorldObj, error) {
	var wo models.WorldObj
	if err := db.First(&wo, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &wo, nil
}

func ListWorldWorldObjs(db *gorm.DB, worldID uint64) ([]models.WorldObj, error) {
	if _, err := GetWorld(db, worldID); err != nil {
		return nil, err
	}
	var objs []models.WorldObj
	if err := db.Where("world_id = ?", worldID).Order("id").Find(&objs).Error; err != nil {
		return nil, err
	}
	return objs, nil
}

func CreateWorldObj(db *gorm.DB, store *assets.Store, userID, worldID uint64, name, description string) (*models.WorldObj, error) {
	if name == "" || description == "" {
		return nil, ErrValidation
	}
	world, err := GetWorld(db, worldID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(world.UserID, userID); err != nil {
		return nil, err
	}

	wo := models.WorldObj{
		WorldID:     world.ID,
		UserID:      world.UserID,
		Name:        name,
		Description: description,
		ImgLink:     store.Placeholder(assets.KindWorldObj),
	}
	if err := db.Create(&wo).Error; err != nil {
		return nil, err
	}
	return &wo, nil
}

func UpdateWorldObj(db *gorm.DB, userID, id uint64, in UpdateWorldObjInput) (*models.WorldObj, error) {
	wo, err := GetWorldObj(db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(wo.UserID, userID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, ErrValidation
		}
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		if *in.Description == "" {
			return nil, ErrValidation
		}
		updates["description"] = *in.Description
	}
	if len(updates) == 0 {
		return wo, nil
	}
	if err := db.Model(wo).Updates(updates).Error; err != nil {
		return nil, err
	}
	return wo, nil
}

// ---- block content ↔ world object association ----

// AttachWorldObj links a world object to a block content. Attaching an
// already-linked pair is a no-op. No ownership crosses the association:
// both rows must belong to the acting user, but neither owns the other.
func AttachWorldObj(db *gorm.DB, userID, blockContentID, worldObjID uint64) error {
	bc, err := GetBlockContent(db, blockContentID)
	if err != nil {
		return err
	}
	wo, err := GetWorldObj(db, worldObjID)
	if err != nil {
		return err
	}
	if err := requireOwner(bc.UserID, userID); err != nil {
		return err
	}
	if err := requireOwner(wo.UserID, userID); err != nil {
		return err
	}

	var count int64
	if err := db.Table("block_contents_world_objs").
		Where("block_content_id = ? AND world_obj_id = ?", bc.ID, wo.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Model(bc).Association("WorldObjs").Append(wo)
}

// DetachWorldObj removes the link between a block content and a world
// object. Detaching a pair that is not linked is a no-op.
func DetachWorldObj(db *gorm.DB, userID, blockContentID, worldObjID uint64) error {
	bc, err := GetBlockContent(db, blockContentID)
	if err != nil {
		return err
	}
	wo, err := GetWorldObj(db, worldObjID)
	if err != nil {
		return err
	}
	if err := requireOwner(bc.UserID, userID); err != nil {
		return err
	}
	if err := requireOwner(wo.UserID, userID); err != nil {
		return err
	}
	return db.Model(bc).Association("WorldObjs").Delete(wo)
}

// ListBlockContentWorldObjs returns the world objects linked to a block.
func ListBlockContentWorldObjs(db *gorm.DB, blockContentID uint64) ([]models.WorldObj, error) {
	bc, err := GetBlockContent(db, blockContentID)
	if err != nil {
		return nil, err
	}
	var objs []models.WorldObj
	if err := db.Model(bc).Association("WorldObjs").Find(&objs); err != nil {
		return nil, err
	}
	return objs, nil
}

// ListWorldObjBlockContents returns the blocks linked to a world object.
func ListWorldObjBlockContents(db *gorm.DB, worldObjID uint64) ([]models.BlockContent, error) {
	wo, err := GetWorldObj(db, worldObjID)
	if err != nil {
		return nil, err
	}
	var blocks []models.BlockContent
	if err := db.Model(wo).Association("BlockContents").Find(&blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}
