package helpers

import (
	"testing"

	"github.com/worldscribe/worldscribe/internal/models"
	"gorm.io/gorm"
)

// CreateTestWorld seeds a world owned by userID
func CreateTestWorld(t *testing.T, db *gorm.DB, userID uint64, name string) *models.World {
	t.Helper()
	world := models.World{
		UserID:      userID,
		Name:        name,
		Description: "test world",
		ImgLink:     "/staticFiles/images/world_base.jpg",
	}
	if err := db.Create(&world).Error; err != nil {
		t.Fatalf("Failed to create world: %v", err)
	}
	return &world
}

// CreateTestLongRead seeds a longread in the given world
func CreateTestLongRead(t *testing.T, db *gorm.DB, world *models.World, name string) *models.LongRead {
	t.Helper()
	lr := models.LongRead{
		WorldID:      world.ID,
		UserID:       world.UserID,
		Name:         name,
		Description:  "test longread",
		ImgLink:      "/staticFiles/images/QuestionMark.jpg",
		MapLink:      "/staticFiles/images/map_base.jpg",
		TimelineLink: "/staticFiles/images/timeline_base.jpg",
	}
	if err := db.Create(&lr).Error; err != nil {
		t.Fatalf("Failed to create longread: %v", err)
	}
	return &lr
}

// CreateTestChapter seeds a chapter in the given longread
func CreateTestChapter(t *testing.T, db *gorm.DB, lr *models.LongRead, name string) *models.Chapter {
	t.Helper()
	ch := models.Chapter{
		LongReadID: lr.ID,
		UserID:     lr.UserID,
		Name:       name,
	}
	if err := db.Create(&ch).Error; err != nil {
		t.Fatalf("Failed to create chapter: %v", err)
	}
	return &ch
}

// CreateTestBlock seeds a block content in the given chapter
func CreateTestBlock(t *testing.T, db *gorm.DB, ch *models.Chapter, text string) *models.BlockContent {
	t.Helper()
	bc := models.BlockContent{
		LongReadID: ch.LongReadID,
		ChapterID:  ch.ID,
		UserID:     ch.UserID,
		Text:       text,
		ImgLink:    "/staticFiles/images/font.jpg",
	}
	if err := db.Create(&bc).Error; err != nil {
		t.Fatalf("Failed to create block content: %v", err)
	}
	return &bc
}

// CreateTestWorldObj seeds a world object in the given world
func CreateTestWorldObj(t *testing.T, db *gorm.DB, world *models.World, name string) *models.WorldObj {
	t.Helper()
	wo := models.WorldObj{
		WorldID:     world.ID,
		UserID:      world.UserID,
		Name:        name,
		Description: "test world object",
		ImgLink:     "/staticFiles/images/worldobj_base.jpg",
	}
	if err := db.Create(&wo).Error; err != nil {
		t.Fatalf("Failed to create world object: %v", err)
	}
	return &wo
}
