package services_test

import (
	"errors"
	"testing"

	"github.com/worldscribe/worldscribe/internal/models"
	"github.com/worldscribe/worldscribe/internal/services"
	"gorm.io/gorm"
)

// buildTree seeds a world with one longread, one chapter, two blocks, one
// world object, and links the object to the first block.
func buildTree(t *testing.T, db *gorm.DB, userID uint64) (world *models.World, lr *models.LongRead, ch *models.Chapter, blocks []*models.BlockContent, wo *models.WorldObj) {
	t.Helper()
	store := testStore(t)

	world, err := services.CreateWorld(db, store, userID, "Midgard", "nine realms")
	if err != nil {
		t.Fatalf("CreateWorld failed: %v", err)
	}
	lr, err = services.CreateLongRead(db, store, userID, world.ID, "Saga", "a tale")
	if err != nil {
		t.Fatalf("CreateLongRead failed: %v", err)
	}
	ch, err = services.CreateChapter(db, userID, lr.ID, "Opening")
	if err != nil {
		t.Fatalf("CreateChapter failed: %v", err)
	}
	for _, text := range []string{"first", "second"} {
		bc, err := services.CreateBlockContent(db, store, userID, ch.ID, text)
		if err != nil {
			t.Fatalf("CreateBlockContent failed: %v", err)
		}
		blocks = append(blocks, bc)
	}
	wo, err = services.CreateWorldObj(db, store, userID, world.ID, "Thor", "god of thunder")
	if err != nil {
		t.Fatalf("CreateWorldObj failed: %v", err)
	}
	if err := services.AttachWorldObj(db, userID, blocks[0].ID, wo.ID); err != nil {
		t.Fatalf("AttachWorldObj failed: %v", err)
	}
	return world, lr, ch, blocks, wo
}

func countJoinRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Table("block_contents_world_objs").Count(&count).Error; err != nil {
		t.Fatalf("Failed to count join rows: %v", err)
	}
	return count
}

func TestDeleteWorldCascades(t *testing.T) {
	db := setupTestDB(t)
	store := testStore(t)
	alice := seedUser(t, db, "alice")

	world, lr, ch, blocks, wo := buildTree(t, db, alice)

	if err := services.DeleteWorld(db, store, alice, world.ID); err != nil {
		t.Fatalf("DeleteWorld failed: %v", err)
	}

	if _, err := services.GetWorld(db, world.ID); !errors.Is(err, services.ErrNotFound) {
		t.Error("World row should be gone")
	}
	if _, err := services.GetLongRead(db, lr.ID); !errors.Is(err, services.ErrNotFound) {
		t.Error("Longread should be cascade-deleted")
	}
	if _, err := services.GetChapter(db, ch.ID); !errors.Is(err, services.ErrNotFound) {
		t.Error("Chapter should be cascade-deleted")
	}
	for _, bc := range blocks {
		if _, err := services.GetBlockContent(db, bc.ID); !errors.Is(err, services.ErrNotFound) {
			t.Errorf("Block %d should be cascade-deleted", bc.ID)
		}
	}
	if _, err := services.GetWorldObj(db, wo.ID); !errors.Is(err, services.ErrNotFound) {
		t.Error("World object should be cascade-deleted")
	}
	if n := countJoinRows(t, db); n != 0 {
		t.Errorf("Expected no association rows after world delete, got %d", n)
	}
}

func TestDeleteLongReadCascades(t *testing.T) {
	db := setupTestDB(t)
	store := testStore(t)
	alice := seedUser(t, db, "alice")

	world, lr, ch, blocks, wo := buildTree(t, db, alice)

	if err := services.DeleteLongRead(db, store, alice, lr.ID); err != nil {
		t.Fatalf("DeleteLongRead failed: %v", err)
	}

	if _, err := services.GetChapter(db, ch.ID); !errors.Is(err, services.ErrNotFound) {
		t.Error("Chapter should be cascade-deleted")
	}
	for _, bc := range blocks {
		if _, err := services.GetBlockContent(db, bc.ID); !errors.Is(err, services.ErrNotFound) {
			t.Errorf("Block %d should be cascade-deleted", bc.ID)
		}
	}

	// Siblings above the longread survive.
	if _, err := services.GetWorld(db, world.ID); err != nil {
		t.Errorf("World should survive a longread delete: %v", err)
	}
	if _, err := services.GetWorldObj(db, wo.ID); err != nil {
		t.Errorf("World object should survive a longread delete: %v", err)
	}
	if n := countJoinRows(t, db); n != 0 {
		t.Errorf("Expected association rows cleared with the blocks, got %d", n)
	}
}

func TestDeleteLongReadSweepsStrayBlocks(t *testing.T) {
	db := setupTestDB(t)
	store := testStore(t)
	alice := seedUser(t, db, "alice")

	_, lr, ch, blocks, _ := buildTree(t, db, alice)

	// Simulate an interrupted earlier cascade: the chapter row is gone but
	// its blocks remain keyed to the longread.
	if err := db.Delete(&models.Chapter{}, ch.ID).Error; err != nil {
		t.Fatalf("Failed to delete chapter row: %v", err)
	}

	if err := services.DeleteLongRead(db, store, alice, lr.ID); err != nil {
		t.Fatalf("DeleteLongRead failed: %v", err)
	}
	for _, bc := range blocks {
		if _, err := services.GetBlockContent(db, bc.ID); !errors.Is(err, services.ErrNotFound) {
			t.Errorf("Stray block %d should be swept by the longread delete", bc.ID)
		}
	}
}

func TestDeleteChapterCascades(t *testing.T) {
	db := setupTestDB(t)
	store := testStore(t)
	alice := seedUser(t, db, "alice")

	_, lr, ch, blocks, _ := buildTree(t, db, alice)

	if err := services.DeleteChapter(db, store, alice, ch.ID); err != nil {
		t.Fatalf("DeleteChapter failed: %v", err)
	}
	for _, bc := range blocks {
		if _, err := services.GetBlockContent(db, bc.ID); !errors.Is(err, services.ErrNotFound) {
			t.Errorf("Block %d should be cascade-deleted", bc.ID)
		}
	}
	if _, err := services.GetLongRead(db, lr.ID); err != nil {
		t.Errorf("Longread should survive a chapter delete: %v", err)
	}
}

func TestDeleteWorldObjLeavesBlocks(t *testing.T) {
	db := setupTestDB(t)
	store := testStore(t)
	alice := seedUser(t, db, "alice")

	_, _, _, blocks, wo := buildTree(t, db, alice)

	if err := services.DeleteWorldObj(db, store, alice, wo.ID); err != nil {
		t.Fatalf("DeleteWorldObj failed: %v", err)
	}

	if _, err := services.GetWorldObj(db, wo.ID); !errors.Is(err, services.ErrNotFound) {
		t.Error("World object row should be gone")
	}
	if n := countJoinRows(t, db); n != 0 {
		t.Errorf("Expected association rows cleared, got %d", n)
	}
	// The linked block survives: the association carries no ownership.
	if _, err := services.GetBlockContent(db, blocks[0].ID); err != nil {
		t.Errorf("Linked block should survive an object delete: %v", err)
	}
}

func TestDeleteBlockContentClearsAssociations(t *testing.T) {
	db := setupTestDB(t)
	store := testStore(t)
	alice := seedUser(t, db, "alice")

	_, _, _, blocks, wo := buildTree(t, db, alice)

	if err := services.DeleteBlockContent(db, store, alice, blocks[0].ID); err != nil {
		t.Fatalf("DeleteBlockContent failed: %v", err)
	}
	if n := countJoinRows(t, db); n != 0 {
		t.Errorf("Expected association rows cleared, got %d", n)
	}
	if _, err := services.GetWorldObj(db, wo.ID); err != nil {
		t.Errorf("World object should survive a block delete: %v", err)
	}
	if _, err := services.GetBlockContent(db, blocks[1].ID); err != nil {
		t.Errorf("Sibling block should survive: %v", err)
	}
}

func TestDeleteDenied(t *testing.T) {
	db := setupTestDB(t)
	store := testStore(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	world, lr, _, _, _ := buildTree(t, db, alice)

	if err := services.DeleteWorld(db, store, bob, world.ID); !errors.Is(err, services.ErrDenied) {
		t.Errorf("Expected ErrDenied, got %v", err)
	}
	// Nothing was removed.
	if _, err := services.GetWorld(db, world.ID); err != nil {
		t.Errorf("World should survive a denied delete: %v", err)
	}
	if _, err := services.GetLongRead(db, lr.ID); err != nil {
		t.Errorf("Longread should survive a denied delete: %v", err)
	}
}

func TestDeleteMissingTarget(t *testing.T) {
	db := setupTestDB(t)
	store := testStore(t)
	alice := seedUser(t, db, "alice")

	if err := services.DeleteWorld(db, store, alice, 9999); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
