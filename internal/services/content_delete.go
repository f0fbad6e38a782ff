// content_delete.go
//
// The cascading deletion engine. A delete removes the target and everything
// beneath it in the ownership tree, child before parent, releasing every
// bound asset that is not a placeholder and clearing association rows.
// Ownership is verified once, on the loaded top-level row; descendants share
// the same owner by construction.
//
// Each node's row operations run in their own transaction. A crash
// mid-cascade can leave an upper part of the subtree in place, but every
// step skips rows that are already gone, so a retried delete converges.

package services

import (
	"github.com/worldscribe/worldscribe/internal/assets"
	"github.com/worldscribe/worldscribe/internal/models"
	"gorm.io/gorm"
)

// DeleteWorld cascade-deletes a world: its longreads, its world objects,
// then the world row itself.
func DeleteWorld(db *gorm.DB, store *assets.Store, userID, id uint64) error {
	w, err := GetWorld(db, id)
	if err != nil {
		return err
	}
	if err := requireOwner(w.UserID, userID); err != nil {
		return err
	}
	return cascadeWorld(db, store, w)
}

// DeleteLongRead cascade-deletes a longread and its chapters.
func DeleteLongRead(db *gorm.DB, store *assets.Store, userID, id uint64) error {
	lr, err := GetLongRead(db, id)
	if err != nil {
		return err
	}
	if err := requireOwner(lr.UserID, userID); err != nil {
		return err
	}
	return cascadeLongRead(db, store, lr)
}

// DeleteChapter cascade-deletes a chapter and its block contents.
func DeleteChapter(db *gorm.DB, store *assets.Store, userID, id uint64) error {
	ch, err := GetChapter(db, id)
	if err != nil {
		return err
	}
	if err := requireOwner(ch.UserID, userID); err != nil {
		return err
	}
	return cascadeChapter(db, store, ch)
}

// DeleteBlockContent deletes a single block content through the same
// asset-release and association-cleanup path the cascades use.
func DeleteBlockContent(db *gorm.DB, store *assets.Store, userID, id uint64) error {
	bc, err := GetBlockContent(db, id)
	if err != nil {
		return err
	}
	if err := requireOwner(bc.UserID, userID); err != nil {
		return err
	}
	return cascadeBlockContent(db, store, bc)
}

// DeleteWorldObj deletes a world object and its association rows. Linked
// block contents are untouched: the association carries no ownership.
func DeleteWorldObj(db *gorm.DB, store *assets.Store, userID, id uint64) error {
	wo, err := GetWorldObj(db, id)
	if err != nil {
		return err
	}
	if err := requireOwner(wo.UserID, userID); err != nil {
		return err
	}
	return cascadeWorldObj(db, store, wo)
}

func cascadeWorld(db *gorm.DB, store *assets.Store, w *models.World) error {
	var longreads []models.LongRead
	if err := db.Where("world_id = ?", w.ID).Find(&longreads).Error; err != nil {
		return err
	}
	for i := range longreads {
		if err := cascadeLongRead(db, store, &longreads[i]); err != nil {
			return err
		}
	}

	var objs []models.WorldObj
	if err := db.Where("world_id = ?", w.ID).Find(&objs).Error; err != nil {
		return err
	}
	for i := range objs {
		if err := cascadeWorldObj(db, store, &objs[i]); err != nil {
			return err
		}
	}

	store.Release(assets.KindWorld, w.ImgLink)
	return db.Delete(w).Error
}

func cascadeLongRead(db *gorm.DB, store *assets.Store, lr *models.LongRead) error {
	var chapters []models.Chapter
	if err := db.Where("long_read_id = ?", lr.ID).Find(&chapters).Error; err != nil {
		return err
	}
	for i := range chapters {
		if err := cascadeChapter(db, store, &chapters[i]); err != nil {
			return err
		}
	}

	// Sweep blocks keyed to the longread directly. The schema forbids
	// chapterless blocks, but an interrupted earlier cascade can leave
	// blocks whose chapter row is already gone.
	var strays []models.BlockContent
	if err := db.Where("long_read_id = ?", lr.ID).Find(&strays).Error; err != nil {
		return err
	}
	for i := range strays {
		if err := cascadeBlockContent(db, store, &strays[i]); err != nil {
			return err
		}
	}

	store.Release(assets.KindLongRead, lr.ImgLink)
	store.Release(assets.KindMap, lr.MapLink)
	store.Release(assets.KindTimeline, lr.TimelineLink)
	return db.Delete(lr).Error
}

func cascadeChapter(db *gorm.DB, store *assets.Store, ch *models.Chapter) error {
	var blocks []models.BlockContent
	if err := db.Where("chapter_id = ?", ch.ID).Find(&blocks).Error; err != nil {
		return err
	}
	for i := range blocks {
		if err := cascadeBlockContent(db, store, &blocks[i]); err != nil {
			return err
		}
	}
	return db.Delete(ch).Error
}

func cascadeBlockContent(db *gorm.DB, store *assets.Store, bc *models.BlockContent) error {
	store.Release(assets.KindBlockContent, bc.ImgLink)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(bc).Association("WorldObjs").Clear(); err != nil {
			return err
		}
		return tx.Delete(bc).Error
	})
}

func cascadeWorldObj(db *gorm.DB, store *assets.Store, wo *models.WorldObj) error {
	store.Release(assets.KindWorldObj, wo.ImgLink)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(wo).Association("BlockContents").Clear(); err != nil {
			return err
		}
		return tx.Delete(wo).Error
	})
}
