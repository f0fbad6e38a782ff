// asset_service.go
//
// Binds uploaded images to records. The flow per the asset lifecycle rules:
// an empty upload is a no-op; otherwise the prior non-placeholder file is
// released (best effort), the new file is written under the deterministic
// name, and only after a successful write is the record's link updated.

package services

import (
	"fmt"
	"mime/multipart"

	"github.com/worldscribe/worldscribe/internal/assets"
	"github.com/worldscribe/worldscribe/internal/models"
	"gorm.io/gorm"
)

// rebind replaces the asset behind one link column of an already-loaded,
// already-authorized record. Returns the new public link ("" means no-op).
func rebind(db *gorm.DB, store *assets.Store, rec any, column string, kind assets.Kind, id uint64, current string, file *multipart.FileHeader) (string, error) {
	if file == nil || file.Filename == "" {
		return "", nil
	}

	store.Release(kind, current)

	link, err := store.Save(kind, id, file)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetIO, err)
	}
	if err := db.Model(rec).Update(column, link).Error; err != nil {
		return "", err
	}
	return link, nil
}

// BindWorldImage replaces a world's image with an uploaded file.
func BindWorldImage(db *gorm.DB, store *assets.Store, userID, id uint64, file *multipart.FileHeader) (*models.World, error) {
	w, err := GetWorld(db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(w.UserID, userID); err != nil {
		return nil, err
	}
	link, err := rebind(db, store, w, "img_link", assets.KindWorld, w.ID, w.ImgLink, file)
	if err != nil {
		return nil, err
	}
	if link != "" {
		w.ImgLink = link
	}
	return w, nil
}

// BindLongReadImage replaces a longread's cover image.
func BindLongReadImage(db *gorm.DB, store *assets.Store, userID, id uint64, file *multipart.FileHeader) (*models.LongRead, error) {
	lr, err := GetLongRead(db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(lr.UserID, userID); err != nil {
		return nil, err
	}
	link, err := rebind(db, store, lr, "img_link", assets.KindLongRead, lr.ID, lr.ImgLink, file)
	if err != nil {
		return nil, err
	}
	if link != "" {
		lr.ImgLink = link
	}
	return lr, nil
}

// BindLongReadMap replaces a longread's map image.
func BindLongReadMap(db *gorm.DB, store *assets.Store, userID, id uint64, file *multipart.FileHeader) (*models.LongRead, error) {
	lr, err := GetLongRead(db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(lr.UserID, userID); err != nil {
		return nil, err
	}
	link, err := rebind(db, store, lr, "map_link", assets.KindMap, lr.ID, lr.MapLink, file)
	if err != nil {
		return nil, err
	}
	if link != "" {
		lr.MapLink = link
	}
	return lr, nil
}

// BindLongReadTimeline replaces a longread's timeline image.
func BindLongReadTimeline(db *gorm.DB, store *assets.Store, userID, id uint64, file *multipart.FileHeader) (*models.LongRead, error) {
	lr, err := GetLongRead(db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(lr.UserID, userID); err != nil {
		return nil, err
	}
	link, err := rebind(db, store, lr, "timeline_link", assets.KindTimeline, lr.ID, lr.TimelineLink, file)
	if err != nil {
		return nil, err
	}
	if link != "" {
		lr.TimelineLink = link
	}
	return lr, nil
}

// BindBlockContentImage replaces a block content's image.
func BindBlockContentImage(db *gorm.DB, store *assets.Store, userID, id uint64, file *multipart.FileHeader) (*models.BlockContent, error) {
	bc, err := GetBlockContent(db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(bc.UserID, userID); err != nil {
		return nil, err
	}
	link, err := rebind(db, store, bc, "img_link", assets.KindBlockContent, bc.ID, bc.ImgLink, file)
	if err != nil {
		return nil, err
	}
	if link != "" {
		bc.ImgLink = link
	}
	return bc, nil
}

// BindWorldObjImage replaces a world object's image.
func BindWorldObjImage(db *gorm.DB, store *assets.Store, userID, id uint64, file *multipart.FileHeader) (*models.WorldObj, error) {
	wo, err := GetWorldObj(db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(wo.UserID, userID); err != nil {
		return nil, err
	}
	link, err := rebind(db, store, wo, "img_link", assets.KindWorldObj, wo.ID, wo.ImgLink, file)
	if err != nil {
		return nil, err
	}
	if link != "" {
		wo.ImgLink = link
	}
	return wo, nil
}
