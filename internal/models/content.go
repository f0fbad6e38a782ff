package models

import (
	"time"
)

// LongRead is a narrative document within a world. The owning user id is
// denormalized from the world at creation so ownership checks are one hop.
type LongRead struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	WorldID      uint64    `gorm:"not null;index" json:"world_id"`
	UserID       uint64    `gorm:"not null;index" json:"user_id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Description  string    `gorm:"size:1000;not null" json:"description"`
	ImgLink      string    `gorm:"size:200;not null" json:"img_link"`
	MapLink      string    `gorm:"size:200;not null" json:"map_link"`
	TimelineLink string    `gorm:"size:200;not null" json:"timeline_link"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Chapter is an ordered subdivision of a longread.
type Chapter struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	LongReadID uint64    `gorm:"not null;index" json:"longread_id"`
	UserID     uint64    `gorm:"not null;index" json:"user_id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BlockContent is an atomic content unit within a chapter: text, an image,
// or a timeline event. The event fields are nullable; a block without an
// event has all four unset.
type BlockContent struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	LongReadID uint64 `gorm:"not null;index" json:"longread_id"`
	ChapterID  uint64 `gorm:"not null;index" json:"chapter_id"`
	UserID     uint64 `gorm:"not null;index" json:"user_id"`
	Text       string `gorm:"size:10000" json:"text"`
	ImgLink    string `gorm:"size:200;not null" json:"img_link"`

	// event attributes
	CoordX       *int64  `json:"coordx"`
	CoordY       *int64  `json:"coordy"`
	Time         *int64  `json:"time"`
	FloatingText *string `gorm:"size:200" json:"floating_text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	WorldObjs []WorldObj `gorm:"many2many:block_contents_world_objs;joinForeignKey:block_content_id;joinReferences:world_obj_id" json:"-"`
}

// TableName overrides the table name for LongRead
func (LongRead) TableName() string {
	return "longreads"
}

// TableName overrides the table name for Chapter
func (Chapter) TableName() string {
	return "chapters"
}

// TableName overrides the table name for BlockContent
func (BlockContent) TableName() string {
	return "block_contents"
}
