package models

import (
	"time"
)

// World is a top-level owned content collection (a "setting").
type World struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:10000;not null" json:"description"`
	ImgLink     string    `gorm:"size:200;not null" json:"img_link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WorldObj is a reusable entity (character, place, item) that block contents
// reference. It is owned by a world, never by the block contents that link it.
type WorldObj struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	WorldID     uint64    `gorm:"not null;index" json:"world_id"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:1000;not null" json:"description"`
	ImgLink     string    `gorm:"size:200;not null" json:"img_link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	BlockContents []BlockContent `gorm:"many2many:block_contents_world_objs;joinForeignKey:world_obj_id;joinReferences:block_content_id" json:"-"`
}

// TableName overrides the table name for World
func (World) TableName() string {
	return "worlds"
}

// TableName overrides the table name for WorldObj
func (WorldObj) TableName() string {
	return "world_objs"
}
