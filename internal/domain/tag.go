package types

import (
	"github.com/google/uuid"
)

type Tag struct {
	ID    uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name  string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Color string    `gorm:"column:color;default:#49B64E" json:"color"`
	Slug  string    `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
}

func (Tag) TableName() string { return "tag" }
