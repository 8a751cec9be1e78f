package types

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a follower relation between two users. A user never
// subscribes to themselves; the check constraint backs up the service rule.
type Subscription struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index:,unique,composite:user_author" json:"user_id"`
	User     *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;index:,unique,composite:user_author;check:author_id <> user_id" json:"author_id"`
	Author   *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:AuthorID;references:ID" json:"author,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Subscription) TableName() string { return "subscription" }
