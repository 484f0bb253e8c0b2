package models

import (
	"time"

	"github.com/google/uuid"
)

// BoostTransaction is a time-boxed top-ranking purchase. Multiple rows may
// exist per post historically; at most one is active with a future end date.
type BoostTransaction struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PostID       uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Price        int64     `gorm:"not null" json:"price"`
	DurationDays int       `gorm:"column:duration;not null" json:"duration"`
	StartDate    time.Time `gorm:"not null" json:"start_date"`
	EndDate      time.Time `gorm:"not null;index" json:"end_date"`
	IsActive     bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Post Post `gorm:"foreignKey:PostID" json:"-"`
}

func (BoostTransaction) TableName() string {
	return "boost_transactions"
}
