package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title           string         `gorm:"not null;size:255" json:"title"`
	Slug            string         `gorm:"not null;size:300;uniqueIndex" json:"slug"`
	Description     string         `gorm:"type:text" json:"description"`
	Location        string         `gorm:"size:255;index" json:"location"`
	Category        string         `gorm:"size:100;index" json:"category"`
	PostType        PostType       `gorm:"not null;size:10;index" json:"post_type"`
	Status          PostStatus     `gorm:"not null;default:'PENDING';size:20;index" json:"status"`
	RejectionReason string         `gorm:"size:500" json:"rejection_reason,omitempty"`
	ViewCount       int            `gorm:"not null;default:0" json:"view_count"`
	IsBoosted       bool           `gorm:"not null;default:false;index" json:"is_boosted"`
	BoostUntil      *time.Time     `json:"boost_until,omitempty"`
	LastBoostedAt   *time.Time     `json:"last_boosted_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Subscriptions []PostSubscription `gorm:"foreignKey:PostID" json:"subscriptions,omitempty"`
	Boosts        []BoostTransaction `gorm:"foreignKey:PostID" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}
