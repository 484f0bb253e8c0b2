package models

import (
	"time"

	"github.com/google/uuid"
)

// PostSubscription is one purchase of a visibility package for a post.
// At most one subscription per post is ACTIVE or PENDING at any moment;
// an upgrade cancels the prior row in the same transaction.
type PostSubscription struct {
	ID        uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PostID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	PackageID uint               `gorm:"not null;index" json:"package_id"`
	Action    SubscriptionAction `gorm:"not null;size:10" json:"action"`
	StartDate time.Time          `gorm:"not null" json:"start_date"`
	EndDate   time.Time          `gorm:"not null;index" json:"end_date"`
	Status    SubscriptionStatus `gorm:"not null;default:'PENDING';size:20;index" json:"status"`

	// Upgrade audit trail: what was superseded and how much time it had left.
	PreviousPackageID *uint      `json:"previous_package_id,omitempty"`
	PreviousEndDate   *time.Time `json:"previous_end_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Package ServicePackage `gorm:"foreignKey:PackageID" json:"package,omitempty"`
	Post    Post           `gorm:"foreignKey:PostID" json:"-"`
}

func (PostSubscription) TableName() string {
	return "post_subscriptions"
}
