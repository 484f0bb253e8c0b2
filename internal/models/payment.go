package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is the append-only financial trail. Amount is snapshotted from the
// package or boost price at purchase time; later catalog changes never touch
// existing rows. The (TargetType, TargetID) pair points at exactly one
// subscription or boost transaction.
type Payment struct {
	ID            uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount        int64             `gorm:"not null" json:"amount"`
	PaymentType   PaymentType       `gorm:"not null;size:10" json:"payment_type"`
	Status        PaymentStatus     `gorm:"not null;default:'PENDING';size:10;index" json:"status"`
	ProofImageURL string            `gorm:"size:1000" json:"proof_image_url,omitempty"`
	PaidAt        *time.Time        `json:"paid_at,omitempty"`
	TargetType    PaymentTargetType `gorm:"not null;size:20;uniqueIndex:idx_payments_target" json:"target_type"`
	TargetID      uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_payments_target" json:"target_id"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// IsPaid reports whether the payment has been confirmed. Every PAID payment
// carries a PaidAt timestamp.
func (p *Payment) IsPaid() bool {
	return p.Status == PaymentPaid
}
