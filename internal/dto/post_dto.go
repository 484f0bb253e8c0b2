package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lostfound-vn/backend/internal/models"
)

type CreatePostRequest struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Location        string          `json:"location"`
	Category        string          `json:"category"`
	PostType        models.PostType `json:"post_type"`
	PackageID       *uint           `json:"package_id"`
	PaymentProofURL string          `json:"payment_proof_url"`
}

// ServicePackageRequest covers subscription upgrade and renew purchases.
type ServicePackageRequest struct {
	PackageID       uint   `json:"package_id"`
	PaymentProofURL string `json:"payment_proof_url"`
}

type BoostRequest struct {
	DurationDays int    `json:"duration_days"`
	Price        *int64 `json:"price"`
}

type ListQuery struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	Search   string `query:"search"`
	Location string `query:"location"`
	Category string `query:"category"`
}

// RankedPost is the public listing projection: the post plus its resolved
// visibility tier and read-time boost flag.
type RankedPost struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Category    string          `json:"category"`
	PostType    models.PostType `json:"post_type"`
	ViewCount   int             `json:"view_count"`
	IsBoosted   bool            `json:"is_boosted"`
	BoostUntil  *time.Time      `json:"boost_until,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`

	PackageName string             `json:"package_name,omitempty"`
	PackageTier models.PackageTier `json:"package_tier,omitempty"`
	TierRank    int                `json:"-"`
}

type PostListResponse struct {
	Items []RankedPost   `json:"items"`
	Meta  PaginationMeta `json:"meta"`
}
