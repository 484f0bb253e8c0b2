package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lostfound-vn/backend/internal/models"
)

type ActivePackage struct {
	SubscriptionID uuid.UUID            `json:"subscription_id"`
	PackageName    string               `json:"package_name"`
	PackageTier    models.PackageTier   `json:"package_tier"`
	PostID         uuid.UUID            `json:"post_id"`
	PostTitle      string               `json:"post_title"`
	StartDate      time.Time            `json:"start_date"`
	EndDate        time.Time            `json:"end_date"`
	DaysRemaining  int                  `json:"days_remaining"`
	PaymentStatus  models.PaymentStatus `json:"payment_status"`
}

type SubscriptionActivity struct {
	SubscriptionID uuid.UUID                 `json:"subscription_id"`
	PackageName    string                    `json:"package_name"`
	PackageTier    models.PackageTier        `json:"package_tier"`
	PostID         uuid.UUID                 `json:"post_id"`
	PostTitle      string                    `json:"post_title"`
	Action         models.SubscriptionAction `json:"action"`
	Status         models.SubscriptionStatus `json:"status"`
	PaymentStatus  models.PaymentStatus      `json:"payment_status"`
	CreatedAt      time.Time                 `json:"created_at"`
}

type UserPackageStats struct {
	TotalSubscriptions     int                               `json:"total_subscriptions"`
	ActiveSubscriptions    int                               `json:"active_subscriptions"`
	ExpiredSubscriptions   int                               `json:"expired_subscriptions"`
	CancelledSubscriptions int                               `json:"cancelled_subscriptions"`
	TotalSpent             int64                             `json:"total_spent"`
	PackagesByTier         map[models.PackageTier]int        `json:"packages_by_tier"`
	ActionStats            map[models.SubscriptionAction]int `json:"action_stats"`
	ActivePackages         []ActivePackage                   `json:"active_packages"`
	RecentActivity         []SubscriptionActivity            `json:"recent_activity"`
}

type BoostActivity struct {
	BoostID       uuid.UUID            `json:"boost_id"`
	PostID        uuid.UUID            `json:"post_id"`
	PostTitle     string               `json:"post_title"`
	StartDate     time.Time            `json:"start_date"`
	EndDate       time.Time            `json:"end_date"`
	DurationDays  int                  `json:"duration_days"`
	Price         int64                `json:"price"`
	IsActive      bool                 `json:"is_active"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time            `json:"created_at"`
}

type UserBoostStats struct {
	TotalBoosts     int             `json:"total_boosts"`
	ActiveBoosts    int             `json:"active_boosts"`
	CompletedBoosts int             `json:"completed_boosts"`
	TotalSpent      int64           `json:"total_spent"`
	DurationStats   DurationStats   `json:"duration_stats"`
	RecentActivity  []BoostActivity `json:"recent_activity"`
}

type DurationStats struct {
	LessThan7Days  int `json:"less_than_7_days"`
	From7To30Days  int `json:"from_7_to_30_days"`
	MoreThan30Days int `json:"more_than_30_days"`
}
