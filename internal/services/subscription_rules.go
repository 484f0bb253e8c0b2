package services

import (
	"time"

	"github.com/lostfound-vn/backend/internal/models"
)

// initialSubscriptionStatus derives the status a fresh subscription starts
// in. The free tier never waits for payment; paid tiers wait unless an admin
// is purchasing.
func initialSubscriptionStatus(pkg *models.ServicePackage, isAdmin bool) models.SubscriptionStatus {
	if pkg.IsFree() || isAdmin {
		return models.SubscriptionActive
	}
	return models.SubscriptionPending
}

// subscriptionEndDate computes the end date for a purchase. Upgrades keep
// the time already paid for: when the current subscription still runs, the
// new duration extends its end date rather than resetting from now.
func subscriptionEndDate(action models.SubscriptionAction, currentEnd *time.Time, now time.Time, durationDays int) time.Time {
	base := now
	if action == models.ActionUpgrade && currentEnd != nil && currentEnd.After(now) {
		base = *currentEnd
	}
	return base.AddDate(0, 0, durationDays)
}

// validateUpgrade enforces strict tier ordering: the target must outrank the
// current package.
func validateUpgrade(current, target models.PackageTier) error {
	if target.Rank() <= current.Rank() {
		return ErrInvalidTier
	}
	return nil
}

// validateRenew rejects renewal while the current subscription still runs.
func validateRenew(currentEnd time.Time, now time.Time) error {
	if !currentEnd.Before(now) {
		return ErrNotExpired
	}
	return nil
}

// paymentStatusFor mirrors the subscription status: immediately active
// subscriptions carry a settled payment for audit symmetry.
func paymentStatusFor(subStatus models.SubscriptionStatus) models.PaymentStatus {
	if subStatus == models.SubscriptionActive {
		return models.PaymentPaid
	}
	return models.PaymentPending
}

// paymentTypeFor distinguishes upgrade payments in the ledger.
func paymentTypeFor(action models.SubscriptionAction) models.PaymentType {
	if action == models.ActionUpgrade {
		return models.PaymentTypeUpgrade
	}
	return models.PaymentTypePackage
}
