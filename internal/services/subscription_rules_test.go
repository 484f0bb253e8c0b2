package services

import (
	"testing"
	"time"

	"github.com/lostfound-vn/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialSubscriptionStatus(t *testing.T) {
	free := &models.ServicePackage{ID: models.FreePackageID, Tier: models.TierFree}
	paid := &models.ServicePackage{ID: 3, Price: 99000, Tier: models.TierExpress}

	assert.Equal(t, models.SubscriptionActive, initialSubscriptionStatus(free, false))
	assert.Equal(t, models.SubscriptionActive, initialSubscriptionStatus(free, true))
	assert.Equal(t, models.SubscriptionPending, initialSubscriptionStatus(paid, false))
	assert.Equal(t, models.SubscriptionActive, initialSubscriptionStatus(paid, true))
}

func TestSubscriptionEndDate(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	futureEnd := now.AddDate(0, 0, 5)
	pastEnd := now.AddDate(0, 0, -5)

	tests := []struct {
		name       string
		action     models.SubscriptionAction
		currentEnd *time.Time
		duration   int
		expected   time.Time
	}{
		{
			name:     "new subscription runs from now",
			action:   models.ActionNew,
			duration: 30,
			expected: now.AddDate(0, 0, 30),
		},
		{
			name:       "renew after expiry runs from now",
			action:     models.ActionRenew,
			currentEnd: &pastEnd,
			duration:   30,
			expected:   now.AddDate(0, 0, 30),
		},
		{
			name:       "upgrade extends a running subscription",
			action:     models.ActionUpgrade,
			currentEnd: &futureEnd,
			duration:   60,
			expected:   futureEnd.AddDate(0, 0, 60),
		},
		{
			name:       "upgrade of a lapsed subscription runs from now",
			action:     models.ActionUpgrade,
			currentEnd: &pastEnd,
			duration:   60,
			expected:   now.AddDate(0, 0, 60),
		},
		{
			name:     "upgrade without a current end runs from now",
			action:   models.ActionUpgrade,
			duration: 60,
			expected: now.AddDate(0, 0, 60),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := subscriptionEndDate(tt.action, tt.currentEnd, now, tt.duration)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestValidateUpgrade(t *testing.T) {
	tiers := []models.PackageTier{models.TierFree, models.TierPriority, models.TierExpress, models.TierVIP}

	for i, current := range tiers {
		for j, target := range tiers {
			err := validateUpgrade(current, target)
			if j > i {
				assert.NoError(t, err, "%s -> %s should be a valid upgrade", current, target)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTier, "%s -> %s should be rejected", current, target)
			}
		}
	}
}

func TestValidateRenew(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, validateRenew(now.Add(-time.Second), now))
	assert.ErrorIs(t, validateRenew(now, now), ErrNotExpired)
	assert.ErrorIs(t, validateRenew(now.AddDate(0, 0, 3), now), ErrNotExpired)
}

func TestPaymentStatusFor(t *testing.T) {
	assert.Equal(t, models.PaymentPaid, paymentStatusFor(models.SubscriptionActive))
	assert.Equal(t, models.PaymentPending, paymentStatusFor(models.SubscriptionPending))
}

func TestPaymentTypeFor(t *testing.T) {
	assert.Equal(t, models.PaymentTypeUpgrade, paymentTypeFor(models.ActionUpgrade))
	assert.Equal(t, models.PaymentTypePackage, paymentTypeFor(models.ActionNew))
	assert.Equal(t, models.PaymentTypePackage, paymentTypeFor(models.ActionRenew))
}
