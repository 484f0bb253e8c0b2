package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPackageTierRank(t *testing.T) {
	assert.Less(t, TierFree.Rank(), TierPriority.Rank())
	assert.Less(t, TierPriority.Rank(), TierExpress.Rank())
	assert.Less(t, TierExpress.Rank(), TierVIP.Rank())
	assert.Zero(t, PackageTier("GOLD").Rank())
}

func TestServicePackageIsFree(t *testing.T) {
	free := ServicePackage{ID: FreePackageID, Price: 0}
	paid := ServicePackage{ID: 2, Price: 49000}

	assert.True(t, free.IsFree())
	assert.False(t, paid.IsFree())
}

func TestPaymentIsPaid(t *testing.T) {
	now := time.Now()

	paid := Payment{Status: PaymentPaid, PaidAt: &now}
	pending := Payment{Status: PaymentPending}

	assert.True(t, paid.IsPaid())
	assert.False(t, pending.IsPaid())
}
