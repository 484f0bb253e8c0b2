package models

type PostType string

const (
	PostTypeLost  PostType = "LOST"
	PostTypeFound PostType = "FOUND"
)

type PostStatus string

const (
	PostStatusPending  PostStatus = "PENDING"
	PostStatusApproved PostStatus = "APPROVED"
	PostStatusRejected PostStatus = "REJECTED"
	PostStatusResolved PostStatus = "RESOLVED"
)

// PackageTier orders visibility packages. Rank grows with visibility.
type PackageTier string

const (
	TierFree     PackageTier = "FREE"
	TierPriority PackageTier = "PRIORITY"
	TierExpress  PackageTier = "EXPRESS"
	TierVIP      PackageTier = "VIP"
)

var tierRanks = map[PackageTier]int{
	TierFree:     1,
	TierPriority: 2,
	TierExpress:  3,
	TierVIP:      4,
}

// Rank returns the ordinal of the tier (FREE=1 .. VIP=4), 0 for unknown.
func (t PackageTier) Rank() int {
	return tierRanks[t]
}

type SubscriptionAction string

const (
	ActionNew     SubscriptionAction = "NEW"
	ActionRenew   SubscriptionAction = "RENEW"
	ActionUpgrade SubscriptionAction = "UPGRADE"
)

type SubscriptionStatus string

const (
	SubscriptionPending   SubscriptionStatus = "PENDING"
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionExpired   SubscriptionStatus = "EXPIRED"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
)

type PaymentType string

const (
	PaymentTypePackage PaymentType = "PACKAGE"
	PaymentTypeUpgrade PaymentType = "UPGRADE"
	PaymentTypeBoost   PaymentType = "BOOST"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

// PaymentTargetType tags which entity a payment belongs to. Exactly one
// target per payment; the (TargetType, TargetID) pair replaces a pair of
// nullable foreign keys.
type PaymentTargetType string

const (
	TargetSubscription PaymentTargetType = "subscription"
	TargetBoost        PaymentTargetType = "boost"
)
