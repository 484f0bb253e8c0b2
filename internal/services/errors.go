package services

import "errors"

// Validation and state-machine errors surfaced to callers. Handlers map
// these to HTTP statuses; anything else is an internal error.
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrPackageNotFound = errors.New("service package not found")

	ErrForbidden = errors.New("permission denied")

	ErrWrongPostType     = errors.New("only lost posts can purchase visibility packages")
	ErrInvalidPackage    = errors.New("invalid service package")
	ErrAlreadySubscribed = errors.New("post already has a subscription")
	ErrNoSubscription    = errors.New("post has no subscription to upgrade")
	ErrInvalidTier       = errors.New("target package tier must be higher than the current one")
	ErrNotExpired        = errors.New("current subscription has not expired yet")

	ErrAlreadyApproved  = errors.New("post is already approved")
	ErrAlreadyRejected  = errors.New("post is already rejected")
	ErrNoPendingPayment = errors.New("no subscription awaiting payment confirmation")
	ErrInvalidAction    = errors.New("invalid action")

	ErrLockBusy = errors.New("operation already in progress")
)
