package services

import (
	"github.com/lostfound-vn/backend/internal/dto"
	"github.com/lostfound-vn/backend/internal/models"
)

// validateModeration checks the post state machine for an admin action.
// Re-applying a terminal decision is an error, not a no-op: a double approve
// or double reject means the admin is acting on stale state.
func validateModeration(current models.PostStatus, action dto.ModerateAction) error {
	switch action {
	case dto.ModerateApprove:
		if current == models.PostStatusApproved {
			return ErrAlreadyApproved
		}
	case dto.ModerateReject:
		if current == models.PostStatusRejected {
			return ErrAlreadyRejected
		}
	case dto.ModerateConfirmPayment:
		// Validity depends on the pending subscription/payment pair, checked
		// against the database inside the transaction.
	default:
		return ErrInvalidAction
	}
	return nil
}
