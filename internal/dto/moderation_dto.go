package dto

type ModerateAction string

const (
	ModerateApprove        ModerateAction = "APPROVE"
	ModerateReject         ModerateAction = "REJECT"
	ModerateConfirmPayment ModerateAction = "CONFIRM_PAYMENT"
)

type ModeratePostRequest struct {
	Action ModerateAction `json:"action"`
	Reason string         `json:"reason"`
}
