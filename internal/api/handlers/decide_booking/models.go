package decide_booking

// DecideBookingRequest HTTP request model. Approve false is a rejection;
// Reason only applies to rejections.
type DecideBookingRequest struct {
	Approve bool    `json:"approve"`
	Reason  *string `json:"reason,omitempty"`
}
