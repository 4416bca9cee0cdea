package propose_booking

import (
	"github.com/linkup-team/linkup-gateway/internal/domain"
	"github.com/linkup-team/linkup-gateway/internal/service/bookings/models"
)

// ProposeBookingRequest HTTP request model
type ProposeBookingRequest struct {
	TargetUserID  int64  `json:"targetUserId"`
	TargetRole    string `json:"targetRole"`
	Note          string `json:"note"`
	PreferredTime string `json:"preferredTime"`
}

// ToServiceRequest converts the HTTP request into the service request
func (r *ProposeBookingRequest) ToServiceRequest() *models.ProposeBookingRequest {
	return &models.ProposeBookingRequest{
		TargetUserID:  r.TargetUserID,
		TargetRole:    domain.Role(r.TargetRole),
		Note:          r.Note,
		PreferredTime: r.PreferredTime,
	}
}

// ProposeBookingResponse HTTP response model
type ProposeBookingResponse struct {
	Message string `json:"message"`
}
