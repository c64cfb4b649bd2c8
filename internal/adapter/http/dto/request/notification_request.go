package request

import (
	"strings"

	"pesapal_gateway/internal/domain/entities"
)

type RegisterIPNRequest struct {
	URL              string `json:"url" binding:"required"`
	NotificationType string `json:"ipn_notification_type"`
}

// IPNCallback is what PesaPal sends to a registered IPN url: query
// parameters for GET endpoints, a JSON body for POST endpoints.
type IPNCallback struct {
	OrderTrackingID        string `json:"OrderTrackingId" form:"OrderTrackingId"`
	OrderNotificationType  string `json:"OrderNotificationType" form:"OrderNotificationType"`
	OrderMerchantReference string `json:"OrderMerchantReference" form:"OrderMerchantReference"`
}

func (r IPNCallback) ToNotification() entities.PaymentNotification {
	return entities.PaymentNotification{
		TrackingID:        strings.TrimSpace(r.OrderTrackingID),
		NotificationType:  strings.TrimSpace(r.OrderNotificationType),
		MerchantReference: strings.TrimSpace(r.OrderMerchantReference),
	}
}
