package response

import "pesapal_gateway/internal/domain/entities"

type NotificationEndpointResponse struct {
	IPNID            string `json:"ipn_id"`
	URL              string `json:"url"`
	NotificationType string `json:"ipn_notification_type"`
	CreatedDate      string `json:"created_date,omitempty"`
	Status           string `json:"status,omitempty"`
}

func FromNotificationEndpoint(ep entities.NotificationEndpoint) NotificationEndpointResponse {
	return NotificationEndpointResponse{
		IPNID:            ep.ID,
		URL:              ep.URL,
		NotificationType: ep.NotificationType,
		CreatedDate:      ep.CreatedDate,
		Status:           ep.Status,
	}
}

func FromNotificationEndpoints(eps []entities.NotificationEndpoint) []NotificationEndpointResponse {
	out := make([]NotificationEndpointResponse, 0, len(eps))
	for _, ep := range eps {
		out = append(out, FromNotificationEndpoint(ep))
	}
	return out
}

// IPNAck is the body PesaPal expects back from an IPN url. Status is 200 when
// the notification was processed and 500 otherwise.
type IPNAck struct {
	OrderNotificationType  string `json:"orderNotificationType"`
	OrderTrackingID        string `json:"orderTrackingId"`
	OrderMerchantReference string `json:"orderMerchantReference"`
	Status                 int    `json:"status"`
}
