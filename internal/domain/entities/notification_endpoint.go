package entities

// NotificationEndpoint is an IPN url registered with the gateway. Its ID is
// the notification_id sent with each order.
type NotificationEndpoint struct {
	ID               string `json:"ipn_id"`
	URL              string `json:"url"`
	NotificationType string `json:"notification_type"`
	CreatedDate      string `json:"created_date,omitempty"`
	Status           string `json:"status,omitempty"`
}
