package response

import (
	"time"

	"pesapal_gateway/internal/domain/entities"
)

type PaymentOrderResponse struct {
	ID                string                  `json:"id"`
	OrderTrackingID   string                  `json:"order_tracking_id"`
	RedirectURL       string                  `json:"redirect_url,omitempty"`
	Amount            float64                 `json:"amount"`
	Currency          string                  `json:"currency"`
	Description       string                  `json:"description"`
	BillingAddress    entities.BillingAddress `json:"billing_address"`
	Status            string                  `json:"status"`
	StatusDescription string                  `json:"status_description,omitempty"`
	PaymentMethod     string                  `json:"payment_method,omitempty"`
	ConfirmationCode  string                  `json:"confirmation_code,omitempty"`
	RefundStatus      string                  `json:"refund_status,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`

	GatewayPayloadRaw string `json:"gateway_payload_raw,omitempty"`
}

func FromPaymentOrder(o entities.PaymentOrder) PaymentOrderResponse {
	return PaymentOrderResponse{
		ID:                o.ID,
		OrderTrackingID:   o.TrackingID,
		RedirectURL:       o.RedirectURL,
		Amount:            o.Amount,
		Currency:          o.Currency,
		Description:       o.Description,
		BillingAddress:    o.BillingAddress,
		Status:            string(o.Status),
		StatusDescription: o.StatusDescription,
		PaymentMethod:     o.PaymentMethod,
		ConfirmationCode:  o.ConfirmationCode,
		RefundStatus:      string(o.RefundStatus),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		GatewayPayloadRaw: string(o.GatewayPayloadRaw),
	}
}

type RefundResponse struct {
	Order   PaymentOrderResponse `json:"order"`
	Status  string               `json:"status"`
	Message string               `json:"message"`
}

func FromRefund(o entities.PaymentOrder, outcome entities.RefundOutcome) RefundResponse {
	return RefundResponse{Order: FromPaymentOrder(o), Status: outcome.Status, Message: outcome.Message}
}
