package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// PaymentStatus is the local view of the gateway's payment_status_description.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusReversed  PaymentStatus = "reversed"
	PaymentStatusInvalid   PaymentStatus = "invalid"
)

// PaymentStatusFromDescription maps a gateway description (any case) to a
// PaymentStatus. Unknown descriptions stay pending.
func PaymentStatusFromDescription(desc string) PaymentStatus {
	switch strings.ToUpper(strings.TrimSpace(desc)) {
	case "COMPLETED":
		return PaymentStatusCompleted
	case "FAILED":
		return PaymentStatusFailed
	case "REVERSED":
		return PaymentStatusReversed
	case "INVALID":
		return PaymentStatusInvalid
	default:
		return PaymentStatusPending
	}
}

// IsFinal reports whether the gateway will not move the payment any further.
func (s PaymentStatus) IsFinal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed || s == PaymentStatusReversed || s == PaymentStatusInvalid
}

type RefundStatus string

const (
	RefundStatusNone      RefundStatus = ""
	RefundStatusRequested RefundStatus = "requested"
)

type BillingAddress struct {
	EmailAddress string `json:"email_address,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	FirstName    string `json:"first_name,omitempty"`
	MiddleName   string `json:"middle_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Line1        string `json:"line_1,omitempty"`
	Line2        string `json:"line_2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	ZipCode      string `json:"zip_code,omitempty"`
}

// PaymentOrder is an order submitted to PesaPal.
//
// Storage model:
//   - PK: id (the merchant reference sent to the gateway)
//   - GSI (order_tracking_id-index): order_tracking_id
//
// GatewayPayloadRaw keeps the last gateway response for audit.
type PaymentOrder struct {
	ID                string         `json:"id"`
	TrackingID        string         `json:"order_tracking_id"`
	Amount            float64        `json:"amount"`
	Currency          string         `json:"currency"`
	Description       string         `json:"description"`
	CallbackURL       string         `json:"callback_url,omitempty"`
	RedirectURL       string         `json:"redirect_url,omitempty"`
	BillingAddress    BillingAddress `json:"billing_address"`
	Status            PaymentStatus  `json:"status"`
	StatusDescription string         `json:"status_description,omitempty"`
	PaymentMethod     string         `json:"payment_method,omitempty"`
	PaymentAccount    string         `json:"payment_account,omitempty"`
	ConfirmationCode  string         `json:"confirmation_code,omitempty"`
	RefundStatus      RefundStatus   `json:"refund_status,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`

	GatewayPayloadRaw json.RawMessage `json:"gateway_payload_raw,omitempty"`
}

// OrderSubmission is what a caller asks to charge.
type OrderSubmission struct {
	MerchantReference string
	Amount            float64
	Currency          string
	Description       string
	CallbackURL       string
	BillingAddress    BillingAddress
}

// GatewayOrder is the gateway's answer to a submitted order.
type GatewayOrder struct {
	TrackingID        string
	MerchantReference string
	RedirectURL       string
	Raw               json.RawMessage
}

type GatewayTransactionStatus struct {
	Description      string
	PaymentMethod    string
	PaymentAccount   string
	ConfirmationCode string
	Amount           float64
	Currency         string
	StatusCode       int
	Raw              json.RawMessage
}

type RefundSubmission struct {
	Amount   float64
	Username string
	Remarks  string
}

type RefundOutcome struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PaymentNotification is an IPN call received from the gateway.
type PaymentNotification struct {
	TrackingID        string
	NotificationType  string
	MerchantReference string
}
