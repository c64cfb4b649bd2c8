package request

import (
	"strings"

	"pesapal_gateway/internal/domain/entities"
)

type BillingAddressRequest struct {
	EmailAddress string `json:"email_address"`
	PhoneNumber  string `json:"phone_number"`
	FirstName    string `json:"first_name"`
	MiddleName   string `json:"middle_name"`
	LastName     string `json:"last_name"`
	Line1        string `json:"line_1"`
	Line2        string `json:"line_2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	ZipCode      string `json:"zip_code"`
}

// PaymentOrderRequest is the payload for submitting an order. When id is
// empty a merchant reference is generated.
type PaymentOrderRequest struct {
	ID             string                `json:"id"`
	Amount         float64               `json:"amount" binding:"required,gt=0"`
	Currency       string                `json:"currency"`
	Description    string                `json:"description" binding:"required,max=100"`
	CallbackURL    string                `json:"callback_url"`
	BillingAddress BillingAddressRequest `json:"billing_address"`
}

func (r PaymentOrderRequest) ToSubmission() entities.OrderSubmission {
	b := r.BillingAddress
	return entities.OrderSubmission{
		MerchantReference: strings.TrimSpace(r.ID),
		Amount:            r.Amount,
		Currency:          strings.TrimSpace(r.Currency),
		Description:       strings.TrimSpace(r.Description),
		CallbackURL:       strings.TrimSpace(r.CallbackURL),
		BillingAddress: entities.BillingAddress{
			EmailAddress: strings.TrimSpace(b.EmailAddress),
			PhoneNumber:  strings.TrimSpace(b.PhoneNumber),
			FirstName:    b.FirstName,
			MiddleName:   b.MiddleName,
			LastName:     b.LastName,
			Line1:        b.Line1,
			Line2:        b.Line2,
			City:         b.City,
			State:        b.State,
			PostalCode:   b.PostalCode,
			ZipCode:      b.ZipCode,
		},
	}
}

// RefundRequest asks for a refund of a completed order. An amount of zero
// refunds the full order amount.
type RefundRequest struct {
	Amount   float64 `json:"amount" binding:"gte=0"`
	Username string  `json:"username" binding:"required"`
	Remarks  string  `json:"remarks" binding:"required"`
}

func (r RefundRequest) ToSubmission() entities.RefundSubmission {
	return entities.RefundSubmission{
		Amount:   r.Amount,
		Username: strings.TrimSpace(r.Username),
		Remarks:  strings.TrimSpace(r.Remarks),
	}
}
