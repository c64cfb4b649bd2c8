package interfaces

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface.go -package=mock_interfaces

import (
	"context"
	"errors"
	"pesapal_gateway/internal/domain/entities"
)

var (
	// ErrGatewayRejected wraps every failure reported by the payment gateway,
	// whether it was a transport error or an error embedded in the response.
	ErrGatewayRejected = errors.New("payment gateway rejected the request")
	// ErrNoNotificationEndpoint means no IPN endpoint is registered, so an
	// order cannot be given a notification id.
	ErrNoNotificationEndpoint = errors.New("no notification endpoint registered")
)

// IPaymentGateway abstracts the hosted payment provider (PesaPal).
//
// GetTransactionStatus returns a nil error for any description the gateway
// reports, completed or not; only failed calls are errors.
type IPaymentGateway interface {
	SubmitOrder(ctx context.Context, order entities.OrderSubmission) (entities.GatewayOrder, error)
	GetTransactionStatus(ctx context.Context, trackingID string) (entities.GatewayTransactionStatus, error)
	RequestRefund(ctx context.Context, confirmationCode string, refund entities.RefundSubmission) (entities.RefundOutcome, error)
	RegisterIPN(ctx context.Context, url, notificationType string) (entities.NotificationEndpoint, error)
	ListIPNs(ctx context.Context) ([]entities.NotificationEndpoint, error)
}
