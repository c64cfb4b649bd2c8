package interfaces

//go:generate mockgen -source=payment_order_repository_interface.go -destination=mocks/payment_order_repository_interface.go -package=mock_interfaces

import (
	"context"
	"errors"
	"pesapal_gateway/internal/domain/entities"
)

var (
	ErrPaymentOrderAlreadyExists = errors.New("payment order already exists")
	ErrPaymentOrderNotStored     = errors.New("payment order not stored")
)

// IPaymentOrderRepository persists PaymentOrder entities.
//
// GetByID and GetByTrackingID return a zero PaymentOrder and a nil error when
// nothing matches. Update fails with ErrPaymentOrderNotStored when the order
// was never created.

type IPaymentOrderRepository interface {
	Create(ctx context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error)
	GetByID(ctx context.Context, id string) (entities.PaymentOrder, error)
	GetByTrackingID(ctx context.Context, trackingID string) (entities.PaymentOrder, error)
	Update(ctx context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error)
}
