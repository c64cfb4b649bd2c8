package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"pesapal_gateway/internal/domain/entities"
	"pesapal_gateway/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PesaPal rejects order descriptions longer than this.
const maxOrderDescriptionLen = 100

var (
	ErrPaymentOrderNotFound      = errors.New("payment order not found")
	ErrInvalidPaymentOrderID     = errors.New("invalid payment order id")
	ErrInvalidOrderAmount        = errors.New("order amount must be greater than zero")
	ErrInvalidOrderDescription   = errors.New("invalid order description")
	ErrInvalidNotification       = errors.New("invalid payment notification")
	ErrPaymentOrderNotRefundable = errors.New("payment order is not refundable")
	ErrInvalidRefundRequest      = errors.New("invalid refund request")
	ErrRefundAlreadyRequested    = errors.New("refund already requested")
	ErrPaymentGatewayNotReady    = errors.New("payment gateway not configured")
)

// IPaymentOrderUseCase covers the order lifecycle: submit to the gateway,
// follow its status through polling or IPN calls, and request refunds.

type IPaymentOrderUseCase interface {
	SubmitOrder(ctx context.Context, sub entities.OrderSubmission) (entities.PaymentOrder, error)
	GetByID(ctx context.Context, id string) (entities.PaymentOrder, error)
	RefreshStatus(ctx context.Context, id string) (entities.PaymentOrder, error)
	HandleNotification(ctx context.Context, n entities.PaymentNotification) (entities.PaymentOrder, error)
	RequestRefund(ctx context.Context, id string, refund entities.RefundSubmission) (entities.PaymentOrder, entities.RefundOutcome, error)
}

type PaymentOrderUseCase struct {
	repo    interfaces.IPaymentOrderRepository
	gateway interfaces.IPaymentGateway
	now     func() time.Time
}

var _ IPaymentOrderUseCase = (*PaymentOrderUseCase)(nil)

func NewPaymentOrderUseCase(repo interfaces.IPaymentOrderRepository, gateway interfaces.IPaymentGateway) *PaymentOrderUseCase {
	return &PaymentOrderUseCase{repo: repo, gateway: gateway, now: func() time.Time { return time.Now().UTC() }}
}

func (u *PaymentOrderUseCase) SubmitOrder(ctx context.Context, sub entities.OrderSubmission) (entities.PaymentOrder, error) {
	log.Printf("[order][usecase] submit start merchant_reference=%q amount=%.2f", sub.MerchantReference, sub.Amount)
	if sub.Amount <= 0 {
		return entities.PaymentOrder{}, ErrInvalidOrderAmount
	}
	sub.Description = strings.TrimSpace(sub.Description)
	if sub.Description == "" || len(sub.Description) > maxOrderDescriptionLen {
		return entities.PaymentOrder{}, ErrInvalidOrderDescription
	}
	sub.MerchantReference = strings.TrimSpace(sub.MerchantReference)
	if sub.MerchantReference == "" {
		sub.MerchantReference = uuid.NewString()
	}
	sub.Currency = strings.ToUpper(strings.TrimSpace(sub.Currency))
	if u.gateway == nil {
		log.Printf("[order][usecase] gateway not configured merchant_reference=%s", sub.MerchantReference)
		return entities.PaymentOrder{}, ErrPaymentGatewayNotReady
	}

	existing, err := u.repo.GetByID(ctx, sub.MerchantReference)
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	if existing.ID != "" {
		log.Printf("[order][usecase] duplicate merchant_reference=%s", sub.MerchantReference)
		return entities.PaymentOrder{}, interfaces.ErrPaymentOrderAlreadyExists
	}

	gw, err := u.gateway.SubmitOrder(ctx, sub)
	if err != nil {
		log.Printf("[order][usecase] gateway submit failed merchant_reference=%s err=%v", sub.MerchantReference, err)
		return entities.PaymentOrder{}, err
	}
	log.Printf("[order][usecase] gateway accepted merchant_reference=%s tracking_id=%s", sub.MerchantReference, gw.TrackingID)

	now := u.now()
	o := entities.PaymentOrder{
		ID:                sub.MerchantReference,
		TrackingID:        gw.TrackingID,
		Amount:            sub.Amount,
		Currency:          sub.Currency,
		Description:       sub.Description,
		CallbackURL:       sub.CallbackURL,
		RedirectURL:       gw.RedirectURL,
		BillingAddress:    sub.BillingAddress,
		Status:            entities.PaymentStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
		GatewayPayloadRaw: gw.Raw,
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] repository create failed order_id=%s err=%v", o.ID, err)
		return entities.PaymentOrder{}, err
	}
	log.Printf("[order][usecase] submit success order_id=%s tracking_id=%s", created.ID, created.TrackingID)
	return created, nil
}

func (u *PaymentOrderUseCase) GetByID(ctx context.Context, id string) (entities.PaymentOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentOrder{}, ErrInvalidPaymentOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	if o.ID == "" {
		return entities.PaymentOrder{}, ErrPaymentOrderNotFound
	}
	return o, nil
}

// RefreshStatus polls the gateway and stores the latest status.
func (u *PaymentOrderUseCase) RefreshStatus(ctx context.Context, id string) (entities.PaymentOrder, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	return u.syncStatus(ctx, o)
}

// HandleNotification processes an IPN call by refreshing the order the
// gateway is notifying about.
func (u *PaymentOrderUseCase) HandleNotification(ctx context.Context, n entities.PaymentNotification) (entities.PaymentOrder, error) {
	trackingID := strings.TrimSpace(n.TrackingID)
	log.Printf("[order][usecase] notification received tracking_id=%s type=%s merchant_reference=%s", trackingID, n.NotificationType, n.MerchantReference)
	if trackingID == "" {
		return entities.PaymentOrder{}, ErrInvalidNotification
	}

	o, err := u.repo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	if o.ID == "" {
		log.Printf("[order][usecase] notification for unknown order tracking_id=%s", trackingID)
		return entities.PaymentOrder{}, ErrPaymentOrderNotFound
	}
	if ref := strings.TrimSpace(n.MerchantReference); ref != "" && ref != o.ID {
		log.Printf("[order][usecase] notification reference mismatch tracking_id=%s got=%s stored=%s", trackingID, ref, o.ID)
		return entities.PaymentOrder{}, ErrInvalidNotification
	}
	return u.syncStatus(ctx, o)
}

func (u *PaymentOrderUseCase) syncStatus(ctx context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
	if u.gateway == nil {
		return entities.PaymentOrder{}, ErrPaymentGatewayNotReady
	}
	st, err := u.gateway.GetTransactionStatus(ctx, o.TrackingID)
	if err != nil {
		log.Printf("[order][usecase] status poll failed order_id=%s tracking_id=%s err=%v", o.ID, o.TrackingID, err)
		return entities.PaymentOrder{}, err
	}

	previous := o.Status
	o.Status = entities.PaymentStatusFromDescription(st.Description)
	o.StatusDescription = st.Description
	if st.PaymentMethod != "" {
		o.PaymentMethod = st.PaymentMethod
	}
	if st.PaymentAccount != "" {
		o.PaymentAccount = st.PaymentAccount
	}
	if st.ConfirmationCode != "" {
		o.ConfirmationCode = st.ConfirmationCode
	}
	if len(st.Raw) > 0 {
		o.GatewayPayloadRaw = st.Raw
	}
	o.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] repository update failed order_id=%s err=%v", o.ID, err)
		return entities.PaymentOrder{}, err
	}
	log.Printf("[order][usecase] status synced order_id=%s from=%s to=%s", updated.ID, previous, updated.Status)
	return updated, nil
}

// RequestRefund refunds a completed order. A zero amount refunds the whole
// order amount.
func (u *PaymentOrderUseCase) RequestRefund(ctx context.Context, id string, refund entities.RefundSubmission) (entities.PaymentOrder, entities.RefundOutcome, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentOrder{}, entities.RefundOutcome{}, err
	}
	if o.Status != entities.PaymentStatusCompleted || o.ConfirmationCode == "" {
		log.Printf("[order][usecase] refund refused order_id=%s status=%s", o.ID, o.Status)
		return entities.PaymentOrder{}, entities.RefundOutcome{}, ErrPaymentOrderNotRefundable
	}
	if o.RefundStatus == entities.RefundStatusRequested {
		return entities.PaymentOrder{}, entities.RefundOutcome{}, ErrRefundAlreadyRequested
	}

	refund.Username = strings.TrimSpace(refund.Username)
	refund.Remarks = strings.TrimSpace(refund.Remarks)
	if refund.Amount == 0 {
		refund.Amount = o.Amount
	}
	if refund.Amount < 0 || refund.Amount > o.Amount {
		return entities.PaymentOrder{}, entities.RefundOutcome{}, fmt.Errorf("%w: amount %.2f outside 0..%.2f", ErrInvalidRefundRequest, refund.Amount, o.Amount)
	}
	if refund.Username == "" || refund.Remarks == "" {
		return entities.PaymentOrder{}, entities.RefundOutcome{}, fmt.Errorf("%w: username and remarks are required", ErrInvalidRefundRequest)
	}
	if u.gateway == nil {
		return entities.PaymentOrder{}, entities.RefundOutcome{}, ErrPaymentGatewayNotReady
	}

	outcome, err := u.gateway.RequestRefund(ctx, o.ConfirmationCode, refund)
	if err != nil {
		log.Printf("[order][usecase] refund failed order_id=%s err=%v", o.ID, err)
		return entities.PaymentOrder{}, entities.RefundOutcome{}, err
	}

	o.RefundStatus = entities.RefundStatusRequested
	o.UpdatedAt = u.now()
	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.PaymentOrder{}, entities.RefundOutcome{}, err
	}
	log.Printf("[order][usecase] refund requested order_id=%s amount=%.2f status=%s", updated.ID, refund.Amount, outcome.Status)
	return updated, outcome, nil
}
