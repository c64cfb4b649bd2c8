package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"pesapal_gateway/internal/domain/entities"
	"pesapal_gateway/internal/usecase/interfaces"
	"pesapal_gateway/pkg/pesapal"

	"github.com/google/uuid"
)

var ErrMissingPesapalCredentials = errors.New("missing PESAPAL_CONSUMER_KEY or PESAPAL_CONSUMER_SECRET")
var ErrPesapalGatewayNotConfigured = errors.New("pesapal gateway not configured")

// PesapalGateway adapts pesapal.Client to interfaces.IPaymentGateway.
//
// In mock mode no request leaves the process: orders get synthetic tracking
// ids and every status poll answers COMPLETED.
type PesapalGateway struct {
	client   *pesapal.Client
	mockMode bool

	mu       sync.Mutex
	mockIPNs []entities.NotificationEndpoint
}

var _ interfaces.IPaymentGateway = (*PesapalGateway)(nil)

// NewPesapalGateway builds the adapter. Mock mode is on when mockMode is set
// or the PAYMENT_GATEWAY_MOCK / PESAPAL_MOCK env vars say so.
func NewPesapalGateway(cfg pesapal.Config, mockMode bool) (*PesapalGateway, error) {
	if mockMode || isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &PesapalGateway{mockMode: true}, nil
	}

	if strings.TrimSpace(cfg.ConsumerKey) == "" || strings.TrimSpace(cfg.ConsumerSecret) == "" {
		log.Printf("[payment][gateway] missing pesapal credentials")
		return nil, ErrMissingPesapalCredentials
	}

	client := pesapal.NewClient(cfg)
	log.Printf("[payment][gateway] PesaPal client initialized base_url=%s", client.BaseURL())
	return &PesapalGateway{client: client}, nil
}

// Bootstrap registers the configured IPN url and loads the endpoint list.
func (g *PesapalGateway) Bootstrap(ctx context.Context) error {
	if g.mockMode {
		return nil
	}
	if g.client == nil {
		return ErrPesapalGatewayNotConfigured
	}
	if res := g.client.Run(ctx); !res.Success {
		log.Printf("[payment][gateway] bootstrap failed err=%s", res.Err)
		return fmt.Errorf("%w: %s", interfaces.ErrGatewayRejected, res.Err)
	}
	log.Printf("[payment][gateway] bootstrap done ipn_count=%d", len(g.client.IPNs()))
	return nil
}

func (g *PesapalGateway) SubmitOrder(ctx context.Context, order entities.OrderSubmission) (entities.GatewayOrder, error) {
	if g.mockMode {
		return g.mockSubmitOrder(order)
	}
	if g.client == nil {
		return entities.GatewayOrder{}, ErrPesapalGatewayNotConfigured
	}

	// The client picks the first cached endpoint; load the list once when
	// nothing was registered through this process.
	if len(g.client.IPNs()) == 0 {
		if res := g.client.ListIPNs(ctx); !res.Success {
			log.Printf("[payment][gateway] ipn list before submit failed err=%s", res.Err)
		}
	}

	log.Printf("[payment][gateway] submit start merchant_reference=%s amount=%.2f", order.MerchantReference, order.Amount)
	res := g.client.SubmitOrder(ctx, toPaymentDetails(order), order.MerchantReference, order.Description)
	if !res.Success {
		log.Printf("[payment][gateway] submit failed merchant_reference=%s err=%s", order.MerchantReference, res.Err)
		if res.Err == pesapal.MsgNoRegisteredIPN {
			return entities.GatewayOrder{}, fmt.Errorf("%w: %s", interfaces.ErrNoNotificationEndpoint, res.Err)
		}
		return entities.GatewayOrder{}, fmt.Errorf("%w: %s", interfaces.ErrGatewayRejected, res.Err)
	}

	raw, err := json.Marshal(res.OrderResponse)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return entities.GatewayOrder{}, err
	}
	log.Printf("[payment][gateway] submit success merchant_reference=%s tracking_id=%s", order.MerchantReference, res.OrderResponse.OrderTrackingID)
	return entities.GatewayOrder{
		TrackingID:        res.OrderResponse.OrderTrackingID,
		MerchantReference: res.OrderResponse.MerchantReference,
		RedirectURL:       res.OrderResponse.RedirectURL,
		Raw:               raw,
	}, nil
}

func (g *PesapalGateway) GetTransactionStatus(ctx context.Context, trackingID string) (entities.GatewayTransactionStatus, error) {
	if g.mockMode {
		return g.mockTransactionStatus(trackingID)
	}
	if g.client == nil {
		return entities.GatewayTransactionStatus{}, ErrPesapalGatewayNotConfigured
	}

	res := g.client.GetTransactionStatus(ctx, trackingID)
	if res.Err != "" || res.Response == nil {
		log.Printf("[payment][gateway] status failed tracking_id=%s err=%s", trackingID, res.Err)
		return entities.GatewayTransactionStatus{}, fmt.Errorf("%w: %s", interfaces.ErrGatewayRejected, res.Err)
	}

	raw, err := json.Marshal(res.Response)
	if err != nil {
		return entities.GatewayTransactionStatus{}, err
	}
	st := res.Response
	return entities.GatewayTransactionStatus{
		Description:      st.PaymentStatusDescription,
		PaymentMethod:    st.PaymentMethod,
		PaymentAccount:   st.PaymentAccount,
		ConfirmationCode: st.ConfirmationCode,
		Amount:           st.Amount,
		Currency:         st.Currency,
		StatusCode:       st.StatusCode,
		Raw:              raw,
	}, nil
}

func (g *PesapalGateway) RequestRefund(ctx context.Context, confirmationCode string, refund entities.RefundSubmission) (entities.RefundOutcome, error) {
	if g.mockMode {
		log.Printf("[payment][gateway] mock refund confirmation_code=%s amount=%.2f", confirmationCode, refund.Amount)
		return entities.RefundOutcome{Status: "200", Message: "Refund request successfully"}, nil
	}
	if g.client == nil {
		return entities.RefundOutcome{}, ErrPesapalGatewayNotConfigured
	}

	res := g.client.RequestRefund(ctx, pesapal.RefundRequest{
		ConfirmationCode: confirmationCode,
		Amount:           strconv.FormatFloat(refund.Amount, 'f', 2, 64),
		Username:         refund.Username,
		Remarks:          refund.Remarks,
	})
	if !res.Success {
		log.Printf("[payment][gateway] refund failed confirmation_code=%s err=%s", confirmationCode, res.Err)
		return entities.RefundOutcome{}, fmt.Errorf("%w: %s", interfaces.ErrGatewayRejected, res.Err)
	}
	return entities.RefundOutcome{Status: res.RefundResponse.Status, Message: res.RefundResponse.Message}, nil
}

func (g *PesapalGateway) RegisterIPN(ctx context.Context, url, notificationType string) (entities.NotificationEndpoint, error) {
	if g.mockMode {
		ep := entities.NotificationEndpoint{
			ID:               uuid.NewString(),
			URL:              url,
			NotificationType: notificationType,
			CreatedDate:      time.Now().UTC().Format(time.RFC3339),
			Status:           "200",
		}
		g.mu.Lock()
		g.mockIPNs = append(g.mockIPNs, ep)
		g.mu.Unlock()
		return ep, nil
	}
	if g.client == nil {
		return entities.NotificationEndpoint{}, ErrPesapalGatewayNotConfigured
	}

	res := g.client.RegisterIPN(ctx, url, notificationType)
	if !res.Success {
		return entities.NotificationEndpoint{}, fmt.Errorf("%w: %s", interfaces.ErrGatewayRejected, res.Err)
	}
	ep := fromIPNEndpoint(*res.Endpoint)
	if ep.NotificationType == "" {
		ep.NotificationType = strings.ToUpper(notificationType)
	}
	return ep, nil
}

func (g *PesapalGateway) ListIPNs(ctx context.Context) ([]entities.NotificationEndpoint, error) {
	if g.mockMode {
		g.mu.Lock()
		defer g.mu.Unlock()
		out := make([]entities.NotificationEndpoint, len(g.mockIPNs))
		copy(out, g.mockIPNs)
		return out, nil
	}
	if g.client == nil {
		return nil, ErrPesapalGatewayNotConfigured
	}

	res := g.client.ListIPNs(ctx)
	if !res.Success {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrGatewayRejected, res.Err)
	}
	out := make([]entities.NotificationEndpoint, 0, len(res.Endpoints))
	for _, ep := range res.Endpoints {
		out = append(out, fromIPNEndpoint(ep))
	}
	return out, nil
}

func (g *PesapalGateway) mockSubmitOrder(order entities.OrderSubmission) (entities.GatewayOrder, error) {
	trackingID := uuid.NewString()
	log.Printf("[payment][gateway] mock submit merchant_reference=%s tracking_id=%s", order.MerchantReference, trackingID)
	resp := pesapal.OrderResponse{
		OrderTrackingID:   trackingID,
		MerchantReference: order.MerchantReference,
		RedirectURL:       pesapal.SandboxBaseURL + "/iframe?OrderTrackingId=" + trackingID,
		Status:            "200",
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return entities.GatewayOrder{}, err
	}
	return entities.GatewayOrder{
		TrackingID:        trackingID,
		MerchantReference: order.MerchantReference,
		RedirectURL:       resp.RedirectURL,
		Raw:               raw,
	}, nil
}

func (g *PesapalGateway) mockTransactionStatus(trackingID string) (entities.GatewayTransactionStatus, error) {
	code := strings.ToUpper(strings.ReplaceAll(trackingID, "-", ""))
	if len(code) > 8 {
		code = code[:8]
	}
	st := pesapal.TransactionStatus{
		PaymentMethod:            "MockPay",
		CreatedDate:              time.Now().UTC().Format(time.RFC3339),
		ConfirmationCode:         "MOCK-" + code,
		PaymentStatusDescription: "COMPLETED",
		StatusCode:               1,
		Status:                   "200",
	}
	raw, err := json.Marshal(st)
	if err != nil {
		return entities.GatewayTransactionStatus{}, err
	}
	return entities.GatewayTransactionStatus{
		Description:      st.PaymentStatusDescription,
		PaymentMethod:    st.PaymentMethod,
		ConfirmationCode: st.ConfirmationCode,
		StatusCode:       st.StatusCode,
		Raw:              raw,
	}, nil
}

func toPaymentDetails(order entities.OrderSubmission) pesapal.PaymentDetails {
	b := order.BillingAddress
	return pesapal.PaymentDetails{
		ID:          order.MerchantReference,
		Currency:    order.Currency,
		Amount:      order.Amount,
		Description: order.Description,
		CallbackURL: order.CallbackURL,
		BillingAddress: pesapal.BillingAddress{
			EmailAddress: b.EmailAddress,
			PhoneNumber:  b.PhoneNumber,
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

func fromIPNEndpoint(ep pesapal.IPNEndpoint) entities.NotificationEndpoint {
	return entities.NotificationEndpoint{
		ID:               ep.IPNID,
		URL:              ep.URL,
		NotificationType: ep.NotificationTypeDesc,
		CreatedDate:      ep.CreatedDate,
		Status:           ep.Status,
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "PESAPAL_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
