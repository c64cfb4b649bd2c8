package pesapal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Client talks to one PesaPal environment. It caches the bearer token and the
// IPN endpoints registered through it.
//
// The mutex only protects the cached fields. Requests are not serialized, so
// two callers that find an expired token at the same time both refetch.
type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
	logger  *log.Logger
	now     func() time.Time

	mu    sync.Mutex
	token *Token
	ipns  []IPNEndpoint
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		cfg:     cfg,
		baseURL: cfg.baseURL(),
		http:    httpClient,
		logger:  logger,
		now:     time.Now,
	}
}

// BaseURL returns the gateway host this client sends requests to.
func (c *Client) BaseURL() string { return c.baseURL }

// IPNs returns a copy of the registered endpoints in registration order.
func (c *Client) IPNs() []IPNEndpoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]IPNEndpoint, len(c.ipns))
	copy(out, c.ipns)
	return out
}

// RegisterIPN registers url as a notification endpoint. An empty url falls
// back to Config.IPNURL and an empty notificationType to GET.
func (c *Client) RegisterIPN(ctx context.Context, ipnURL, notificationType string) RegisterIPNResult {
	bearer, ok := c.bearer(ctx)
	if !ok {
		return RegisterIPNResult{Err: MsgTokenUnavailable}
	}
	if strings.TrimSpace(ipnURL) == "" {
		ipnURL = c.cfg.IPNURL
	}
	notificationType = strings.ToUpper(strings.TrimSpace(notificationType))
	if notificationType == "" {
		notificationType = DefaultNotificationType
	}
	if notificationType != NotificationTypeGET && notificationType != NotificationTypePOST {
		return RegisterIPNResult{Err: fmt.Sprintf("unsupported notification type %q", notificationType)}
	}

	payload := map[string]string{
		"url":                   ipnURL,
		"ipn_notification_type": notificationType,
	}
	c.logger.Printf("[pesapal][ipn] register start url=%s type=%s", ipnURL, notificationType)

	raw, err := c.do(ctx, http.MethodPost, pathRegisterIPN, payload, bearer)
	if err != nil {
		c.logger.Printf("[pesapal][ipn] register failed url=%s err=%v", ipnURL, err)
		return RegisterIPNResult{Err: errorMessage(err)}
	}
	var endpoint IPNEndpoint
	if err := json.Unmarshal(raw, &endpoint); err != nil {
		return RegisterIPNResult{Err: fmt.Sprintf("decode register ipn response: %v", err)}
	}
	if endpoint.Error.Present() {
		c.logger.Printf("[pesapal][ipn] register rejected url=%s err=%s", ipnURL, endpoint.Error.Error())
		return RegisterIPNResult{Err: endpoint.Error.Error()}
	}

	c.mu.Lock()
	c.ipns = append(c.ipns, endpoint)
	c.mu.Unlock()
	c.logger.Printf("[pesapal][ipn] register success ipn_id=%s", endpoint.IPNID)
	return RegisterIPNResult{Success: true, Endpoint: &endpoint}
}

// ListIPNs fetches the endpoints registered for these credentials and replaces
// the cached list with them.
func (c *Client) ListIPNs(ctx context.Context) ListIPNsResult {
	bearer, ok := c.bearer(ctx)
	if !ok {
		return ListIPNsResult{Err: MsgTokenUnavailable}
	}
	c.logger.Printf("[pesapal][ipn] list start")

	raw, err := c.do(ctx, http.MethodGet, pathGetIPNList, nil, bearer)
	if err != nil {
		c.logger.Printf("[pesapal][ipn] list failed err=%v", err)
		return ListIPNsResult{Err: errorMessage(err)}
	}
	if apiErr := embeddedError(raw); apiErr != nil {
		return ListIPNsResult{Err: apiErr.Error()}
	}

	var endpoints []IPNEndpoint
	if !isEmptyBody(raw) {
		if err := json.Unmarshal(raw, &endpoints); err != nil {
			return ListIPNsResult{Err: fmt.Sprintf("decode ipn list: %v", err)}
		}
	}
	if len(endpoints) > 0 && endpoints[0].Error.Present() {
		return ListIPNsResult{Err: endpoints[0].Error.Error()}
	}

	c.mu.Lock()
	c.ipns = endpoints
	c.mu.Unlock()
	c.logger.Printf("[pesapal][ipn] list success count=%d", len(endpoints))
	return ListIPNsResult{Success: true, Endpoints: endpoints}
}

// BuildOrderRequest turns caller details into the SubmitOrderRequest body.
// The country code always comes from configuration; currency and callback
// url fall back to configuration when the details leave them empty.
func (c *Client) BuildOrderRequest(details PaymentDetails, productID, description, notificationID string) OrderRequest {
	callback := c.cfg.CallbackURL
	if callback == "" {
		callback = details.CallbackURL
	}
	currency := details.Currency
	if currency == "" {
		currency = c.cfg.currency()
	}
	if description == "" {
		description = details.Description
	}
	if productID == "" {
		productID = details.ID
	}

	billing := details.BillingAddress
	billing.CountryCode = c.cfg.countryCode()

	return OrderRequest{
		ID:             productID,
		Currency:       currency,
		Amount:         details.Amount,
		Description:    description,
		CallbackURL:    callback,
		NotificationID: notificationID,
		BillingAddress: billing,
	}
}

// SubmitOrder sends a payment order using the first registered IPN endpoint
// as its notification id.
func (c *Client) SubmitOrder(ctx context.Context, details PaymentDetails, productID, description string) SubmitOrderResult {
	bearer, ok := c.bearer(ctx)
	if !ok {
		return SubmitOrderResult{Err: MsgTokenUnavailable}
	}

	c.mu.Lock()
	var notificationID string
	if len(c.ipns) > 0 {
		notificationID = c.ipns[0].IPNID
	}
	c.mu.Unlock()
	if notificationID == "" {
		c.logger.Printf("[pesapal][order] submit aborted product_id=%s reason=no_ipn", productID)
		return SubmitOrderResult{Err: MsgNoRegisteredIPN}
	}

	body := c.BuildOrderRequest(details, productID, description, notificationID)
	c.logger.Printf("[pesapal][order] submit start product_id=%s amount=%.2f currency=%s", body.ID, body.Amount, body.Currency)

	raw, err := c.do(ctx, http.MethodPost, pathSubmitOrderRequest, body, bearer)
	if err != nil {
		c.logger.Printf("[pesapal][order] submit failed product_id=%s err=%v", body.ID, err)
		return SubmitOrderResult{Err: errorMessage(err)}
	}
	var resp OrderResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return SubmitOrderResult{Err: fmt.Sprintf("decode order response: %v", err)}
	}
	if resp.Error.Present() {
		c.logger.Printf("[pesapal][order] submit rejected product_id=%s err=%s", body.ID, resp.Error.Error())
		return SubmitOrderResult{Err: resp.Error.Error()}
	}

	c.logger.Printf("[pesapal][order] submit success product_id=%s tracking_id=%s", body.ID, resp.OrderTrackingID)
	return SubmitOrderResult{Success: true, Status: http.StatusOK, OrderResponse: &resp}
}

// GetTransactionStatus polls the status of a submitted order. Only a
// COMPLETED payment is a success; other descriptions are returned in Status
// without an error.
func (c *Client) GetTransactionStatus(ctx context.Context, trackingID string) TransactionStatusResult {
	bearer, ok := c.bearer(ctx)
	if !ok {
		return TransactionStatusResult{Err: MsgTokenUnavailable}
	}

	path := pathGetTransactionStatus + "?orderTrackingId=" + url.QueryEscape(trackingID)
	raw, err := c.do(ctx, http.MethodGet, path, nil, bearer)
	if err != nil {
		c.logger.Printf("[pesapal][status] request failed tracking_id=%s err=%v", trackingID, err)
		return TransactionStatusResult{Err: errorMessage(err)}
	}
	var status TransactionStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return TransactionStatusResult{Err: fmt.Sprintf("decode transaction status: %v", err)}
	}
	if status.Error.Present() {
		return TransactionStatusResult{Err: status.Error.Error(), Response: &status}
	}

	desc := strings.TrimSpace(status.PaymentStatusDescription)
	c.logger.Printf("[pesapal][status] tracking_id=%s description=%s", trackingID, desc)
	switch {
	case strings.EqualFold(desc, "completed"):
		return TransactionStatusResult{Success: true, Status: desc, Response: &status}
	case desc == "":
		return TransactionStatusResult{Err: errMissingStatusDesc, Response: &status}
	default:
		return TransactionStatusResult{Status: desc, Response: &status}
	}
}

// RequestRefund asks the gateway to refund a completed payment.
func (c *Client) RequestRefund(ctx context.Context, req RefundRequest) RefundResult {
	bearer, ok := c.bearer(ctx)
	if !ok {
		return RefundResult{Err: MsgTokenUnavailable}
	}
	c.logger.Printf("[pesapal][refund] request start confirmation_code=%s amount=%s", req.ConfirmationCode, req.Amount)

	raw, err := c.do(ctx, http.MethodPost, pathRefundRequest, req, bearer)
	if err != nil {
		c.logger.Printf("[pesapal][refund] request failed confirmation_code=%s err=%v", req.ConfirmationCode, err)
		return RefundResult{Err: errorMessage(err)}
	}
	if isEmptyBody(raw) {
		return RefundResult{Err: errEmptyRefund}
	}
	if apiErr := embeddedError(raw); apiErr != nil {
		return RefundResult{Err: apiErr.Error()}
	}
	var resp RefundResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return RefundResult{Err: fmt.Sprintf("decode refund response: %v", err)}
	}
	c.logger.Printf("[pesapal][refund] request done confirmation_code=%s status=%s", req.ConfirmationCode, resp.Status)
	return RefundResult{Success: true, RefundResponse: &resp}
}

// Run registers the configured IPN url and then loads the endpoint list.
// A failed registration is logged and the listing still runs.
func (c *Client) Run(ctx context.Context) Result {
	if reg := c.RegisterIPN(ctx, "", ""); !reg.Success {
		c.logger.Printf("[pesapal][bootstrap] register ipn failed err=%s", reg.Err)
	}
	list := c.ListIPNs(ctx)
	if !list.Success {
		return Result{Err: list.Err}
	}
	return Result{Success: true}
}

// do sends one JSON request. Non-2xx responses become *StatusError, using the
// gateway's embedded error message when there is one.
func (c *Client) do(ctx context.Context, method, path string, payload any, bearer string) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		if apiErr := embeddedError(raw); apiErr != nil {
			statusErr.Message = apiErr.Error()
		} else {
			statusErr.Message = strings.TrimSpace(string(raw))
		}
		return nil, statusErr
	}
	return raw, nil
}
