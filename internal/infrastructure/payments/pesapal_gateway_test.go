package payments

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pesapal_gateway/internal/domain/entities"
	"pesapal_gateway/internal/usecase/interfaces"
	"pesapal_gateway/pkg/pesapal"
)

func newFakePesapal(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestGateway(t *testing.T, baseURL string) *PesapalGateway {
	t.Helper()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("PESAPAL_MOCK", "")
	g, err := NewPesapalGateway(pesapal.Config{
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		IPNURL:         "https://shop.example/ipn",
		BaseURL:        baseURL,
		Logger:         log.New(io.Discard, "", 0),
	}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

const tokenBody = `{"token":"tok","expiryDate":"2099-01-01T00:00:00Z","status":"200"}`

func TestNewPesapalGateway(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("PESAPAL_MOCK", "")
		if _, err := NewPesapalGateway(pesapal.Config{ConsumerKey: "key"}, false); !errors.Is(err, ErrMissingPesapalCredentials) {
			t.Fatalf("expected ErrMissingPesapalCredentials, got %v", err)
		}
	})

	t.Run("mock mode needs no credentials", func(t *testing.T) {
		t.Setenv("PESAPAL_MOCK", "true")
		g, err := NewPesapalGateway(pesapal.Config{}, false)
		if err != nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %+v err=%v", g, err)
		}
	})
}

func TestPesapalGateway_SubmitOrder(t *testing.T) {
	t.Run("loads ipn list and submits", func(t *testing.T) {
		srv := newFakePesapal(t, map[string]string{
			"/api/Auth/RequestToken":                 tokenBody,
			"/api/URLSetup/GetIpnList":               `[{"url":"https://shop.example/ipn","ipn_id":"ipn-1","ipn_notification_type_description":"GET"}]`,
			"/api/Transactions/SubmitOrderRequest":   `{"order_tracking_id":"trk-1","merchant_reference":"ord-1","redirect_url":"https://pay.example/r","error":null,"status":"200"}`,
			"/api/Transactions/GetTransactionStatus": `{"payment_status_description":"Completed"}`,
		})
		g := newTestGateway(t, srv.URL)

		got, err := g.SubmitOrder(context.Background(), entities.OrderSubmission{MerchantReference: "ord-1", Amount: 10, Description: "Ticket"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TrackingID != "trk-1" || got.RedirectURL != "https://pay.example/r" {
			t.Fatalf("unexpected order: %+v", got)
		}
		if !strings.Contains(string(got.Raw), `"order_tracking_id":"trk-1"`) {
			t.Fatalf("unexpected raw: %s", got.Raw)
		}
	})

	t.Run("no endpoint maps to ErrNoNotificationEndpoint", func(t *testing.T) {
		srv := newFakePesapal(t, map[string]string{
			"/api/Auth/RequestToken":   tokenBody,
			"/api/URLSetup/GetIpnList": `[]`,
		})
		g := newTestGateway(t, srv.URL)

		_, err := g.SubmitOrder(context.Background(), entities.OrderSubmission{MerchantReference: "ord-1", Amount: 10, Description: "Ticket"})
		if !errors.Is(err, interfaces.ErrNoNotificationEndpoint) {
			t.Fatalf("expected ErrNoNotificationEndpoint, got %v", err)
		}
	})

	t.Run("gateway error maps to ErrGatewayRejected", func(t *testing.T) {
		srv := newFakePesapal(t, map[string]string{
			"/api/Auth/RequestToken":               tokenBody,
			"/api/URLSetup/GetIpnList":             `[{"ipn_id":"ipn-1"}]`,
			"/api/Transactions/SubmitOrderRequest": `{"error":{"code":"invalid_amount","message":"Invalid amount"}}`,
		})
		g := newTestGateway(t, srv.URL)

		_, err := g.SubmitOrder(context.Background(), entities.OrderSubmission{MerchantReference: "ord-1", Amount: 10, Description: "Ticket"})
		if !errors.Is(err, interfaces.ErrGatewayRejected) || !strings.Contains(err.Error(), "Invalid amount") {
			t.Fatalf("expected ErrGatewayRejected with message, got %v", err)
		}
	})
}

func TestPesapalGateway_GetTransactionStatus(t *testing.T) {
	t.Run("pending is not an error", func(t *testing.T) {
		srv := newFakePesapal(t, map[string]string{
			"/api/Auth/RequestToken":                 tokenBody,
			"/api/Transactions/GetTransactionStatus": `{"payment_status_description":"PENDING","status_code":0}`,
		})
		g := newTestGateway(t, srv.URL)

		st, err := g.GetTransactionStatus(context.Background(), "trk-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.Description != "PENDING" {
			t.Fatalf("unexpected status: %+v", st)
		}
	})

	t.Run("completed carries confirmation", func(t *testing.T) {
		srv := newFakePesapal(t, map[string]string{
			"/api/Auth/RequestToken":                 tokenBody,
			"/api/Transactions/GetTransactionStatus": `{"payment_status_description":"COMPLETED","confirmation_code":"C1","payment_method":"Visa","amount":10,"currency":"UGX","status_code":1}`,
		})
		g := newTestGateway(t, srv.URL)

		st, err := g.GetTransactionStatus(context.Background(), "trk-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.ConfirmationCode != "C1" || st.PaymentMethod != "Visa" || st.StatusCode != 1 {
			t.Fatalf("unexpected status: %+v", st)
		}
	})

	t.Run("embedded error", func(t *testing.T) {
		srv := newFakePesapal(t, map[string]string{
			"/api/Auth/RequestToken":                 tokenBody,
			"/api/Transactions/GetTransactionStatus": `{"error":{"message":"Order not found"}}`,
		})
		g := newTestGateway(t, srv.URL)

		if _, err := g.GetTransactionStatus(context.Background(), "trk-1"); !errors.Is(err, interfaces.ErrGatewayRejected) {
			t.Fatalf("expected ErrGatewayRejected, got %v", err)
		}
	})
}

func TestPesapalGateway_RefundAndIPN(t *testing.T) {
	srv := newFakePesapal(t, map[string]string{
		"/api/Auth/RequestToken":          tokenBody,
		"/api/Transactions/RefundRequest": `{"status":"200","message":"Refund request successfully"}`,
		"/api/URLSetup/RegisterIPN":       `{"url":"https://shop.example/ipn","ipn_id":"ipn-9","created_date":"2024-01-01T00:00:00"}`,
		"/api/URLSetup/GetIpnList":        `[{"url":"https://shop.example/ipn","ipn_id":"ipn-9","ipn_notification_type_description":"POST"}]`,
	})
	g := newTestGateway(t, srv.URL)

	outcome, err := g.RequestRefund(context.Background(), "C1", entities.RefundSubmission{Amount: 10, Username: "ops", Remarks: "dup"})
	if err != nil || outcome.Status != "200" {
		t.Fatalf("unexpected refund outcome=%+v err=%v", outcome, err)
	}

	ep, err := g.RegisterIPN(context.Background(), "https://shop.example/ipn", "post")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ep.ID != "ipn-9" || ep.NotificationType != "POST" {
		t.Fatalf("unexpected endpoint: %+v", ep)
	}

	list, err := g.ListIPNs(context.Background())
	if err != nil || len(list) != 1 || list[0].NotificationType != "POST" {
		t.Fatalf("unexpected list=%+v err=%v", list, err)
	}

	if err := g.Bootstrap(context.Background()); err != nil {
		t.Fatalf("unexpected bootstrap error: %v", err)
	}
}

func TestPesapalGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("PESAPAL_MOCK", "")
	g, err := NewPesapalGateway(pesapal.Config{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	order, err := g.SubmitOrder(ctx, entities.OrderSubmission{MerchantReference: "ord-1", Amount: 10, Description: "Ticket"})
	if err != nil || order.TrackingID == "" || order.MerchantReference != "ord-1" {
		t.Fatalf("unexpected order=%+v err=%v", order, err)
	}

	st, err := g.GetTransactionStatus(ctx, order.TrackingID)
	if err != nil || st.Description != "COMPLETED" || !strings.HasPrefix(st.ConfirmationCode, "MOCK-") {
		t.Fatalf("unexpected status=%+v err=%v", st, err)
	}

	if _, err := g.RegisterIPN(ctx, "https://shop.example/ipn", "GET"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, _ := g.ListIPNs(ctx)
	if len(list) != 1 {
		t.Fatalf("expected 1 mock endpoint, got %d", len(list))
	}

	if err := g.Bootstrap(ctx); err != nil {
		t.Fatalf("unexpected bootstrap error: %v", err)
	}
}
