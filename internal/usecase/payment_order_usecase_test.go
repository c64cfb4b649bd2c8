package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"pesapal_gateway/internal/domain/entities"
	"pesapal_gateway/internal/usecase/interfaces"
	mock_interfaces "pesapal_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

func newTestPaymentOrderUseCase(repo interfaces.IPaymentOrderRepository, gateway interfaces.IPaymentGateway) *PaymentOrderUseCase {
	uc := NewPaymentOrderUseCase(repo, gateway)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func validSubmission() entities.OrderSubmission {
	return entities.OrderSubmission{
		MerchantReference: "ord-1",
		Amount:            2500,
		Currency:          "ugx",
		Description:       "Concert ticket",
		CallbackURL:       "https://shop.example/done",
		BillingAddress:    entities.BillingAddress{EmailAddress: "jane@example.com", FirstName: "Jane"},
	}
}

func TestPaymentOrderUseCase_SubmitOrder_Validations(t *testing.T) {
	t.Run("non positive amount", func(t *testing.T) {
		uc := newTestPaymentOrderUseCase(nil, nil)
		sub := validSubmission()
		sub.Amount = 0
		_, err := uc.SubmitOrder(context.Background(), sub)
		if !errors.Is(err, ErrInvalidOrderAmount) {
			t.Fatalf("expected ErrInvalidOrderAmount, got %v", err)
		}
	})

	t.Run("empty description", func(t *testing.T) {
		uc := newTestPaymentOrderUseCase(nil, nil)
		sub := validSubmission()
		sub.Description = "   "
		_, err := uc.SubmitOrder(context.Background(), sub)
		if !errors.Is(err, ErrInvalidOrderDescription) {
			t.Fatalf("expected ErrInvalidOrderDescription, got %v", err)
		}
	})

	t.Run("description too long", func(t *testing.T) {
		uc := newTestPaymentOrderUseCase(nil, nil)
		sub := validSubmission()
		sub.Description = strings.Repeat("x", maxOrderDescriptionLen+1)
		_, err := uc.SubmitOrder(context.Background(), sub)
		if !errors.Is(err, ErrInvalidOrderDescription) {
			t.Fatalf("expected ErrInvalidOrderDescription, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		uc := newTestPaymentOrderUseCase(repo, nil)

		_, err := uc.SubmitOrder(context.Background(), validSubmission())
		if !errors.Is(err, ErrPaymentGatewayNotReady) {
			t.Fatalf("expected ErrPaymentGatewayNotReady, got %v", err)
		}
	})

	t.Run("duplicate merchant reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestPaymentOrderUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.PaymentOrder{ID: "ord-1"}, nil)

		_, err := uc.SubmitOrder(context.Background(), validSubmission())
		if !errors.Is(err, interfaces.ErrPaymentOrderAlreadyExists) {
			t.Fatalf("expected ErrPaymentOrderAlreadyExists, got %v", err)
		}
	})
}

func TestPaymentOrderUseCase_SubmitOrder(t *testing.T) {
	t.Run("gateway error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestPaymentOrderUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.PaymentOrder{}, nil)
		gwErr := fmt.Errorf("%w: %s", interfaces.ErrNoNotificationEndpoint, "no ipn")
		gateway.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(entities.GatewayOrder{}, gwErr)

		_, err := uc.SubmitOrder(context.Background(), validSubmission())
		if !errors.Is(err, interfaces.ErrNoNotificationEndpoint) {
			t.Fatalf("expected ErrNoNotificationEndpoint, got %v", err)
		}
	})

	t.Run("success persists pending order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestPaymentOrderUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.PaymentOrder{}, nil)
		gateway.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sub entities.OrderSubmission) (entities.GatewayOrder, error) {
			if sub.Currency != "UGX" {
				t.Fatalf("expected normalized currency UGX, got %q", sub.Currency)
			}
			return entities.GatewayOrder{TrackingID: "trk-1", MerchantReference: sub.MerchantReference, RedirectURL: "https://pay.example/r", Raw: json.RawMessage(`{"order_tracking_id":"trk-1"}`)}, nil
		})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
			return o, nil
		})

		got, err := uc.SubmitOrder(context.Background(), validSubmission())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "ord-1" || got.TrackingID != "trk-1" || got.Status != entities.PaymentStatusPending {
			t.Fatalf("unexpected order: %+v", got)
		}
		if got.RedirectURL != "https://pay.example/r" || !got.CreatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected order fields: %+v", got)
		}
		if string(got.GatewayPayloadRaw) != `{"order_tracking_id":"trk-1"}` {
			t.Fatalf("unexpected raw payload: %s", got.GatewayPayloadRaw)
		}
	})

	t.Run("generates merchant reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestPaymentOrderUseCase(repo, gateway)

		var generated string
		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (entities.PaymentOrder, error) {
			generated = id
			return entities.PaymentOrder{}, nil
		})
		gateway.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(entities.GatewayOrder{TrackingID: "trk-2"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
			return o, nil
		})

		sub := validSubmission()
		sub.MerchantReference = ""
		got, err := uc.SubmitOrder(context.Background(), sub)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(generated) != 36 || got.ID != generated {
			t.Fatalf("expected generated uuid reference, got %q / %q", generated, got.ID)
		}
	})
}

func TestPaymentOrderUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
	uc := newTestPaymentOrderUseCase(repo, nil)

	if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidPaymentOrderID) {
		t.Fatalf("expected ErrInvalidPaymentOrderID, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.PaymentOrder{}, nil)
	if _, err := uc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrPaymentOrderNotFound) {
		t.Fatalf("expected ErrPaymentOrderNotFound, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.PaymentOrder{}, errors.New("db"))
	if _, err := uc.GetByID(context.Background(), "ord-1"); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestPaymentOrderUseCase_RefreshStatus(t *testing.T) {
	t.Run("completed payment updates order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestPaymentOrderUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.PaymentOrder{ID: "ord-1", TrackingID: "trk-1", Status: entities.PaymentStatusPending}, nil)
		gateway.EXPECT().GetTransactionStatus(gomock.Any(), "trk-1").Return(entities.GatewayTransactionStatus{
			Description:      "Completed",
			PaymentMethod:    "MpesaKE",
			ConfirmationCode: "CONF-1",
			PaymentAccount:   "2547xxxxxx",
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
			return o, nil
		})

		got, err := uc.RefreshStatus(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusCompleted || got.ConfirmationCode != "CONF-1" || got.PaymentMethod != "MpesaKE" {
			t.Fatalf("unexpected order: %+v", got)
		}
		if !got.UpdatedAt.Equal(fixedNow) {
			t.Fatalf("expected updated_at refreshed, got %v", got.UpdatedAt)
		}
	})

	t.Run("pending keeps order pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestPaymentOrderUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.PaymentOrder{ID: "ord-1", TrackingID: "trk-1"}, nil)
		gateway.EXPECT().GetTransactionStatus(gomock.Any(), "trk-1").Return(entities.GatewayTransactionStatus{Description: "PENDING"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
			return o, nil
		})

		got, err := uc.RefreshStatus(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusPending || got.StatusDescription != "PENDING" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("gateway error skips update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestPaymentOrderUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.PaymentOrder{ID: "ord-1", TrackingID: "trk-1"}, nil)
		gateway.EXPECT().GetTransactionStatus(gomock.Any(), "trk-1").Return(entities.GatewayTransactionStatus{}, interfaces.ErrGatewayRejected)

		if _, err := uc.RefreshStatus(context.Background(), "ord-1"); !errors.Is(err, interfaces.ErrGatewayRejected) {
			t.Fatalf("expected ErrGatewayRejected, got %v", err)
		}
	})
}

func TestPaymentOrderUseCase_HandleNotification(t *testing.T) {
	t.Run("missing tracking id", func(t *testing.T) {
		uc := newTestPaymentOrderUseCase(nil, nil)
		_, err := uc.HandleNotification(context.Background(), entities.PaymentNotification{NotificationType: "IPNCHANGE"})
		if !errors.Is(err, ErrInvalidNotification) {
			t.Fatalf("expected ErrInvalidNotification, got %v", err)
		}
	})

	t.Run("unknown tracking id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		uc := newTestPaymentOrderUseCase(repo, mock_interfaces.NewMockIPaymentGateway(ctrl))

		repo.EXPECT().GetByTrackingID(gomock.Any(), "trk-x").Return(entities.PaymentOrder{}, nil)

		_, err := uc.HandleNotification(context.Background(), entities.PaymentNotification{TrackingID: "trk-x"})
		if !errors.Is(err, ErrPaymentOrderNotFound) {
			t.Fatalf("expected ErrPaymentOrderNotFound, got %v", err)
		}
	})

	t.Run("merchant reference mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		uc := newTestPaymentOrderUseCase(repo, mock_interfaces.NewMockIPaymentGateway(ctrl))

		repo.EXPECT().GetByTrackingID(gomock.Any(), "trk-1").Return(entities.PaymentOrder{ID: "ord-1", TrackingID: "trk-1"}, nil)

		_, err := uc.HandleNotification(context.Background(), entities.PaymentNotification{TrackingID: "trk-1", MerchantReference: "other"})
		if !errors.Is(err, ErrInvalidNotification) {
			t.Fatalf("expected ErrInvalidNotification, got %v", err)
		}
	})

	t.Run("refreshes status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestPaymentOrderUseCase(repo, gateway)

		repo.EXPECT().GetByTrackingID(gomock.Any(), "trk-1").Return(entities.PaymentOrder{ID: "ord-1", TrackingID: "trk-1"}, nil)
		gateway.EXPECT().GetTransactionStatus(gomock.Any(), "trk-1").Return(entities.GatewayTransactionStatus{Description: "FAILED"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
			return o, nil
		})

		got, err := uc.HandleNotification(context.Background(), entities.PaymentNotification{TrackingID: "trk-1", NotificationType: "IPNCHANGE", MerchantReference: "ord-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusFailed {
			t.Fatalf("expected failed, got %s", got.Status)
		}
	})
}

func TestPaymentOrderUseCase_RequestRefund(t *testing.T) {
	completed := entities.PaymentOrder{ID: "ord-1", TrackingID: "trk-1", Amount: 2500, Status: entities.PaymentStatusCompleted, ConfirmationCode: "CONF-1"}

	t.Run("not completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		uc := newTestPaymentOrderUseCase(repo, mock_interfaces.NewMockIPaymentGateway(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.PaymentOrder{ID: "ord-1", Status: entities.PaymentStatusPending}, nil)

		_, _, err := uc.RequestRefund(context.Background(), "ord-1", entities.RefundSubmission{Username: "ops", Remarks: "dup"})
		if !errors.Is(err, ErrPaymentOrderNotRefundable) {
			t.Fatalf("expected ErrPaymentOrderNotRefundable, got %v", err)
		}
	})

	t.Run("already requested", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		uc := newTestPaymentOrderUseCase(repo, mock_interfaces.NewMockIPaymentGateway(ctrl))

		o := completed
		o.RefundStatus = entities.RefundStatusRequested
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)

		_, _, err := uc.RequestRefund(context.Background(), "ord-1", entities.RefundSubmission{Username: "ops", Remarks: "dup"})
		if !errors.Is(err, ErrRefundAlreadyRequested) {
			t.Fatalf("expected ErrRefundAlreadyRequested, got %v", err)
		}
	})

	t.Run("amount above order amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		uc := newTestPaymentOrderUseCase(repo, mock_interfaces.NewMockIPaymentGateway(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(completed, nil)

		_, _, err := uc.RequestRefund(context.Background(), "ord-1", entities.RefundSubmission{Amount: 9999, Username: "ops", Remarks: "dup"})
		if !errors.Is(err, ErrInvalidRefundRequest) {
			t.Fatalf("expected ErrInvalidRefundRequest, got %v", err)
		}
	})

	t.Run("missing username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		uc := newTestPaymentOrderUseCase(repo, mock_interfaces.NewMockIPaymentGateway(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(completed, nil)

		_, _, err := uc.RequestRefund(context.Background(), "ord-1", entities.RefundSubmission{Remarks: "dup"})
		if !errors.Is(err, ErrInvalidRefundRequest) {
			t.Fatalf("expected ErrInvalidRefundRequest, got %v", err)
		}
	})

	t.Run("full refund by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestPaymentOrderUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(completed, nil)
		gateway.EXPECT().RequestRefund(gomock.Any(), "CONF-1", entities.RefundSubmission{Amount: 2500, Username: "ops", Remarks: "duplicate charge"}).
			Return(entities.RefundOutcome{Status: "200", Message: "Refund request successfully"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
			return o, nil
		})

		got, outcome, err := uc.RequestRefund(context.Background(), "ord-1", entities.RefundSubmission{Username: " ops ", Remarks: "duplicate charge"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.RefundStatus != entities.RefundStatusRequested {
			t.Fatalf("expected refund requested, got %q", got.RefundStatus)
		}
		if outcome.Status != "200" {
			t.Fatalf("unexpected outcome: %+v", outcome)
		}
	})

	t.Run("gateway error keeps order untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestPaymentOrderUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(completed, nil)
		gateway.EXPECT().RequestRefund(gomock.Any(), "CONF-1", gomock.Any()).Return(entities.RefundOutcome{}, interfaces.ErrGatewayRejected)

		_, _, err := uc.RequestRefund(context.Background(), "ord-1", entities.RefundSubmission{Amount: 100, Username: "ops", Remarks: "partial"})
		if !errors.Is(err, interfaces.ErrGatewayRejected) {
			t.Fatalf("expected ErrGatewayRejected, got %v", err)
		}
	})
}
