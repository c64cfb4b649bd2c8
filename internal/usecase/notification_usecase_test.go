package usecase

import (
	"context"
	"errors"
	"testing"

	"pesapal_gateway/internal/domain/entities"
	mock_interfaces "pesapal_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_RegisterEndpoint(t *testing.T) {
	t.Run("invalid url", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		for _, raw := range []string{"", "not a url", "ftp://host/ipn", "/relative"} {
			if _, err := uc.RegisterEndpoint(context.Background(), raw, "GET"); !errors.Is(err, ErrInvalidNotificationURL) {
				t.Fatalf("url %q: expected ErrInvalidNotificationURL, got %v", raw, err)
			}
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		_, err := uc.RegisterEndpoint(context.Background(), "https://shop.example/ipn", "PUT")
		if !errors.Is(err, ErrInvalidNotificationType) {
			t.Fatalf("expected ErrInvalidNotificationType, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		_, err := uc.RegisterEndpoint(context.Background(), "https://shop.example/ipn", "")
		if !errors.Is(err, ErrPaymentGatewayNotReady) {
			t.Fatalf("expected ErrPaymentGatewayNotReady, got %v", err)
		}
	})

	t.Run("defaults to GET", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewNotificationUseCase(gateway)

		gateway.EXPECT().RegisterIPN(gomock.Any(), "https://shop.example/ipn", "GET").
			Return(entities.NotificationEndpoint{ID: "ipn-1", URL: "https://shop.example/ipn", NotificationType: "GET"}, nil)

		ep, err := uc.RegisterEndpoint(context.Background(), " https://shop.example/ipn ", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ep.ID != "ipn-1" {
			t.Fatalf("unexpected endpoint: %+v", ep)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewNotificationUseCase(gateway)

		gateway.EXPECT().RegisterIPN(gomock.Any(), "https://shop.example/ipn", "POST").Return(entities.NotificationEndpoint{}, errors.New("rejected"))

		if _, err := uc.RegisterEndpoint(context.Background(), "https://shop.example/ipn", "post"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestNotificationUseCase_ListEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewNotificationUseCase(gateway)

	gateway.EXPECT().ListIPNs(gomock.Any()).Return([]entities.NotificationEndpoint{{ID: "a"}, {ID: "b"}}, nil)

	got, err := uc.ListEndpoints(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" {
		t.Fatalf("unexpected endpoints: %+v", got)
	}
}
