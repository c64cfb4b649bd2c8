package usecase

import (
	"context"
	"errors"
	"log"
	"net/url"
	"pesapal_gateway/internal/domain/entities"
	"pesapal_gateway/internal/usecase/interfaces"
	"strings"
)

var (
	ErrInvalidNotificationURL  = errors.New("invalid notification url")
	ErrInvalidNotificationType = errors.New("notification type must be GET or POST")
)

// INotificationUseCase manages the IPN endpoints registered with the gateway.
type INotificationUseCase interface {
	RegisterEndpoint(ctx context.Context, rawURL, notificationType string) (entities.NotificationEndpoint, error)
	ListEndpoints(ctx context.Context) ([]entities.NotificationEndpoint, error)
}

type NotificationUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(gateway interfaces.IPaymentGateway) *NotificationUseCase {
	return &NotificationUseCase{gateway: gateway}
}

func (u *NotificationUseCase) RegisterEndpoint(ctx context.Context, rawURL, notificationType string) (entities.NotificationEndpoint, error) {
	rawURL = strings.TrimSpace(rawURL)
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return entities.NotificationEndpoint{}, ErrInvalidNotificationURL
	}
	notificationType = strings.ToUpper(strings.TrimSpace(notificationType))
	if notificationType == "" {
		notificationType = "GET"
	}
	if notificationType != "GET" && notificationType != "POST" {
		return entities.NotificationEndpoint{}, ErrInvalidNotificationType
	}
	if u.gateway == nil {
		return entities.NotificationEndpoint{}, ErrPaymentGatewayNotReady
	}

	ep, err := u.gateway.RegisterIPN(ctx, rawURL, notificationType)
	if err != nil {
		log.Printf("[ipn][usecase] register failed url=%s err=%v", rawURL, err)
		return entities.NotificationEndpoint{}, err
	}
	log.Printf("[ipn][usecase] registered ipn_id=%s url=%s", ep.ID, ep.URL)
	return ep, nil
}

func (u *NotificationUseCase) ListEndpoints(ctx context.Context) ([]entities.NotificationEndpoint, error) {
	if u.gateway == nil {
		return nil, ErrPaymentGatewayNotReady
	}
	return u.gateway.ListIPNs(ctx)
}
