package repository

import (
	"context"
	"sync"

	"pesapal_gateway/internal/domain/entities"
	"pesapal_gateway/internal/usecase/interfaces"
)

// PaymentOrderMemoryRepository keeps orders in process memory. Used for local
// runs (REPO_BACKEND=memory) and tests.
type PaymentOrderMemoryRepository struct {
	mu         sync.RWMutex
	orders     map[string]entities.PaymentOrder
	byTracking map[string]string
}

var _ interfaces.IPaymentOrderRepository = (*PaymentOrderMemoryRepository)(nil)

func NewPaymentOrderMemoryRepository() *PaymentOrderMemoryRepository {
	return &PaymentOrderMemoryRepository{
		orders:     make(map[string]entities.PaymentOrder),
		byTracking: make(map[string]string),
	}
}

func (r *PaymentOrderMemoryRepository) Create(_ context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; ok {
		return entities.PaymentOrder{}, interfaces.ErrPaymentOrderAlreadyExists
	}
	r.store(o)
	return o, nil
}

func (r *PaymentOrderMemoryRepository) GetByID(_ context.Context, id string) (entities.PaymentOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.orders[id], nil
}

func (r *PaymentOrderMemoryRepository) GetByTrackingID(_ context.Context, trackingID string) (entities.PaymentOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byTracking[trackingID]
	if !ok {
		return entities.PaymentOrder{}, nil
	}
	return r.orders[id], nil
}

func (r *PaymentOrderMemoryRepository) Update(_ context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.orders[o.ID]
	if !ok {
		return entities.PaymentOrder{}, interfaces.ErrPaymentOrderNotStored
	}
	if prev.TrackingID != "" && prev.TrackingID != o.TrackingID {
		delete(r.byTracking, prev.TrackingID)
	}
	r.store(o)
	return o, nil
}

func (r *PaymentOrderMemoryRepository) store(o entities.PaymentOrder) {
	if len(o.GatewayPayloadRaw) > 0 {
		o.GatewayPayloadRaw = append([]byte(nil), o.GatewayPayloadRaw...)
	}
	r.orders[o.ID] = o
	if o.TrackingID != "" {
		r.byTracking[o.TrackingID] = o.ID
	}
}
