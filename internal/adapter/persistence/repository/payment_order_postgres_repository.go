package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	"pesapal_gateway/internal/domain/entities"
	"pesapal_gateway/internal/usecase/interfaces"

	"github.com/lib/pq"
)

const paymentOrdersSchema = `
CREATE TABLE IF NOT EXISTS payment_orders (
	id                  TEXT PRIMARY KEY,
	order_tracking_id   TEXT,
	amount              NUMERIC(18,2) NOT NULL,
	currency            TEXT NOT NULL,
	description         TEXT NOT NULL,
	callback_url        TEXT NOT NULL DEFAULT '',
	redirect_url        TEXT NOT NULL DEFAULT '',
	billing_address     JSONB NOT NULL DEFAULT '{}',
	status              TEXT NOT NULL,
	status_description  TEXT NOT NULL DEFAULT '',
	payment_method      TEXT NOT NULL DEFAULT '',
	payment_account     TEXT NOT NULL DEFAULT '',
	confirmation_code   TEXT NOT NULL DEFAULT '',
	refund_status       TEXT NOT NULL DEFAULT '',
	created_at          TIMESTAMPTZ NOT NULL,
	updated_at          TIMESTAMPTZ NOT NULL,
	gateway_payload_raw TEXT NOT NULL DEFAULT ''
);
CREATE UNIQUE INDEX IF NOT EXISTS payment_orders_tracking_id_idx
	ON payment_orders (order_tracking_id) WHERE order_tracking_id IS NOT NULL AND order_tracking_id <> '';
`

const paymentOrderColumns = `id, COALESCE(order_tracking_id, ''), amount, currency, description, callback_url, redirect_url,
	billing_address, status, status_description, payment_method, payment_account, confirmation_code,
	refund_status, created_at, updated_at, gateway_payload_raw`

// PaymentOrderPostgresRepository persists PaymentOrder entities in the
// payment_orders table (see EnsureSchema).
type PaymentOrderPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IPaymentOrderRepository = (*PaymentOrderPostgresRepository)(nil)

func NewPaymentOrderPostgresRepository(db *sql.DB) *PaymentOrderPostgresRepository {
	return &PaymentOrderPostgresRepository{db: db}
}

// EnsureSchema creates the table and tracking id index when missing.
func (r *PaymentOrderPostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, paymentOrdersSchema); err != nil {
		log.Printf("[payment_order][postgres] ensure schema failed err=%v", err)
		return err
	}
	return nil
}

func (r *PaymentOrderPostgresRepository) Create(ctx context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
	billing, err := json.Marshal(o.BillingAddress)
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO payment_orders(id, order_tracking_id, amount, currency, description, callback_url, redirect_url,
			billing_address, status, status_description, payment_method, payment_account, confirmation_code,
			refund_status, created_at, updated_at, gateway_payload_raw)
		VALUES ($1,NULLIF($2,''),$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`, o.ID, o.TrackingID, o.Amount, o.Currency, o.Description, o.CallbackURL, o.RedirectURL,
		string(billing), string(o.Status), o.StatusDescription, o.PaymentMethod, o.PaymentAccount, o.ConfirmationCode,
		string(o.RefundStatus), o.CreatedAt.UTC(), o.UpdatedAt.UTC(), string(o.GatewayPayloadRaw))
	if isUniqueViolation(err) {
		return entities.PaymentOrder{}, interfaces.ErrPaymentOrderAlreadyExists
	}
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	return o, nil
}

func (r *PaymentOrderPostgresRepository) GetByID(ctx context.Context, id string) (entities.PaymentOrder, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+paymentOrderColumns+` FROM payment_orders WHERE id=$1`, id)
	return scanPaymentOrder(row)
}

func (r *PaymentOrderPostgresRepository) GetByTrackingID(ctx context.Context, trackingID string) (entities.PaymentOrder, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+paymentOrderColumns+` FROM payment_orders WHERE order_tracking_id=$1`, trackingID)
	return scanPaymentOrder(row)
}

func (r *PaymentOrderPostgresRepository) Update(ctx context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
	billing, err := json.Marshal(o.BillingAddress)
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE payment_orders SET order_tracking_id=NULLIF($2,''), amount=$3, currency=$4, description=$5,
			callback_url=$6, redirect_url=$7, billing_address=$8, status=$9, status_description=$10,
			payment_method=$11, payment_account=$12, confirmation_code=$13, refund_status=$14,
			updated_at=$15, gateway_payload_raw=$16
		WHERE id=$1
	`, o.ID, o.TrackingID, o.Amount, o.Currency, o.Description, o.CallbackURL, o.RedirectURL,
		string(billing), string(o.Status), o.StatusDescription, o.PaymentMethod, o.PaymentAccount,
		o.ConfirmationCode, string(o.RefundStatus), o.UpdatedAt.UTC(), string(o.GatewayPayloadRaw))
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	if n == 0 {
		return entities.PaymentOrder{}, interfaces.ErrPaymentOrderNotStored
	}
	return o, nil
}

func scanPaymentOrder(row *sql.Row) (entities.PaymentOrder, error) {
	var (
		o                    entities.PaymentOrder
		billing, payload     string
		status, refund       string
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&o.ID, &o.TrackingID, &o.Amount, &o.Currency, &o.Description, &o.CallbackURL, &o.RedirectURL,
		&billing, &status, &o.StatusDescription, &o.PaymentMethod, &o.PaymentAccount, &o.ConfirmationCode,
		&refund, &createdAt, &updatedAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PaymentOrder{}, nil
	}
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	if billing != "" {
		if err := json.Unmarshal([]byte(billing), &o.BillingAddress); err != nil {
			return entities.PaymentOrder{}, err
		}
	}
	o.Status = entities.PaymentStatus(status)
	o.RefundStatus = entities.RefundStatus(refund)
	o.CreatedAt = createdAt.UTC()
	o.UpdatedAt = updatedAt.UTC()
	if payload != "" {
		o.GatewayPayloadRaw = []byte(payload)
	}
	return o, nil
}

func isUniqueViolation(err error) bool {
	var pe *pq.Error
	return errors.As(err, &pe) && pe.Code == "23505"
}
