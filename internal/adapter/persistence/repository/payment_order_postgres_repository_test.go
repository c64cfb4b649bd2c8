package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"pesapal_gateway/internal/domain/entities"
	"pesapal_gateway/internal/infrastructure/database"
	"pesapal_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), false},
		{"pq unique", &pq.Error{Code: "23505"}, true},
		{"pq other", &pq.Error{Code: "23503"}, false},
		{"pq wrapped", fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isUniqueViolation(tc.err); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

// Skips unless DB_DSN points at a reachable Postgres.
func TestPaymentOrderPostgresRepository_Integration(t *testing.T) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("DB_DSN not set; skipping DB integration test")
	}

	ctx := context.Background()
	db, err := database.ConnectPostgres(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer db.Close()

	repo := NewPaymentOrderPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	o := samplePaymentOrder()
	o.ID = "it-" + uuid.NewString()
	o.TrackingID = "trk-" + uuid.NewString()

	if _, err := repo.Create(ctx, o); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, o); !errors.Is(err, interfaces.ErrPaymentOrderAlreadyExists) {
		t.Fatalf("expected ErrPaymentOrderAlreadyExists, got %v", err)
	}

	got, err := repo.GetByTrackingID(ctx, o.TrackingID)
	if err != nil || got.ID != o.ID || got.BillingAddress.EmailAddress != "jo@example.com" {
		t.Fatalf("unexpected order=%+v err=%v", got, err)
	}

	o.Status = entities.PaymentStatusCompleted
	o.ConfirmationCode = "C1"
	o.UpdatedAt = time.Now().UTC()
	if _, err := repo.Update(ctx, o); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = repo.GetByID(ctx, o.ID)
	if got.Status != entities.PaymentStatusCompleted || got.ConfirmationCode != "C1" {
		t.Fatalf("unexpected updated order: %+v", got)
	}

	missing, err := repo.GetByID(ctx, "missing-"+uuid.NewString())
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero order, got %+v err=%v", missing, err)
	}
	if _, err := repo.Update(ctx, entities.PaymentOrder{ID: "ghost-" + uuid.NewString()}); !errors.Is(err, interfaces.ErrPaymentOrderNotStored) {
		t.Fatalf("expected ErrPaymentOrderNotStored, got %v", err)
	}
}
