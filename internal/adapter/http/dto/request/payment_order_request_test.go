package request

import "testing"

func TestPaymentOrderRequest_ToSubmission(t *testing.T) {
	r := PaymentOrderRequest{
		ID:             " ord-1 ",
		Amount:         150.5,
		Currency:       " ugx ",
		Description:    " Concert ticket ",
		CallbackURL:    " https://shop.example/done ",
		BillingAddress: BillingAddressRequest{EmailAddress: " jo@example.com ", FirstName: "Jo"},
	}

	sub := r.ToSubmission()
	if sub.MerchantReference != "ord-1" || sub.Description != "Concert ticket" {
		t.Fatalf("unexpected submission: %+v", sub)
	}
	if sub.Currency != "ugx" || sub.CallbackURL != "https://shop.example/done" {
		t.Fatalf("unexpected submission: %+v", sub)
	}
	if sub.BillingAddress.EmailAddress != "jo@example.com" || sub.BillingAddress.FirstName != "Jo" {
		t.Fatalf("unexpected billing address: %+v", sub.BillingAddress)
	}
}

func TestRefundRequest_ToSubmission(t *testing.T) {
	sub := RefundRequest{Amount: 10, Username: " ops ", Remarks: " duplicate "}.ToSubmission()
	if sub.Amount != 10 || sub.Username != "ops" || sub.Remarks != "duplicate" {
		t.Fatalf("unexpected submission: %+v", sub)
	}
}

func TestIPNCallback_ToNotification(t *testing.T) {
	n := IPNCallback{OrderTrackingID: " trk-1 ", OrderNotificationType: "IPNCHANGE", OrderMerchantReference: "ord-1"}.ToNotification()
	if n.TrackingID != "trk-1" || n.NotificationType != "IPNCHANGE" || n.MerchantReference != "ord-1" {
		t.Fatalf("unexpected notification: %+v", n)
	}
}
