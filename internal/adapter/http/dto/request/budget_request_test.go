package request

import "testing"

func TestBudgetCreateRequest_ToBudget(t *testing.T) {
	barmans, guests, hours := 2, 80, 4.5
	value := 1250.0
	r := BudgetCreateRequest{
		Name:  "Ana",
		Email: "ana@x.com",
		Phone: "11999990000",
		Details: BudgetDetailsRequest{
			Description: "Festa de casamento",
			Type:        "Casamento",
			Date:        "2025-09-10",
			NumBarmans:  &barmans,
			NumGuests:   &guests,
			Time:        &hours,
			Package:     "Premium",
			Extras:      []string{"Bar de caipirinha", "Drinks sem álcool"},
		},
		Value: &value,
	}

	b := r.ToBudget()
	if b.ID != "" || b.Status != "" {
		t.Fatalf("id and status must be unset on intake, got %+v", b)
	}
	if b.Name != "Ana" || b.Email != "ana@x.com" || b.Phone != "11999990000" {
		t.Fatalf("unexpected contact: %+v", b)
	}
	if b.Details.NumBarmans != 2 || b.Details.NumGuests != 80 || b.Details.Time != 4.5 {
		t.Fatalf("unexpected details: %+v", b.Details)
	}
	if len(b.Details.Extras) != 2 {
		t.Fatalf("unexpected extras: %v", b.Details.Extras)
	}
	if b.Value == nil || *b.Value != 1250.0 {
		t.Fatalf("unexpected value: %v", b.Value)
	}
}

func TestWebhookRequest_ToNotification(t *testing.T) {
	r := WebhookRequest{Type: "payment", Data: WebhookDataRequest{ID: "123"}}
	n := r.ToNotification()
	if n.Type != "payment" || n.PaymentID != "123" {
		t.Fatalf("unexpected notification: %+v", n)
	}
}
