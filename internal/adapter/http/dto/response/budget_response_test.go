package response

import (
	"testing"

	"github.com/C317-Irineu/elodrinks-api/internal/domain/entities"
)

func TestFromBudget(t *testing.T) {
	v := 500.0
	b := entities.Budget{
		ID:    "b-1",
		Name:  "Ana",
		Email: "ana@x.com",
		Phone: "11999990000",
		Details: entities.BudgetDetails{
			Description: "Festa",
			Type:        "Aniversário",
			Date:        "2025-09-10",
			NumBarmans:  1,
			NumGuests:   30,
			Time:        3,
			Package:     "Basic",
		},
		Status: entities.BudgetStatusAprovado,
		Value:  &v,
	}

	resp := FromBudget(b)
	if resp.ID != "b-1" || resp.Status != "Aprovado" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Details.NumGuests != 30 || resp.Details.Package != "Basic" {
		t.Fatalf("unexpected details: %+v", resp.Details)
	}
	if resp.Value == nil || *resp.Value != 500.0 {
		t.Fatalf("unexpected value: %v", resp.Value)
	}
}

func TestFromBudgets(t *testing.T) {
	out := FromBudgets(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}

	out = FromBudgets([]entities.Budget{{ID: "a"}, {ID: "b"}})
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
		t.Fatalf("unexpected responses: %+v", out)
	}
}
