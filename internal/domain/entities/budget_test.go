package entities

import "testing"

func TestParseBudgetStatus(t *testing.T) {
	cases := []struct {
		in   string
		want BudgetStatus
		ok   bool
	}{
		{"Pendente", BudgetStatusPendente, true},
		{"pendente", BudgetStatusPendente, true},
		{"PENDING", BudgetStatusPendente, true},
		{"Aprovado", BudgetStatusAprovado, true},
		{"approved", BudgetStatusAprovado, true},
		{"  paid  ", BudgetStatusAprovado, true},
		{"pago", BudgetStatusAprovado, true},
		{"Recusado", BudgetStatusRecusado, true},
		{"rejected", BudgetStatusRecusado, true},
		{"rejeitado", BudgetStatusRecusado, true},
		{"failed", BudgetStatusRecusado, true},
		{"negado", BudgetStatusRecusado, true},
		{"", "", false},
		{"banana", "", false},
		{"in_process", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseBudgetStatus(tc.in)
		if ok != tc.ok {
			t.Fatalf("ParseBudgetStatus(%q): ok = %v, want %v", tc.in, ok, tc.ok)
		}
		if got != tc.want {
			t.Fatalf("ParseBudgetStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
