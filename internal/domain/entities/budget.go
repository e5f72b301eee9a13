package entities

import "strings"

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// Domain notes:
//   - A budget starts as Pendente and moves to Aprovado or Recusado exactly
//     once per payment attempt; no transition leads back to Pendente.
//   - The stored values are the customer-facing Portuguese strings used by the
//     staff dashboard.

type BudgetStatus string

const (
	BudgetStatusPendente BudgetStatus = "Pendente"
	BudgetStatusAprovado BudgetStatus = "Aprovado"
	BudgetStatusRecusado BudgetStatus = "Recusado"
)

// statusAliases is the single normalization table for every external spelling
// of a budget status (staff dashboard, payment provider, legacy records).
var statusAliases = map[string]BudgetStatus{
	"pendente":  BudgetStatusPendente,
	"pending":   BudgetStatusPendente,
	"aprovado":  BudgetStatusAprovado,
	"approved":  BudgetStatusAprovado,
	"paid":      BudgetStatusAprovado,
	"pago":      BudgetStatusAprovado,
	"recusado":  BudgetStatusRecusado,
	"rejected":  BudgetStatusRecusado,
	"rejeitado": BudgetStatusRecusado,
	"failed":    BudgetStatusRecusado,
	"negado":    BudgetStatusRecusado,
}

// ParseBudgetStatus normalizes an external status string into the closed
// BudgetStatus enumeration. The second return reports whether the input was a
// known spelling.
func ParseBudgetStatus(s string) (BudgetStatus, bool) {
	status, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]
	return status, ok
}

// BudgetDetails is the structured event description submitted by the customer.
type BudgetDetails struct {
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Date        string   `json:"date"`
	NumBarmans  int      `json:"num_barmans"`
	NumGuests   int      `json:"num_guests"`
	Time        float64  `json:"time"`
	Package     string   `json:"package"`
	Extras      []string `json:"extras,omitempty"`
}

// Budget is the price quotation for a catering event persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Value is the staff-approved price in BRL; nil until priced.
type Budget struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Details BudgetDetails `json:"budget"`
	Status  BudgetStatus  `json:"status"`
	Value   *float64      `json:"value,omitempty"`
}
