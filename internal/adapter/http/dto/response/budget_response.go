package response

import "github.com/C317-Irineu/elodrinks-api/internal/domain/entities"

type BudgetDetailsResponse struct {
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Date        string   `json:"date"`
	NumBarmans  int      `json:"num_barmans"`
	NumGuests   int      `json:"num_guests"`
	Time        float64  `json:"time"`
	Package     string   `json:"package"`
	Extras      []string `json:"extras,omitempty"`
}

type BudgetResponse struct {
	ID      string                `json:"id"`
	Name    string                `json:"name"`
	Email   string                `json:"email"`
	Phone   string                `json:"phone"`
	Details BudgetDetailsResponse `json:"budget"`
	Status  string                `json:"status"`
	Value   *float64              `json:"value,omitempty"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
		Phone: b.Phone,
		Details: BudgetDetailsResponse{
			Description: b.Details.Description,
			Type:        b.Details.Type,
			Date:        b.Details.Date,
			NumBarmans:  b.Details.NumBarmans,
			NumGuests:   b.Details.NumGuests,
			Time:        b.Details.Time,
			Package:     b.Details.Package,
			Extras:      b.Details.Extras,
		},
		Status: string(b.Status),
		Value:  b.Value,
	}
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}
