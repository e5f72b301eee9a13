package request

import "github.com/C317-Irineu/elodrinks-api/internal/domain/entities"

// BudgetDetailsRequest mirrors the intake form. Numeric fields are pointers so
// binding can tell "missing" apart from a legitimate zero (e.g. no barmen).
type BudgetDetailsRequest struct {
	Description string   `json:"description" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	NumBarmans  *int     `json:"num_barmans" binding:"required,gte=0"`
	NumGuests   *int     `json:"num_guests" binding:"required,gte=0"`
	Time        *float64 `json:"time" binding:"required,gte=0"`
	Package     string   `json:"package" binding:"required"`
	Extras      []string `json:"extras"`
}

// BudgetCreateRequest is the customer intake payload for POST /budget.
type BudgetCreateRequest struct {
	Name    string               `json:"name" binding:"required"`
	Email   string               `json:"email" binding:"required,email"`
	Phone   string               `json:"phone" binding:"required"`
	Details BudgetDetailsRequest `json:"budget" binding:"required"`
	Value   *float64             `json:"value" binding:"omitempty,gte=0"`
}

func (r BudgetCreateRequest) ToBudget() entities.Budget {
	return entities.Budget{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Details: entities.BudgetDetails{
			Description: r.Details.Description,
			Type:        r.Details.Type,
			Date:        r.Details.Date,
			NumBarmans:  *r.Details.NumBarmans,
			NumGuests:   *r.Details.NumGuests,
			Time:        *r.Details.Time,
			Package:     r.Details.Package,
			Extras:      r.Details.Extras,
		},
		Value: r.Value,
	}
}

// BudgetStatusUpdateRequest is the staff review payload for PATCH /budget/status.
type BudgetStatusUpdateRequest struct {
	ID        string   `json:"id" binding:"required"`
	NewStatus string   `json:"new_status" binding:"required"`
	Value     *float64 `json:"value" binding:"omitempty,gte=0"`
}
