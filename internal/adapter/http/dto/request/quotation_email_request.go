package request

// QuotationEmailRequest identifies the budget whose quotation email should be
// sent (POST /budget/email/send).
type QuotationEmailRequest struct {
	ID string `json:"id" binding:"required"`
}
