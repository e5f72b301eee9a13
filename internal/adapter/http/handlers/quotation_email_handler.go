package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/C317-Irineu/elodrinks-api/internal/adapter/http/dto/request"
	"github.com/C317-Irineu/elodrinks-api/internal/usecase"
	"github.com/C317-Irineu/elodrinks-api/pkg"

	"github.com/gin-gonic/gin"
)

// QuotationEmailHandler handles the "send quotation email" trigger.

type QuotationEmailHandler struct {
	usecase usecase.IQuotationEmailUseCase
}

func NewQuotationEmailHandler(uc usecase.IQuotationEmailUseCase) *QuotationEmailHandler {
	return &QuotationEmailHandler{usecase: uc}
}

func (h *QuotationEmailHandler) SendQuotationEmail(c *gin.Context) {
	var payload request.QuotationEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SendQuotationEmail(c.Request.Context(), payload.ID); err != nil {
		log.Printf("[quotation][handler] send failed budget_id=%s err=%v", payload.ID, err)
		appErr := mapQuotationEmailError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email enviado com sucesso"})
}

func mapQuotationEmailError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Orçamento não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentPreferenceFailed):
		return pkg.NewDomainError("PAYMENT_PREFERENCE_FAILED", "Erro ao criar preferência de pagamento", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrEmailDeliveryFailed):
		return pkg.NewDomainError("EMAIL_DELIVERY_FAILED", "Erro ao enviar e-mail", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
