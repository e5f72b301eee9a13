package handlers

import (
	"log"
	"net/http"

	request "github.com/C317-Irineu/elodrinks-api/internal/adapter/http/dto/request"
	"github.com/C317-Irineu/elodrinks-api/internal/usecase"
	"github.com/C317-Irineu/elodrinks-api/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentWebhookHandler receives Mercado Pago payment notifications.
//
// The provider treats any non-2xx response as "retry me", so every processing
// failure maps to 400. Unhandled notification types answer 200 on purpose:
// they are a valid no-op, not something the provider should re-deliver.

type PaymentWebhookHandler struct {
	usecase usecase.IPaymentWebhookUseCase
}

func NewPaymentWebhookHandler(uc usecase.IPaymentWebhookUseCase) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{usecase: uc}
}

func (h *PaymentWebhookHandler) HandleNotification(c *gin.Context) {
	var payload request.WebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[webhook][handler] invalid notification body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("WEBHOOK_PROCESSING_ERROR", "Erro ao processar pagamento", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, err := h.usecase.ProcessNotification(c.Request.Context(), payload.ToNotification())
	if err != nil {
		log.Printf("[webhook][handler] processing failed payment_id=%s err=%v", payload.Data.ID, err)
		appErr := pkg.NewDomainError("WEBHOOK_PROCESSING_ERROR", "Erro ao processar pagamento", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if outcome == usecase.WebhookOutcomeIgnored {
		c.JSON(http.StatusOK, gin.H{"message": "Tipo de notificação não tratada"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notificação processada com sucesso"})
}
