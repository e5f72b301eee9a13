package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/C317-Irineu/elodrinks-api/internal/domain/entities"
	"github.com/C317-Irineu/elodrinks-api/internal/usecase/interfaces"
)

var (
	ErrInvalidWebhookPaymentID = errors.New("webhook notification missing payment id")
	ErrPaymentLookupFailed     = errors.New("payment lookup failed")
)

const notificationTypePayment = "payment"

// WebhookOutcome tells the handler how a notification ended up.
type WebhookOutcome string

const (
	// WebhookOutcomeIgnored means the notification type is not handled here.
	// That is a valid result, not an error.
	WebhookOutcomeIgnored WebhookOutcome = "ignored"
	// WebhookOutcomeProcessed means the correlated budget was updated.
	WebhookOutcomeProcessed WebhookOutcome = "processed"
)

// IPaymentWebhookUseCase reconciles asynchronous payment notifications with
// budgets. Any processing failure must surface as an error so the provider
// retries delivery; re-delivery of an already applied notification is safe
// because the status write is idempotent.

type IPaymentWebhookUseCase interface {
	ProcessNotification(ctx context.Context, n entities.WebhookNotification) (WebhookOutcome, error)
}

type PaymentWebhookUseCase struct {
	budgets IBudgetUseCase
	gateway interfaces.IPaymentGateway
}

var _ IPaymentWebhookUseCase = (*PaymentWebhookUseCase)(nil)

func NewPaymentWebhookUseCase(budgets IBudgetUseCase, gateway interfaces.IPaymentGateway) *PaymentWebhookUseCase {
	return &PaymentWebhookUseCase{budgets: budgets, gateway: gateway}
}

func (u *PaymentWebhookUseCase) ProcessNotification(ctx context.Context, n entities.WebhookNotification) (WebhookOutcome, error) {
	if n.Type != notificationTypePayment {
		log.Printf("[webhook][usecase] ignoring notification type=%q", n.Type)
		return WebhookOutcomeIgnored, nil
	}

	if u.gateway == nil {
		log.Printf("[webhook][usecase] payment gateway not configured payment_id=%s", n.PaymentID)
		return "", ErrPaymentGatewayNotConfigured
	}

	paymentID := strings.TrimSpace(n.PaymentID)
	if paymentID == "" {
		return "", ErrInvalidWebhookPaymentID
	}

	info, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[webhook][usecase] payment lookup failed payment_id=%s err=%v", paymentID, err)
		return "", fmt.Errorf("%w: %v", ErrPaymentLookupFailed, err)
	}

	status := mapProviderStatus(info.Status)
	log.Printf("[webhook][usecase] payment_id=%s provider_status=%s budget_id=%s mapped_status=%s",
		paymentID, info.Status, info.ExternalReference, status)

	if _, err := u.budgets.UpdateStatusAndValue(ctx, info.ExternalReference, status, nil); err != nil {
		log.Printf("[webhook][usecase] budget update failed payment_id=%s budget_id=%s err=%v",
			paymentID, info.ExternalReference, err)
		return "", err
	}
	return WebhookOutcomeProcessed, nil
}

// mapProviderStatus is the single normalization point for the provider's
// payment vocabulary. The mapping is total: approved confirms the budget,
// every other provider status fails it.
func mapProviderStatus(providerStatus string) entities.BudgetStatus {
	if strings.EqualFold(strings.TrimSpace(providerStatus), "approved") {
		return entities.BudgetStatusAprovado
	}
	return entities.BudgetStatusRecusado
}
