package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/C317-Irineu/elodrinks-api/internal/domain/entities"
	"github.com/C317-Irineu/elodrinks-api/internal/usecase/interfaces"
)

var (
	ErrPaymentPreferenceFailed     = errors.New("payment preference creation failed")
	ErrEmailDeliveryFailed         = errors.New("quotation email delivery failed")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrMailSenderNotConfigured     = errors.New("mail sender not configured")
)

// IQuotationEmailUseCase sends the priced quotation to the customer: it loads
// the budget, registers a checkout preference with the payment provider and
// emails the resulting payment link.
//
// Failures are terminal for the request and never mutate the budget; a higher
// layer may retry the whole operation.

type IQuotationEmailUseCase interface {
	SendQuotationEmail(ctx context.Context, budgetID string) error
}

type QuotationEmailUseCase struct {
	budgets IBudgetUseCase
	gateway interfaces.IPaymentGateway
	mailer  interfaces.IMailSender
}

var _ IQuotationEmailUseCase = (*QuotationEmailUseCase)(nil)

func NewQuotationEmailUseCase(budgets IBudgetUseCase, gateway interfaces.IPaymentGateway, mailer interfaces.IMailSender) *QuotationEmailUseCase {
	return &QuotationEmailUseCase{budgets: budgets, gateway: gateway, mailer: mailer}
}

func (u *QuotationEmailUseCase) SendQuotationEmail(ctx context.Context, budgetID string) error {
	// Startup wiring continues without these adapters when their env is absent.
	if u.gateway == nil {
		log.Printf("[quotation][usecase] payment gateway not configured budget_id=%s", budgetID)
		return ErrPaymentGatewayNotConfigured
	}
	if u.mailer == nil {
		log.Printf("[quotation][usecase] mail sender not configured budget_id=%s", budgetID)
		return ErrMailSenderNotConfigured
	}

	b, err := u.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return err
	}

	value := 0.0
	if b.Value != nil {
		value = *b.Value
	}

	// ExternalReference is what lets the provider's webhook find its way back
	// to this budget. It is required, never a placeholder.
	pref := entities.PaymentPreference{
		Title:             fmt.Sprintf("Orçamento EloDrinks - %s", b.Details.Type),
		Description:       fmt.Sprintf("Festa de %s em %s", b.Details.Type, b.Details.Date),
		UnitPrice:         value,
		Quantity:          1,
		PayerEmail:        b.Email,
		ExternalReference: b.ID,
	}

	link, err := u.gateway.CreatePreference(ctx, pref)
	if err != nil {
		log.Printf("[quotation][usecase] preference creation failed budget_id=%s err=%v", b.ID, err)
		return fmt.Errorf("%w: %v", ErrPaymentPreferenceFailed, err)
	}
	log.Printf("[quotation][usecase] preference created budget_id=%s preference_id=%s", b.ID, link.PreferenceID)

	mail := entities.EmailNotification{
		To:             b.Email,
		CustomerName:   b.Name,
		EventType:      b.Details.Type,
		EventDate:      b.Details.Date,
		FormattedValue: fmt.Sprintf("%.2f", value),
		PaymentLink:    link.InitPoint,
	}
	if err := u.mailer.Send(ctx, mail); err != nil {
		log.Printf("[quotation][usecase] email delivery failed budget_id=%s err=%v", b.ID, err)
		return fmt.Errorf("%w: %v", ErrEmailDeliveryFailed, err)
	}
	log.Printf("[quotation][usecase] quotation email sent budget_id=%s to=%s", b.ID, b.Email)
	return nil
}
