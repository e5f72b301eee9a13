package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/C317-Irineu/elodrinks-api/internal/domain/entities"
	"github.com/C317-Irineu/elodrinks-api/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway implements IPaymentGateway on top of the official
// Mercado Pago SDK: Checkout Pro preferences for the quotation email and the
// payments API for webhook reconciliation.
//
// Back URLs and the notification URL come from the environment so the same
// build serves sandbox and production.

type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client

	successURL      string
	failureURL      string
	pendingURL      string
	notificationURL string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences:     preference.NewClient(cfg),
		payments:        payment.NewClient(cfg),
		successURL:      os.Getenv("CHECKOUT_SUCCESS_URL"),
		failureURL:      os.Getenv("CHECKOUT_FAILURE_URL"),
		pendingURL:      os.Getenv("CHECKOUT_PENDING_URL"),
		notificationURL: os.Getenv("MERCADOPAGO_NOTIFICATION_URL"),
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, pref entities.PaymentPreference) (entities.CheckoutLink, error) {
	log.Printf("[payment][gateway] create preference start external_reference=%s unit_price=%.2f",
		pref.ExternalReference, pref.UnitPrice)

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:          pref.ExternalReference,
				Title:       pref.Title,
				Description: pref.Description,
				UnitPrice:   pref.UnitPrice,
				Quantity:    pref.Quantity,
			},
		},
		Payer: &preference.PayerRequest{
			Email: pref.PayerEmail,
		},
		BackURLs: &preference.BackURLsRequest{
			Success: g.successURL,
			Failure: g.failureURL,
			Pending: g.pendingURL,
		},
		PaymentMethods: &preference.PaymentMethodsRequest{
			ExcludedPaymentTypes: []preference.ExcludedPaymentTypeRequest{
				{ID: "ticket"},
			},
			Installments: 12,
		},
		AutoReturn:        "approved",
		ExternalReference: pref.ExternalReference,
		NotificationURL:   g.notificationURL,
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create preference failed err=%v", err)
		return entities.CheckoutLink{}, err
	}
	log.Printf("[payment][gateway] create preference success preference_id=%s", resp.ID)

	return entities.CheckoutLink{
		PreferenceID: resp.ID,
		InitPoint:    resp.InitPoint,
	}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (entities.PaymentInfo, error) {
	log.Printf("[payment][gateway] get payment start payment_id=%s", paymentID)

	// The payments API identifies payments by a numeric id.
	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return entities.PaymentInfo{}, fmt.Errorf("invalid payment id %q: %w", paymentID, err)
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get payment failed payment_id=%s err=%v", paymentID, err)
		return entities.PaymentInfo{}, err
	}
	log.Printf("[payment][gateway] get payment success payment_id=%s status=%s external_reference=%s",
		paymentID, resp.Status, resp.ExternalReference)

	return entities.PaymentInfo{
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
	}, nil
}
