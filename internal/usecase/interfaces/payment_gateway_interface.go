package interfaces

import (
	"context"

	"github.com/C317-Irineu/elodrinks-api/internal/domain/entities"
)

// IPaymentGateway abstracts the payment provider (Mercado Pago).
//
// CreatePreference registers a checkout preference and returns the hosted
// checkout link. GetPayment fetches the authoritative status and the
// external reference for a payment id received via webhook.
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, pref entities.PaymentPreference) (entities.CheckoutLink, error)
	GetPayment(ctx context.Context, paymentID string) (entities.PaymentInfo, error)
}
