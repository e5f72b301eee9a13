package entities

// PaymentPreference is the checkout request sent to the payment provider.
// It is derived from a Budget right before the quotation email goes out and
// is never persisted.
//
// ExternalReference carries the originating budget id so the provider echoes
// it back in webhook notifications.
type PaymentPreference struct {
	Title             string
	Description       string
	UnitPrice         float64
	Quantity          int
	PayerEmail        string
	ExternalReference string
}

// CheckoutLink is the provider's answer to a preference creation. InitPoint is
// the hosted checkout URL; it is used once for the quotation email and then
// discarded.
type CheckoutLink struct {
	PreferenceID string
	InitPoint    string
}

// PaymentInfo is the authoritative payment state fetched from the provider
// when a webhook notification arrives.
type PaymentInfo struct {
	Status            string
	ExternalReference string
}

// WebhookNotification is the inbound provider notification, reduced to the
// fields the reconciliation flow needs.
type WebhookNotification struct {
	Type      string
	PaymentID string
}
