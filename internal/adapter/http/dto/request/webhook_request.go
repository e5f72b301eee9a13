package request

import "github.com/C317-Irineu/elodrinks-api/internal/domain/entities"

// WebhookRequest is the Mercado Pago notification body. No field is required
// at the binding level: an unknown notification type is a valid no-op, and the
// use case decides what a payment notification must carry.
type WebhookRequest struct {
	Type string             `json:"type"`
	Data WebhookDataRequest `json:"data"`
}

type WebhookDataRequest struct {
	ID string `json:"id"`
}

func (r WebhookRequest) ToNotification() entities.WebhookNotification {
	return entities.WebhookNotification{
		Type:      r.Type,
		PaymentID: r.Data.ID,
	}
}
