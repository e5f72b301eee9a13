package interfaces

import (
	"context"

	"github.com/C317-Irineu/elodrinks-api/internal/domain/entities"
)

// IMailSender abstracts the outbound email transport.
type IMailSender interface {
	Send(ctx context.Context, mail entities.EmailNotification) error
}
