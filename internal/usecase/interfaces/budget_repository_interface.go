package interfaces

import (
	"context"

	"github.com/C317-Irineu/elodrinks-api/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Contract notes:
//   - Every mutation is a single atomic item write.
//   - Lookups return a zero-value Budget (empty ID) and a nil error when the
//     id does not exist; use cases translate that into their not-found error.

type IBudgetRepository interface {
	Insert(ctx context.Context, b entities.Budget) (entities.Budget, error)
	UpdateStatusAndValue(ctx context.Context, id string, status entities.BudgetStatus, value *float64) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	ListAll(ctx context.Context) ([]entities.Budget, error)
	ListByStatus(ctx context.Context, status entities.BudgetStatus) ([]entities.Budget, error)
}
