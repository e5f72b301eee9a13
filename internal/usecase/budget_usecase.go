package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/C317-Irineu/elodrinks-api/internal/domain/entities"
	"github.com/C317-Irineu/elodrinks-api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound       = errors.New("budget not found")
	ErrInvalidBudgetID      = errors.New("invalid budget id")
	ErrInvalidBudgetContact = errors.New("invalid customer contact")
	ErrInvalidBudgetEmail   = errors.New("invalid customer email")
	ErrInvalidBudgetDetails = errors.New("invalid budget details")
	ErrInvalidBudgetValue   = errors.New("invalid budget value")
	ErrInvalidBudgetStatus  = errors.New("invalid budget status")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IBudgetUseCase exposes the budget lifecycle operations:
//   - customer intake => Create (status starts as Pendente)
//   - staff review => UpdateStatusAndValue
//   - dashboard reads => GetByID / ListAll / ListPending

type IBudgetUseCase interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	UpdateStatusAndValue(ctx context.Context, id string, status entities.BudgetStatus, value *float64) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	ListAll(ctx context.Context) ([]entities.Budget, error)
	ListPending(ctx context.Context) ([]entities.Budget, error)
}

type BudgetUseCase struct {
	repo interfaces.IBudgetRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo}
}

func (u *BudgetUseCase) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	b.Name = strings.TrimSpace(b.Name)
	b.Email = strings.TrimSpace(b.Email)
	b.Phone = strings.TrimSpace(b.Phone)
	if b.Name == "" || b.Phone == "" {
		return entities.Budget{}, ErrInvalidBudgetContact
	}
	if !emailRegex.MatchString(b.Email) {
		return entities.Budget{}, ErrInvalidBudgetEmail
	}
	if err := validateDetails(b.Details); err != nil {
		return entities.Budget{}, err
	}
	if b.Value != nil && *b.Value < 0 {
		return entities.Budget{}, ErrInvalidBudgetValue
	}

	b.ID = uuid.NewString()
	b.Status = entities.BudgetStatusPendente
	return u.repo.Insert(ctx, b)
}

func validateDetails(d entities.BudgetDetails) error {
	if strings.TrimSpace(d.Description) == "" ||
		strings.TrimSpace(d.Type) == "" ||
		strings.TrimSpace(d.Date) == "" ||
		strings.TrimSpace(d.Package) == "" {
		return ErrInvalidBudgetDetails
	}
	if d.NumBarmans < 0 || d.NumGuests < 0 || d.Time < 0 {
		return ErrInvalidBudgetDetails
	}
	return nil
}

// UpdateStatusAndValue sets the budget status and, when value is non-nil, the
// price, in one atomic item write. Re-applying the same status is a no-op in
// effect, which keeps webhook re-deliveries safe.
func (u *BudgetUseCase) UpdateStatusAndValue(ctx context.Context, id string, status entities.BudgetStatus, value *float64) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	switch status {
	case entities.BudgetStatusPendente, entities.BudgetStatusAprovado, entities.BudgetStatusRecusado:
	default:
		return entities.Budget{}, ErrInvalidBudgetStatus
	}
	if value != nil && *value < 0 {
		return entities.Budget{}, ErrInvalidBudgetValue
	}

	updated, err := u.repo.UpdateStatusAndValue(ctx, id, status, value)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) ListAll(ctx context.Context) ([]entities.Budget, error) {
	return u.repo.ListAll(ctx)
}

func (u *BudgetUseCase) ListPending(ctx context.Context) ([]entities.Budget, error) {
	return u.repo.ListByStatus(ctx, entities.BudgetStatusPendente)
}
