package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/C317-Irineu/elodrinks-api/internal/domain/entities"
	mock_interfaces "github.com/C317-Irineu/elodrinks-api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validBudget() entities.Budget {
	return entities.Budget{
		Name:  "Ana",
		Email: "ana@x.com",
		Phone: "11999990000",
		Details: entities.BudgetDetails{
			Description: "Wedding",
			Type:        "Social",
			Date:        "2025-09-10",
			NumBarmans:  2,
			NumGuests:   50,
			Time:        3.0,
			Package:     "Basic",
		},
	}
}

func TestBudgetUseCase_Create(t *testing.T) {
	t.Run("missing contact", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		b := validBudget()
		b.Name = "   "
		_, err := uc.Create(context.Background(), b)
		if !errors.Is(err, ErrInvalidBudgetContact) {
			t.Fatalf("expected ErrInvalidBudgetContact, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		for _, email := range []string{"", "not-an-email", "a@b", "a b@c.com"} {
			b := validBudget()
			b.Email = email
			_, err := uc.Create(context.Background(), b)
			if !errors.Is(err, ErrInvalidBudgetEmail) {
				t.Fatalf("email %q: expected ErrInvalidBudgetEmail, got %v", email, err)
			}
		}
	})

	t.Run("invalid details", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)

		cases := map[string]func(*entities.Budget){
			"empty description": func(b *entities.Budget) { b.Details.Description = "" },
			"empty type":        func(b *entities.Budget) { b.Details.Type = " " },
			"empty date":        func(b *entities.Budget) { b.Details.Date = "" },
			"empty package":     func(b *entities.Budget) { b.Details.Package = "" },
			"negative barmans":  func(b *entities.Budget) { b.Details.NumBarmans = -1 },
			"negative guests":   func(b *entities.Budget) { b.Details.NumGuests = -5 },
			"negative time":     func(b *entities.Budget) { b.Details.Time = -0.5 },
		}
		for name, mutate := range cases {
			b := validBudget()
			mutate(&b)
			_, err := uc.Create(context.Background(), b)
			if !errors.Is(err, ErrInvalidBudgetDetails) {
				t.Fatalf("%s: expected ErrInvalidBudgetDetails, got %v", name, err)
			}
		}
	})

	t.Run("negative value", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		b := validBudget()
		v := -10.0
		b.Value = &v
		_, err := uc.Create(context.Background(), b)
		if !errors.Is(err, ErrInvalidBudgetValue) {
			t.Fatalf("expected ErrInvalidBudgetValue, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(entities.Budget{}, errors.New("db"))

		_, err := uc.Create(context.Background(), validBudget())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().Insert(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.ID == "" {
					t.Fatalf("expected generated id")
				}
				if b.Status != entities.BudgetStatusPendente {
					t.Fatalf("expected Pendente, got %s", b.Status)
				}
				if b.Name != "Ana" || b.Email != "ana@x.com" || b.Details.NumGuests != 50 {
					t.Fatalf("unexpected budget: %+v", b)
				}
				return b, nil
			},
		)

		in := validBudget()
		in.Name = " Ana "
		created, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected id on created budget")
		}
	})
}

func TestBudgetUseCase_UpdateStatusAndValue(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		_, err := uc.UpdateStatusAndValue(context.Background(), "  ", entities.BudgetStatusAprovado, nil)
		if !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		_, err := uc.UpdateStatusAndValue(context.Background(), "b-1", entities.BudgetStatus("Whatever"), nil)
		if !errors.Is(err, ErrInvalidBudgetStatus) {
			t.Fatalf("expected ErrInvalidBudgetStatus, got %v", err)
		}
	})

	t.Run("negative value", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		v := -1.0
		_, err := uc.UpdateStatusAndValue(context.Background(), "b-1", entities.BudgetStatusAprovado, &v)
		if !errors.Is(err, ErrInvalidBudgetValue) {
			t.Fatalf("expected ErrInvalidBudgetValue, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)
		repo.EXPECT().UpdateStatusAndValue(gomock.Any(), "b-1", entities.BudgetStatusAprovado, gomock.Nil()).Return(entities.Budget{}, errors.New("db"))

		_, err := uc.UpdateStatusAndValue(context.Background(), "b-1", entities.BudgetStatusAprovado, nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)
		repo.EXPECT().UpdateStatusAndValue(gomock.Any(), "missing", entities.BudgetStatusRecusado, gomock.Nil()).Return(entities.Budget{}, nil)

		_, err := uc.UpdateStatusAndValue(context.Background(), "missing", entities.BudgetStatusRecusado, nil)
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("success with value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		v := 500.0
		expected := entities.Budget{ID: "b-1", Status: entities.BudgetStatusAprovado, Value: &v}
		repo.EXPECT().UpdateStatusAndValue(gomock.Any(), "b-1", entities.BudgetStatusAprovado, &v).Return(expected, nil)

		res, err := uc.UpdateStatusAndValue(context.Background(), " b-1 ", entities.BudgetStatusAprovado, &v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BudgetStatusAprovado || res.Value == nil || *res.Value != 500.0 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("re-applying the same status is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		state := entities.Budget{ID: "b-1", Status: entities.BudgetStatusPendente}
		repo.EXPECT().UpdateStatusAndValue(gomock.Any(), "b-1", entities.BudgetStatusAprovado, gomock.Nil()).Times(2).DoAndReturn(
			func(_ context.Context, _ string, status entities.BudgetStatus, _ *float64) (entities.Budget, error) {
				state.Status = status
				return state, nil
			},
		)

		first, err := uc.UpdateStatusAndValue(context.Background(), "b-1", entities.BudgetStatusAprovado, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.UpdateStatusAndValue(context.Background(), "b-1", entities.BudgetStatusAprovado, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Status != second.Status || second.Status != entities.BudgetStatusAprovado {
			t.Fatalf("expected identical final state, got %s then %s", first.Status, second.Status)
		}
	})
}

func TestBudgetUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Budget{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusPendente}, nil)

		b, err := uc.GetByID(context.Background(), " b-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID != "b-1" || b.Status != entities.BudgetStatusPendente {
			t.Fatalf("unexpected budget: %+v", b)
		}
	})
}

func TestBudgetUseCase_Listing(t *testing.T) {
	t.Run("list all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)
		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Budget{{ID: "a"}, {ID: "b"}}, nil)

		budgets, err := uc.ListAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(budgets) != 2 {
			t.Fatalf("expected 2 budgets, got %d", len(budgets))
		}
	})

	t.Run("list pending filters by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)
		repo.EXPECT().ListByStatus(gomock.Any(), entities.BudgetStatusPendente).Return([]entities.Budget{{ID: "a", Status: entities.BudgetStatusPendente}}, nil)

		budgets, err := uc.ListPending(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(budgets) != 1 || budgets[0].Status != entities.BudgetStatusPendente {
			t.Fatalf("unexpected budgets: %+v", budgets)
		}
	})
}
