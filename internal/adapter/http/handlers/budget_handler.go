package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/C317-Irineu/elodrinks-api/internal/adapter/http/dto/request"
	response "github.com/C317-Irineu/elodrinks-api/internal/adapter/http/dto/response"
	"github.com/C317-Irineu/elodrinks-api/internal/domain/entities"
	"github.com/C317-Irineu/elodrinks-api/internal/usecase"
	"github.com/C317-Irineu/elodrinks-api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)

// BudgetHandler handles HTTP requests for the budget lifecycle.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// CreateBudget receives the customer intake form and persists a new budget
// with status Pendente.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.BudgetCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToBudget())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[budget][handler] created budget_id=%s", created.ID)

	c.JSON(http.StatusCreated, gin.H{"id": created.ID})
}

// UpdateBudgetStatus applies a staff review decision (status, optional price).
// The incoming status string goes through the normalization table before it
// reaches the use case.
func (h *BudgetHandler) UpdateBudgetStatus(c *gin.Context) {
	var payload request.BudgetStatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	status, ok := entities.ParseBudgetStatus(payload.NewStatus)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown budget status", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if _, err := h.usecase.UpdateStatusAndValue(c.Request.Context(), payload.ID, status, payload.Value); err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status atualizado com sucesso"})
}

func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": response.FromBudgets(budgets)})
}

func (h *BudgetHandler) ListPendingBudgets(c *gin.Context) {
	budgets, err := h.usecase.ListPending(c.Request.Context())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": response.FromBudgets(budgets)})
}

func (h *BudgetHandler) GetBudgetByID(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": response.FromBudget(b)})
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrInvalidBudgetContact),
		errors.Is(err, usecase.ErrInvalidBudgetEmail),
		errors.Is(err, usecase.ErrInvalidBudgetDetails),
		errors.Is(err, usecase.ErrInvalidBudgetValue),
		errors.Is(err, usecase.ErrInvalidBudgetStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Orçamento não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
