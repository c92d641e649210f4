package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sali72/expense-tracker/internal/application"
	"github.com/sali72/expense-tracker/internal/domain/entity"
	"github.com/sali72/expense-tracker/internal/domain/repository"
	"github.com/sali72/expense-tracker/internal/interface/middleware"
	"github.com/sali72/expense-tracker/pkg/response"
)

type ExpenseHandler struct {
	Svc    *application.ExpenseService
	Logger *logrus.Logger
}

func NewExpenseHandler(svc *application.ExpenseService, logger *logrus.Logger) *ExpenseHandler {
	return &ExpenseHandler{Svc: svc, Logger: logger}
}

type createExpenseRequest struct {
	Amount      *float64 `json:"amount" binding:"required"`
	Tag         *string  `json:"tag"`
	Description *string  `json:"description"`
}

type updateExpenseRequest struct {
	Amount      *float64 `json:"amount"`
	Tag         *string  `json:"tag"`
	Description *string  `json:"description"`
}

type expenseJSON struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	CreatedAt   string  `json:"created_at"`
	Tag         string  `json:"tag"`
	Description *string `json:"description"`
}

func toExpenseJSON(e *entity.Expense) expenseJSON {
	return expenseJSON{
		ID:          e.ID.String(),
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
		Tag:         e.Tag,
		Description: e.Description,
	}
}

// expenseID parses the :id path segment. An unparseable id behaves exactly
// like a missing expense.
func expenseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	return id, err == nil
}

// List handles GET /expenses/: every expense of the caller, newest first.
func (h *ExpenseHandler) List(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}
	items, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		response.StoreError(c)
		return
	}
	out := make([]expenseJSON, 0, len(items))
	for i := range items {
		out = append(out, toExpenseJSON(&items[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /expenses/.
func (h *ExpenseHandler) Create(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.Detail(c, http.StatusBadRequest, "amount is required")
			return
		}
		response.Detail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	e, err := h.Svc.Create(c.Request.Context(), uid, application.CreateExpenseInput{
		Amount:      *req.Amount,
		Tag:         req.Tag,
		Description: req.Description,
	})
	if err != nil {
		response.StoreError(c)
		return
	}
	c.JSON(http.StatusCreated, toExpenseJSON(e))
}

// Get handles GET /expenses/:id/.
func (h *ExpenseHandler) Get(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}
	id, ok := expenseID(c)
	if !ok {
		response.Detail(c, http.StatusNotFound, "expense not found")
		return
	}
	e, err := h.Svc.Get(c.Request.Context(), id, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Detail(c, http.StatusNotFound, "expense not found")
			return
		}
		response.StoreError(c)
		return
	}
	c.JSON(http.StatusOK, toExpenseJSON(e))
}

// Update handles PATCH /expenses/:id/: only the fields present in the body
// change; id, created_at and ownership never do.
func (h *ExpenseHandler) Update(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}
	id, ok := expenseID(c)
	if !ok {
		response.Detail(c, http.StatusNotFound, "expense not found")
		return
	}
	var req updateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}
	e, err := h.Svc.Update(c.Request.Context(), id, uid, repository.ExpenseUpdate{
		Amount:      req.Amount,
		Tag:         req.Tag,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Detail(c, http.StatusNotFound, "expense not found")
			return
		}
		response.StoreError(c)
		return
	}
	c.JSON(http.StatusOK, toExpenseJSON(e))
}

// Delete handles DELETE /expenses/:id/ and echoes the deleted record.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}
	id, ok := expenseID(c)
	if !ok {
		response.Detail(c, http.StatusNotFound, "expense not found")
		return
	}
	e, err := h.Svc.Delete(c.Request.Context(), id, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Detail(c, http.StatusNotFound, "expense not found")
			return
		}
		response.StoreError(c)
		return
	}
	c.JSON(http.StatusOK, toExpenseJSON(e))
}
