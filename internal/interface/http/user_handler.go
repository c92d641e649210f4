package handlers

import (
	"errors"
	"fmt"
	"net/http"

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

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	ID string `json:"id" binding:"required,uuid"`
}

type userJSON struct {
	ID         string   `json:"id"`
	ExpenseIDs []string `json:"expense_ids"`
}

func toUserJSON(u *entity.User) userJSON {
	ids := make([]string, 0, len(u.ExpenseIDs))
	for _, id := range u.ExpenseIDs {
		ids = append(ids, id.String())
	}
	return userJSON{ID: u.ID.String(), ExpenseIDs: ids}
}

// Register handles POST /users/: anyone may self-register by supplying a
// fresh UUID.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Tag() == "required" {
					response.Detail(c, http.StatusBadRequest, "id is required")
					return
				}
			}
			response.Detail(c, http.StatusBadRequest, "user already exists or invalid UUID format")
			return
		}
		response.Detail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "user already exists or invalid UUID format")
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			response.Detail(c, http.StatusBadRequest, "user already exists or invalid UUID format")
			return
		}
		response.StoreError(c)
		return
	}
	c.JSON(http.StatusCreated, toUserJSON(u))
}

// Delete handles DELETE /users/?id=. The id comes from the query string; an
// unparseable id is reported the same as a missing user.
func (h *UserHandler) Delete(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		response.Detail(c, http.StatusBadRequest, "id parameter is required")
		return
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.Detail(c, http.StatusNotFound, "user not found or invalid UUID format")
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Detail(c, http.StatusNotFound, "user not found or invalid UUID format")
			return
		}
		response.StoreError(c)
		return
	}
	response.Message(c, http.StatusOK, "user deleted")
}

// TestAuth handles GET /users/test-auth/: confirms the caller's token
// resolves to a subject.
func (h *UserHandler) TestAuth(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Auth test successful for user %s", uid))
}
