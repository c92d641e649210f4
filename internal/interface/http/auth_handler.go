package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sali72/expense-tracker/internal/application"
	"github.com/sali72/expense-tracker/internal/interface/middleware"
	"github.com/sali72/expense-tracker/pkg/response"
	"github.com/sali72/expense-tracker/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type tokenRequest struct {
	ID string `json:"id" binding:"required,uuid"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

func toTokenResponse(token string, exp time.Time) tokenResponse {
	return tokenResponse{Token: token, ExpiresAt: exp.UTC().Format(time.RFC3339Nano)}
}

// Token handles POST /auth/token/: issues a bearer token for a registered
// user id.
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToDetails(err))
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		response.ValidationFailed(c, map[string]string{"id": "must be a valid UUID"})
		return
	}
	token, exp, err := h.Svc.IssueToken(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Detail(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		response.StoreError(c)
		return
	}
	c.JSON(http.StatusOK, toTokenResponse(token, exp))
}

// Refresh handles POST /auth/refresh/: a valid bearer token yields a fresh
// token for the same subject.
func (h *AuthHandler) Refresh(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}
	token, exp, err := h.Svc.Refresh(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Detail(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		response.StoreError(c)
		return
	}
	c.JSON(http.StatusOK, toTokenResponse(token, exp))
}
