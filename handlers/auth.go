package handlers

import (
	"errors"
	"net/http"

	"cleancare/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the phone-verification sign-in flow.
type AuthHandler struct {
	Svc    user.AuthService
	Logger *zap.Logger
}

func authErrorStatus(code string) int {
	switch code {
	case user.CodeSessionNotFound:
		return http.StatusNotFound
	case user.CodeOTPInvalid:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

// RequestOTP handles POST /api/auth/otp/request.
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var body struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	sessionID, err := h.Svc.RequestOTP(c.Request.Context(), body.Phone)
	if err != nil {
		var authErr *user.AuthError
		if errors.As(err, &authErr) {
			c.JSON(authErrorStatus(authErr.Code), authErr)
			return
		}
		h.Logger.Error("RequestOTP: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start verification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": user.StatusOTPSent, "sessionId": sessionID})
}

// VerifyOTP handles POST /api/auth/otp/verify.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var body struct {
		SessionID string `json:"sessionId" binding:"required"`
		Code      string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	resp, err := h.Svc.VerifyOTP(c.Request.Context(), body.SessionID, body.Code)
	if err != nil {
		var authErr *user.AuthError
		if errors.As(err, &authErr) {
			c.JSON(authErrorStatus(authErr.Code), authErr)
			return
		}
		h.Logger.Error("VerifyOTP: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var body struct {
		SessionID string `json:"sessionId" binding:"required"`
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	resp, err := h.Svc.Register(c.Request.Context(), body.SessionID, body.FirstName, body.LastName)
	if err != nil {
		var authErr *user.AuthError
		if errors.As(err, &authErr) {
			c.JSON(authErrorStatus(authErr.Code), authErr)
			return
		}
		h.Logger.Error("Register: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}
