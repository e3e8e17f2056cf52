package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrbot/backend/internal/service"
	"github.com/hrbot/backend/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	handler := &AuthHandler{auth: auth}

	group := e.Group("/api/auth")
	group.POST("/check-first-login", handler.checkFirstLogin)
	group.POST("/update-first-login", handler.updateFirstLogin)
	group.POST("/send-otp", handler.sendOTP)
	group.POST("/verify-otp", handler.verifyOTP)
}

func (h *AuthHandler) checkFirstLogin(c echo.Context) error {
	var req CheckFirstLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	firstLogin, err := h.auth.CheckFirstLogin(c.Request().Context(), req.UserID)
	if err != nil {
		c.Logger().Errorf("check first login: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("Failed to check first login status"))
	}

	return c.JSON(http.StatusOK, util.Data("firstLogin", firstLogin))
}

func (h *AuthHandler) updateFirstLogin(c echo.Context) error {
	var req UpdateFirstLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	if err := h.auth.UpdateFirstLogin(c.Request().Context(), req.UserID, req.FirstLogin); err != nil {
		switch {
		case errors.Is(err, service.ErrEmployeeNotFound):
			return c.JSON(http.StatusNotFound, util.Error("User not found"))
		default:
			c.Logger().Errorf("update first login: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("Failed to update first login status"))
		}
	}

	return c.JSON(http.StatusOK, util.Success(""))
}

func (h *AuthHandler) sendOTP(c echo.Context) error {
	var req SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	if err := h.auth.IssueOTP(c.Request().Context(), req.Email); err != nil {
		c.Logger().Errorf("send otp: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("Failed to send OTP"))
	}

	return c.JSON(http.StatusOK, util.Success("OTP sent to email"))
}

func (h *AuthHandler) verifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	if err := h.auth.VerifyOTP(c.Request().Context(), req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, service.ErrOTPInvalid):
			return c.JSON(http.StatusBadRequest, util.Error("Invalid OTP"))
		case errors.Is(err, service.ErrOTPExpired):
			return c.JSON(http.StatusBadRequest, util.Error("OTP expired"))
		default:
			c.Logger().Errorf("verify otp: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("Failed to verify OTP"))
		}
	}

	return c.JSON(http.StatusOK, util.Success("OTP verified successfully"))
}
