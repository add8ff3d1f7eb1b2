// File: internal/handler/auth/auth.go
package auth

import (
	"context"
	"errors"
	"net/http"

	"fashion-store/internal/api"
	"fashion-store/internal/dto"
	"fashion-store/internal/logging"
	"fashion-store/internal/model"
	"fashion-store/internal/service"

	"github.com/labstack/echo/v4"
)

// AccountService 由 service.Accounts 實作
type AccountService interface {
	Register(ctx context.Context, in service.RegisterInput) (*service.Session, error)
	Login(ctx context.Context, email, password string) (*service.Session, error)
}

// RegisterHandler 建立顧客或賣家帳號並回傳 JWT
// @Summary     註冊使用者
// @Description 建立帳號（role 為 customer 或 seller），成功後直接回傳存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     200  {object} dto.AuthResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /register [post]
func RegisterHandler(accounts AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: service.ErrValidation.Error()})
		}

		sess, err := accounts.Register(c.Request().Context(), service.RegisterInput{
			Email:        req.Email,
			Password:     req.Password,
			Role:         model.Role(req.Role),
			BusinessName: req.BusinessName,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, newAuthResponse(sess))
	}
}

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 查無帳號與密碼錯誤回傳相同訊息
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} dto.AuthResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /login [post]
func LoginHandler(accounts AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: service.ErrValidation.Error()})
		}

		sess, err := accounts.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, newAuthResponse(sess))
	}
}

func newAuthResponse(s *service.Session) dto.AuthResponse {
	return dto.AuthResponse{Token: s.Token, Role: string(s.Role), UserID: s.UserID}
}

func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrDuplicateUser),
		errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: err.Error()})
	}
	logging.FromContext(c.Request().Context()).Error("auth request failed", "error", err)
	return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "internal server error"})
}
