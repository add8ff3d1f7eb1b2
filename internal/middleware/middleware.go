package middleware

import (
	"net/http"
	"strings"

	"fashion-store/internal/dto"
	"fashion-store/internal/logging"
	"fashion-store/internal/model"
	"fashion-store/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	ContextUserKey = "user"
	bearerPrefix   = "Bearer "
)

// TokenVerifier 由 service.TokenService 實作
type TokenVerifier interface {
	VerifyAccessToken(token string) (*service.Claims, error)
}

// extractToken 取出 "Bearer <token>"，格式不符或為空時回傳 false
func extractToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", false
	}
	tok := authHeader[len(bearerPrefix):]
	if tok == "" || strings.ContainsAny(tok, " \t") {
		return "", false
	}
	return tok, true
}

// RequireAuth 缺少 token 回 401，驗證失敗回 403；成功時把 claims 放進 context
func RequireAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, ok := extractToken(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "authentication required"})
			}
			claims, err := verifier.VerifyAccessToken(tok)
			if err != nil {
				logging.FromContext(c.Request().Context()).Debug("token rejected", "error", err)
				return c.JSON(http.StatusForbidden, dto.HTTPError{Error: "invalid token"})
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireRole 必須接在 RequireAuth 之後
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := CurrentUser(c)
			if claims == nil {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "authentication required"})
			}
			for _, r := range roles {
				if claims.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, dto.HTTPError{Error: "forbidden"})
		}
	}
}

// CurrentUser 取出 RequireAuth 放入的 claims，未驗證時回傳 nil
func CurrentUser(c echo.Context) *service.Claims {
	claims, _ := c.Get(ContextUserKey).(*service.Claims)
	return claims
}
