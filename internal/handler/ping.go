// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"fashion-store/internal/cache"
	"fashion-store/internal/database"
	"fashion-store/internal/dto"
	"fashion-store/internal/logging"

	"github.com/labstack/echo/v4"
)

const pingKey = "health:ping"

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.PingResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /ping [get]
func PingHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqCtx := ctx.Request().Context()
		if err := db.Ping(reqCtx); err != nil {
			logging.FromContext(reqCtx).Error("database ping failed", "error", err)
			return ctx.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "database unhealthy"})
		}
		if err := c.Set(reqCtx, pingKey, "pong", time.Minute).Err(); err != nil {
			logging.FromContext(reqCtx).Error("cache ping failed", "error", err)
			return ctx.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "cache unhealthy"})
		}
		return ctx.JSON(http.StatusOK, dto.PingResponse{Message: "pong"})
	}
}
