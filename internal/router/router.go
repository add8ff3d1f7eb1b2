// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"fashion-store/internal/cache"
	"fashion-store/internal/database"
	"fashion-store/internal/handler"
	"fashion-store/internal/handler/auth"
	"fashion-store/internal/handler/products"
	"fashion-store/internal/middleware"
	"fashion-store/internal/model"
)

// Deps 為路由所需的共用元件，於 cmd/service 建立後注入
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	Tokens   middleware.TokenVerifier
	Accounts auth.AccountService
	Catalog  products.CatalogService
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 註冊與登入
	api.POST("/register", auth.RegisterHandler(d.Accounts))
	api.POST("/login", auth.LoginHandler(d.Accounts))

	// 公開瀏覽
	api.GET("/products", products.ListHandler(d.Catalog))
	api.GET("/search", products.SearchHandler(d.Catalog))

	// 賣家專屬
	sellerOnly := []echo.MiddlewareFunc{
		middleware.RequireAuth(d.Tokens),
		middleware.RequireRole(model.RoleSeller),
	}
	api.POST("/products", products.CreateHandler(d.Catalog), sellerOnly...)
	api.DELETE("/products/:id", products.DeleteHandler(d.Catalog), sellerOnly...)
}
