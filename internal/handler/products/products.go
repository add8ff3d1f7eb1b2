// File: internal/handler/products/products.go
package products

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"fashion-store/internal/api"
	"fashion-store/internal/dto"
	"fashion-store/internal/logging"
	"fashion-store/internal/middleware"
	"fashion-store/internal/model"
	"fashion-store/internal/service"

	"github.com/labstack/echo/v4"
)

// CatalogService 由 service.Catalog 實作
type CatalogService interface {
	List(ctx context.Context, sellerID *int) ([]model.Product, error)
	Search(ctx context.Context, q string) ([]model.Product, error)
	Create(ctx context.Context, actor *service.Claims, in service.ProductInput) (*model.Product, error)
	Delete(ctx context.Context, actor *service.Claims, productID int) error
}

// ListHandler 公開列出商品
// @Summary     列出商品
// @Description 依建立時間新到舊排序，可用 seller_id 篩選單一賣家
// @Tags        products
// @Produce     json
// @Param       seller_id query    int false "賣家 ID"
// @Success     200       {array}  dto.ProductResponse
// @Failure     400       {object} dto.HTTPError
// @Failure     500       {object} dto.HTTPError
// @Router      /products [get]
func ListHandler(catalog CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var sellerID *int
		if raw := c.QueryParam("seller_id"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "invalid seller_id"})
			}
			sellerID = &id
		}

		list, err := catalog.List(c.Request().Context(), sellerID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewProductList(list))
	}
}

// SearchHandler 以關鍵字搜尋商品名稱或描述
// @Summary     搜尋商品
// @Description 不分大小寫比對 name 或 description；q 為空時回傳空陣列
// @Tags        products
// @Produce     json
// @Param       q   query    string false "關鍵字"
// @Success     200 {array}  dto.ProductResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /search [get]
func SearchHandler(catalog CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := catalog.Search(c.Request().Context(), c.QueryParam("q"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewProductList(list))
	}
}

// CreateHandler 賣家建立商品
// @Summary     建立商品
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateProductRequest true "商品資料"
// @Success     200  {object} dto.SuccessResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /products [post]
func CreateHandler(catalog CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "invalid product"})
		}

		_, err := catalog.Create(c.Request().Context(), middleware.CurrentUser(c), service.ProductInput{
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			Price:       req.Price,
			Stock:       req.Stock,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
	}
}

// DeleteHandler 賣家刪除自己的商品
// @Summary     刪除商品
// @Tags        products
// @Produce     json
// @Param       id  path     int true "商品 ID"
// @Success     200 {object} dto.SuccessResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /products/{id} [delete]
func DeleteHandler(catalog CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, dto.HTTPError{Error: "product not found"})
		}

		if err := catalog.Delete(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
	}
}

func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "invalid product"})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, dto.HTTPError{Error: "forbidden"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, dto.HTTPError{Error: "product not found"})
	}
	logging.FromContext(c.Request().Context()).Error("product request failed", "error", err)
	return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "internal server error"})
}
