package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeflow/storefront/internal/service"
	"github.com/storeflow/storefront/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	items, err := h.Svc.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req transport.AddCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.Svc.AddItem(c.Request().Context(), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) UpdateItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	productID, err := paramUint(c, "productId")
	if err != nil {
		return err
	}
	var req transport.UpdateCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.Svc.UpdateItem(c.Request().Context(), userID, productID, req)
	if err != nil {
		return err
	}
	if item == nil {
		// quantity 0 removed the row
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	productID, err := paramUint(c, "productId")
	if err != nil {
		return err
	}
	if err := h.Svc.RemoveItem(c.Request().Context(), userID, productID, c.QueryParam("variant")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHTTP) Clear(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	if err := h.Svc.Clear(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
