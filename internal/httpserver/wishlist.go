package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeflow/storefront/internal/service"
	"github.com/storeflow/storefront/internal/transport"
)

type WishlistHTTP struct {
	Svc *service.WishlistService
}

func (h *WishlistHTTP) GetWishlist(c echo.Context) error {
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

func (h *WishlistHTTP) AddItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req transport.AddWishlistItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.Svc.AddItem(c.Request().Context(), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *WishlistHTTP) RemoveItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	productID, err := paramUint(c, "productId")
	if err != nil {
		return err
	}
	if err := h.Svc.RemoveItem(c.Request().Context(), userID, productID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *WishlistHTTP) Clear(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	if err := h.Svc.Clear(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
