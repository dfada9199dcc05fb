package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeflow/storefront/internal/service"
	"github.com/storeflow/storefront/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req transport.CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	orderID, err := h.Svc.Create(c.Request().Context(), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"order_id": orderID})
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.Svc.List(c.Request().Context(), userID))
}
