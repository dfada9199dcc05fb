package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeflow/storefront/internal/service"
	"github.com/storeflow/storefront/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) Me(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	u, err := h.Svc.Me(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHTTP) UpdateRole(c echo.Context) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	var req transport.UpdateUserRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	u, err := h.Svc.UpdateRole(c.Request().Context(), id, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}
