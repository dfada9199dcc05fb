package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storeflow/storefront/internal/middleware/auth"
)

type validator interface {
	Validate() error
}

// Every bound input goes through its Validate method; there is no
// route without an attached schema.
func bindAndValidate(c echo.Context, req validator) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	return req.Validate()
}

func paramUint(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(v), nil
}

func callerID(c echo.Context) (uint, error) {
	id, ok := auth.UserIDFromContext(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	return id, nil
}
