package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeflow/storefront/internal/db"
)

type HealthHTTP struct {
	DB *db.Client
}

func (h *HealthHTTP) Health(c echo.Context) error {
	dbState := "ok"
	if err := h.DB.Ping(); err != nil {
		dbState = "down"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":   "ok",
		"database": dbState,
	})
}
