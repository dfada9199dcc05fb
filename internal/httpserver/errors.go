package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storeflow/storefront/internal/events"
	"github.com/storeflow/storefront/internal/service"
	"github.com/storeflow/storefront/internal/transport"
)

const maxStackLen = 2048

type errorBody struct {
	StatusCode int                    `json:"statusCode"`
	Path       string                 `json:"path"`
	Message    string                 `json:"message"`
	Issues     []transport.FieldIssue `json:"issues,omitempty"`
	Timestamp  string                 `json:"timestamp"`
	Debug      map[string]string      `json:"debug,omitempty"`
}

// NewErrorHandler maps every error escaping a handler onto the wire
// shape {statusCode, path, message, issues?, timestamp, debug?}. The
// debug block never leaves a production process.
func NewErrorHandler(logger *slog.Logger, tracker *events.Tracker, production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error"
		var issues []transport.FieldIssue

		var ve *transport.ValidationError
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ve):
			status = http.StatusBadRequest
			message = "Validation failed"
			issues = ve.Issues
		case errors.As(err, &he):
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		case errors.Is(err, service.ErrValidation):
			status = http.StatusBadRequest
			message = err.Error()
		case errors.Is(err, service.ErrUnauthorized):
			status = http.StatusUnauthorized
			message = err.Error()
		case errors.Is(err, service.ErrNotFound):
			status = http.StatusNotFound
			message = err.Error()
		case errors.Is(err, service.ErrConflict):
			status = http.StatusConflict
			message = err.Error()
		default:
			if !production {
				message = err.Error()
			}
		}

		method := c.Request().Method
		path := c.Request().URL.Path
		logger.Error("request failed",
			"method", method,
			"path", path,
			"status", status,
			"message", err.Error(),
		)

		// best-effort, failures inside the hook are swallowed there
		tracker.Report(method, path, status, err)

		body := errorBody{
			StatusCode: status,
			Path:       path,
			Message:    message,
			Issues:     issues,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		}
		if !production {
			stack := debug.Stack()
			if len(stack) > maxStackLen {
				stack = stack[:maxStackLen]
			}
			body.Debug = map[string]string{
				"error": err.Error(),
				"stack": string(stack),
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}
