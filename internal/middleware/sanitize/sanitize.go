package sanitize

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"unicode"

	"github.com/labstack/echo/v4"
)

// Middleware rewrites JSON request bodies with every string trimmed
// and stripped of control characters, arrays and nested objects
// included. Non-JSON bodies pass through untouched.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.ContentLength == 0 {
				return next(c)
			}
			if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
				return next(c)
			}

			raw, err := io.ReadAll(req.Body)
			if err != nil {
				return next(c)
			}
			_ = req.Body.Close()

			var payload any
			if err := json.Unmarshal(raw, &payload); err != nil {
				// let the binder produce the 400
				req.Body = io.NopCloser(bytes.NewReader(raw))
				return next(c)
			}

			cleaned, err := json.Marshal(Value(payload))
			if err != nil {
				req.Body = io.NopCloser(bytes.NewReader(raw))
				return next(c)
			}

			req.Body = io.NopCloser(bytes.NewReader(cleaned))
			req.ContentLength = int64(len(cleaned))
			return next(c)
		}
	}
}

// Value walks any decoded JSON value and cleans every string in it.
func Value(v any) any {
	switch t := v.(type) {
	case string:
		return String(t)
	case map[string]any:
		for k, val := range t {
			t[k] = Value(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = Value(val)
		}
		return t
	default:
		return v
	}
}

func String(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
