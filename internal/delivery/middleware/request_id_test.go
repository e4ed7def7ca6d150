package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "catalog/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "reuses caller id", incoming: "checkout-42.retry_1", keep: true},
		{name: "generates when absent", incoming: ""},
		{name: "replaces id with spaces", incoming: "abc def"},
		{name: "replaces oversized id", incoming: strings.Repeat("a", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(buf, nil)))

			e := echo.New()
			var ctxRequestID string
			e.GET("/products/:id", func(c echo.Context) error {
				ctx := c.Request().Context()
				ctxRequestID = deliverycontext.GetRequestIDFromContext(ctx)
				deliverycontext.GetLogger(ctx).Info("handled")

				return c.NoContent(http.StatusNoContent)
			}, m.Process)

			req := httptest.NewRequest(http.MethodGet, "/products/123", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, got, ctxRequestID)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}

			assert.Contains(t, buf.String(), "request_id="+got)
			assert.Contains(t, buf.String(), "method=GET")
			assert.Contains(t, buf.String(), "route=/products/:id")
		})
	}
}
