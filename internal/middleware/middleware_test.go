package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anonto42/car-blog/backend/pkg/logger"
	"github.com/labstack/echo/v4"
)

func TestRequestIDReachesHandlerAndLog(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf)

	e := echo.New()
	e.Use(RequestID())
	e.Use(RequestLogger(log))

	var seen string
	e.GET("/ping", func(c echo.Context) error {
		seen = logger.RequestID(c.Request().Context())
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	header := rec.Header().Get(echo.HeaderXRequestID)
	if header == "" || seen != header {
		t.Fatalf("expected handler to see the response request id, got %q and %q", seen, header)
	}
	if !strings.Contains(buf.String(), header) || !strings.Contains(buf.String(), "uri=/ping") {
		t.Fatalf("expected the request line to carry the id, got %q", buf.String())
	}
}

func TestRequestIDKeepsIncomingHeader(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "upstream-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if got := rec.Header().Get(echo.HeaderXRequestID); got != "upstream-id" {
		t.Fatalf("expected incoming id to be kept, got %q", got)
	}
}
