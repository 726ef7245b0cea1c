package validators

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

type sample struct {
	Name  string `validate:"required"`
	Limit int    `validate:"min=0,max=100"`
}

func TestValidate(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(sample{Name: "bmw", Limit: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := v.Validate(sample{Limit: 500})
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected a 400 HTTPError, got %v", err)
	}
}
