package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ragadecode/ragadecode/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("field is required")

	if err.Error() != "field is required" {
		t.Errorf("expected 'field is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid month name", inner)

	if err.Error() != "invalid month name: parse failed" {
		t.Errorf("expected 'invalid month name: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("empty slug")

	wrapped := fmt.Errorf("failed to resolve: %w", original)
	doubleWrapped := fmt.Errorf("view error: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "empty slug" {
		t.Errorf("expected 'empty slug', got %q", ve.Message)
	}
}

func TestNotFoundError(t *testing.T) {
	err := apperr.NewNotFound("unknown month")
	if err.Error() != "unknown month" {
		t.Errorf("expected 'unknown month', got %q", err.Error())
	}

	wrapped := fmt.Errorf("route: %w", err)
	var nf *apperr.NotFoundError
	if !errors.As(wrapped, &nf) {
		t.Fatal("errors.As should find NotFoundError through wrapping")
	}
}

func TestNotFoundError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("upstream down")
	wrapped := fmt.Errorf("view error: %w", plain)

	var nf *apperr.NotFoundError
	if errors.As(wrapped, &nf) {
		t.Fatal("errors.As should NOT find NotFoundError in plain error chain")
	}
}
