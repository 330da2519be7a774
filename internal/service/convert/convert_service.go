package convert

import (
	"context"
	"errors"

	"github.com/amincahcepu/Remote-Docling/internal/models"
)

var (
	// ErrEngineFailure is the sanitized error for any engine problem.
	// Diagnostics stay in the logs; callers never see engine internals.
	ErrEngineFailure = errors.New("conversion engine failure")
	// ErrTimeout reports a conversion exceeding the configured budget.
	ErrTimeout = errors.New("conversion timed out")
)

// Service orchestrates one PDF conversion: fixed pipeline policy,
// bounded concurrency, sanitized failures.
type Service interface {
	Convert(ctx context.Context, path string) (*models.ConversionResult, error)
}
