package convert

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amincahcepu/Remote-Docling/internal/engine"
	"github.com/amincahcepu/Remote-Docling/internal/models"
	"github.com/amincahcepu/Remote-Docling/pkg/logger"
	"github.com/amincahcepu/Remote-Docling/pkg/worker"
)

type ConversionService struct {
	engine  engine.Converter
	pool    *worker.Pool
	logger  logger.ContextLogger
	timeout time.Duration
}

// NewService creates the orchestrator. timeout bounds a single
// conversion, slot wait included; zero means no budget.
func NewService(eng engine.Converter, pool *worker.Pool, log logger.ContextLogger, timeout time.Duration) Service {
	return &ConversionService{
		engine:  eng,
		pool:    pool,
		logger:  log,
		timeout: timeout,
	}
}

// pipelineOptions is the fixed conversion policy applied to every
// request: OCR on, table structure on, cell matching on, pdfium
// parsing backend. Not configurable.
func pipelineOptions() engine.PipelineOptions {
	return engine.PipelineOptions{
		DoOCR:            true,
		DoTableStructure: true,
		DoCellMatching:   true,
		PDFBackend:       engine.BackendPyPdfium,
	}
}

func (s *ConversionService) Convert(ctx context.Context, path string) (*models.ConversionResult, error) {
	log := s.logger.FromContext(ctx)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := s.pool.Acquire(ctx); err != nil {
		return nil, s.failure(log, path, start, err)
	}
	defer s.pool.Release()

	doc, err := s.engine.Convert(ctx, path, pipelineOptions())
	if err != nil {
		return nil, s.failure(log, path, start, err)
	}

	markdown := doc.ExportMarkdown()
	log.Info("Conversion successful",
		logger.String("path", path),
		logger.Int("output_length", len(markdown)),
		logger.Duration("elapsed", time.Since(start)))

	return &models.ConversionResult{
		Status:     models.StatusSuccess,
		Markdown:   markdown,
		TextLength: len(markdown),
	}, nil
}

// failure logs full diagnostics and returns the sanitized error. The
// raw error never reaches the caller.
func (s *ConversionService) failure(log logger.Logger, path string, start time.Time, err error) error {
	log.Error("Conversion failed",
		logger.String("path", path),
		logger.String("error_type", fmt.Sprintf("%T", err)),
		logger.Duration("elapsed", time.Since(start)),
		logger.Error(err))

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return ErrEngineFailure
}
