package docling

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/amincahcepu/Remote-Docling/internal/engine"
	"github.com/amincahcepu/Remote-Docling/pkg/logger"
)

// maxStderr caps how much engine stderr is carried into errors.
const maxStderr = 4096

// Engine runs the docling CLI against files on disk. Each call renders
// markdown into a private scratch directory which is removed after the
// output is read back.
type Engine struct {
	bin    string
	logger logger.Logger
}

// New resolves the docling binary and returns an engine bound to it.
// name may be a bare command looked up on PATH or an absolute path.
// Resolution failure is surfaced here so the service refuses to start
// without its engine.
func New(name string, log logger.Logger) (*Engine, error) {
	if name == "" {
		name = "docling"
	}
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("docling binary %q not found: %w", name, err)
	}
	return &Engine{bin: bin, logger: log}, nil
}

// Bin returns the resolved binary path.
func (e *Engine) Bin() string {
	return e.bin
}

// Convert renders the PDF at path to markdown.
//
// Table structure and cell matching are always on in the CLI pipeline;
// options asking to disable them are rejected rather than silently
// ignored.
func (e *Engine) Convert(ctx context.Context, path string, opts engine.PipelineOptions) (engine.Document, error) {
	if !opts.DoTableStructure || !opts.DoCellMatching {
		return nil, fmt.Errorf("docling CLI cannot disable table structure or cell matching")
	}

	outDir, err := os.MkdirTemp("", "docling-out-")
	if err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	defer os.RemoveAll(outDir)

	args := buildArgs(path, outDir, opts)
	cmd := exec.CommandContext(ctx, e.bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Let Wait return even if a child keeps the pipes open.
	cmd.WaitDelay = 5 * time.Second

	start := time.Now()
	e.logger.Debug("Running conversion engine",
		logger.String("bin", e.bin),
		logger.Any("args", args))

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("docling run aborted: %w", ctx.Err())
		}
		return nil, fmt.Errorf("docling failed: %w: %s", err, summarize(stderr.String()))
	}

	e.logger.Debug("Conversion engine finished",
		logger.Duration("elapsed", time.Since(start)))

	md, err := os.ReadFile(outputPath(path, outDir))
	if err != nil {
		return nil, fmt.Errorf("failed to read docling output: %w: %s", err, summarize(stderr.String()))
	}
	return &document{markdown: string(md)}, nil
}

// buildArgs assembles the CLI invocation for one run.
func buildArgs(input, outDir string, opts engine.PipelineOptions) []string {
	args := []string{"--from", "pdf", "--to", "md", "--output", outDir, "--abort-on-error"}
	if opts.DoOCR {
		args = append(args, "--ocr")
	} else {
		args = append(args, "--no-ocr")
	}
	if opts.PDFBackend != "" {
		args = append(args, "--pdf-backend", string(opts.PDFBackend))
	}
	if opts.DoTableStructure {
		args = append(args, "--table-mode", "accurate")
	}
	return append(args, input)
}

// outputPath is where the CLI drops the rendered markdown: the input's
// base name with the extension swapped for .md.
func outputPath(input, outDir string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, stem+".md")
}

func summarize(stderr string) string {
	s := strings.TrimSpace(stderr)
	if s == "" {
		return "no stderr output"
	}
	if len(s) > maxStderr {
		s = s[:maxStderr] + "..."
	}
	return s
}

type document struct {
	markdown string
}

func (d *document) ExportMarkdown() string {
	return d.markdown
}
