package engine

import "context"

// Backend selects the engine's PDF parsing implementation.
type Backend string

const (
	// BackendPyPdfium parses PDFs with pdfium. Service default.
	BackendPyPdfium Backend = "pypdfium2"
	// BackendDLParse is the engine's own layout-aware parser.
	BackendDLParse Backend = "dlparse_v2"
)

// PipelineOptions configures a single conversion run.
type PipelineOptions struct {
	// DoOCR runs OCR over scanned or image-only pages.
	DoOCR bool
	// DoTableStructure recovers table structure from layout.
	DoTableStructure bool
	// DoCellMatching maps recovered table cells back to page text.
	DoCellMatching bool
	// PDFBackend picks the parsing backend, engine default when empty.
	PDFBackend Backend
}

// Document is a converted document ready for export.
type Document interface {
	ExportMarkdown() string
}

// Converter turns a PDF on disk into a Document. Implementations own
// all document understanding; callers hand over a filesystem path and
// options, nothing else.
type Converter interface {
	Convert(ctx context.Context, path string, opts PipelineOptions) (Document, error)
}
