package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amincahcepu/Remote-Docling/internal/auth"
	"github.com/amincahcepu/Remote-Docling/internal/models"
	"github.com/amincahcepu/Remote-Docling/internal/service/convert"
	"github.com/amincahcepu/Remote-Docling/internal/utils/validator"
	"github.com/amincahcepu/Remote-Docling/pkg/logger"
	"github.com/amincahcepu/Remote-Docling/pkg/storage"
)

// ConvertResponse is the success payload of POST /convert-pdf.
type ConvertResponse struct {
	Status     string `json:"status"`
	Filename   string `json:"filename"`
	TextLength int    `json:"text_length"`
	Markdown   string `json:"markdown"`
}

// ErrorResponse is the failure payload for every error status.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ConvertHandler drives one upload through authentication, validation,
// scratch storage and conversion. Checks run in a fixed order: key,
// extension, size; the extension check happens before any of the body
// is read.
type ConvertHandler struct {
	guard     *auth.Guard
	validator *validator.UploadValidator
	store     *storage.TempStore
	converter convert.Service
	logger    logger.Logger
}

func NewConvertHandler(
	guard *auth.Guard,
	uploadValidator *validator.UploadValidator,
	store *storage.TempStore,
	converter convert.Service,
	log logger.Logger,
) *ConvertHandler {
	return &ConvertHandler{
		guard:     guard,
		validator: uploadValidator,
		store:     store,
		converter: converter,
		logger:    log,
	}
}

// ConvertPDF handles POST /convert-pdf.
func (h *ConvertHandler) ConvertPDF(c *gin.Context) {
	requestID := uuid.New().String()
	ctx := logger.WithRequestID(c.Request.Context(), requestID)
	log := h.logger.With(logger.String("request_id", requestID))

	if err := h.guard.Verify(c.GetHeader(auth.HeaderAPIKey)); err != nil {
		h.respondError(c, http.StatusUnauthorized, "Invalid API key")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		log.Warn("Invalid file upload", logger.Error(err))
		h.respondError(c, http.StatusBadRequest, "Invalid file upload")
		return
	}
	defer file.Close()

	log = log.With(logger.String("filename", header.Filename))

	if err := h.validator.CheckType(header.Filename); err != nil {
		log.Warn("Invalid file type", logger.Int64("declared_size", header.Size))
		h.respondError(c, http.StatusBadRequest, "Only PDF files are supported")
		return
	}

	content, err := h.readBody(file)
	if err != nil {
		log.Warn("Failed to read upload", logger.Error(err))
		h.respondError(c, http.StatusBadRequest, "Invalid file upload")
		return
	}
	upload := &models.IncomingUpload{
		Filename:     header.Filename,
		Content:      content,
		DeclaredSize: header.Size,
	}

	if err := h.validator.CheckSize(int64(len(upload.Content))); err != nil {
		log.Warn("File too large",
			logger.Int("size_bytes", len(upload.Content)),
			logger.Int64("max_size_bytes", h.validator.MaxFileSize()))
		h.respondError(c, http.StatusRequestEntityTooLarge, h.sizeLimitDetail())
		return
	}

	var result *models.ConversionResult
	err = h.store.WithFile(upload.Content, func(path string) error {
		log.Info("Processing file",
			logger.Int("size_bytes", len(upload.Content)),
			logger.String("temp_path", path))

		converted, convertErr := h.converter.Convert(ctx, path)
		result = converted
		return convertErr
	})
	if err != nil {
		log.Error("Failed to process file", logger.Error(err))
		h.respondError(c, http.StatusInternalServerError,
			"An error occurred while processing the PDF file")
		return
	}

	c.JSON(http.StatusOK, ConvertResponse{
		Status:     string(result.Status),
		Filename:   upload.Filename,
		TextLength: result.TextLength,
		Markdown:   result.Markdown,
	})
}

// readBody reads at most MaxFileSize+1 bytes; the extra byte lets the
// size check see the violation without buffering arbitrary input.
func (h *ConvertHandler) readBody(file multipart.File) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(file, h.validator.MaxFileSize()+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return content, nil
}

func (h *ConvertHandler) sizeLimitDetail() string {
	maxMB := float64(h.validator.MaxFileSize()) / (1024 * 1024)
	return fmt.Sprintf("File size exceeds maximum limit of %.0fMB", maxMB)
}

func (h *ConvertHandler) respondError(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorResponse{Detail: detail})
}
