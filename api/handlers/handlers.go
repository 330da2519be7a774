package handlers

import (
	"github.com/amincahcepu/Remote-Docling/internal/auth"
	"github.com/amincahcepu/Remote-Docling/internal/service/convert"
	"github.com/amincahcepu/Remote-Docling/internal/utils/validator"
	"github.com/amincahcepu/Remote-Docling/pkg/logger"
	"github.com/amincahcepu/Remote-Docling/pkg/storage"
)

type Handlers struct {
	Convert *ConvertHandler
	Meta    *MetaHandler
}

func NewHandlers(
	guard *auth.Guard,
	uploadValidator *validator.UploadValidator,
	store *storage.TempStore,
	converter convert.Service,
	logger logger.Logger,
) *Handlers {
	return &Handlers{
		Convert: NewConvertHandler(guard, uploadValidator, store, converter, logger),
		Meta:    NewMetaHandler(),
	}
}
