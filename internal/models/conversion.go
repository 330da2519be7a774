package models

// ConversionStatus classifies the outcome of one conversion
type ConversionStatus string

const (
	StatusSuccess ConversionStatus = "success"
	StatusFailure ConversionStatus = "failure"
)

// IncomingUpload is one uploaded document as received, before validation
type IncomingUpload struct {
	Filename     string `json:"filename"`
	Content      []byte `json:"-"`
	DeclaredSize int64  `json:"declaredSize"`
}

// ConversionResult carries the rendered markdown for one document
type ConversionResult struct {
	Status     ConversionStatus `json:"status"`
	Markdown   string           `json:"markdown"`
	TextLength int              `json:"textLength"`
}
