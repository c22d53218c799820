package careers

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// MaxCVBytes is the attachment size limit.
const MaxCVBytes = 5 << 20 // 5 MiB

// CV is the uploaded attachment.
type CV struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CheckCV enforces the attachment constraints: the file must be present,
// must be a PDF, and must not exceed MaxCVBytes. The PDF check goes beyond
// the declared MIME type; the bytes must actually parse as a PDF.
func CheckCV(cv CV) *FileError {
	if len(cv.Data) == 0 {
		return &FileError{Message: "Please attach your CV"}
	}
	if cv.ContentType != "application/pdf" {
		return &FileError{Message: "Your CV must be a PDF file"}
	}
	if len(cv.Data) > MaxCVBytes {
		return &FileError{Message: "Your CV must be 5 MB or smaller"}
	}
	if _, err := pdf.NewReader(bytes.NewReader(cv.Data), int64(len(cv.Data))); err != nil {
		return &FileError{Message: "Your CV must be a PDF file"}
	}
	return nil
}
