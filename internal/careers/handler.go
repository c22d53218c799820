package careers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"consultancy-backend/internal/forms"
	"consultancy-backend/internal/shared/server/respond"
)

// maxRequestBytes caps the whole multipart body. It sits above MaxCVBytes
// so an oversized CV is reported as a file-size error, not a parse error.
const maxRequestBytes = 10 << 20

// Handler wires the CV endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the CV route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/submit-cv", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	c.Set("form", "cv")
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)

	if err := c.Request.ParseMultipartForm(maxRequestBytes); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request data")
		return
	}

	sub := Submission{
		FullName:        c.PostForm("fullName"),
		Email:           c.PostForm("email"),
		Phone:           c.PostForm("phone"),
		LinkedIn:        c.PostForm("linkedin"),
		CurrentPosition: c.PostForm("currentPosition"),
		CoverLetter:     c.PostForm("coverLetter"),
		Consent:         strings.EqualFold(c.PostForm("consent"), "true"),
	}

	if first := forms.First(sub.Validate()); first != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", first.Message)
		return
	}

	cv, fileErr := readCV(c)
	if fileErr != nil {
		respond.Error(c, http.StatusBadRequest, "file_error", fileErr.Message)
		return
	}
	if fileErr := CheckCV(cv); fileErr != nil {
		respond.Error(c, http.StatusBadRequest, "file_error", fileErr.Message)
		return
	}

	if err := h.Svc.Process(c.Request.Context(), sub, cv); err != nil {
		var fieldErr forms.FieldError
		var fe FileError
		switch {
		case errors.As(err, &fieldErr):
			respond.Error(c, http.StatusBadRequest, "validation_error", fieldErr.Message)
		case errors.As(err, &fe):
			respond.Error(c, http.StatusBadRequest, "file_error", fe.Message)
		default:
			respond.Error(c, http.StatusInternalServerError, "dispatch_failed", "Something went wrong submitting your CV. Please try again later.")
		}
		return
	}

	respond.Message(c, "Thank you for your application. We will review your CV and get back to you.")
}

// readCV pulls the uploaded file out of the multipart form.
func readCV(c *gin.Context) (CV, *FileError) {
	fileHeader, err := c.FormFile("cv")
	if err != nil {
		return CV{}, &FileError{Message: "Please attach your CV"}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return CV{}, &FileError{Message: "We could not read your CV. Please try again."}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return CV{}, &FileError{Message: "We could not read your CV. Please try again."}
	}

	return CV{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
