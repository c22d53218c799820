package careers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"consultancy-backend/internal/mail"
)

type fakeMailer struct {
	sent []mail.Message
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func newRouter(mailer mail.Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &Service{Mailer: mailer, Recipient: "careers@example.co.uk"}
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group(""))
	return r
}

type cvFile struct {
	name        string
	contentType string
	data        []byte
}

func buildForm(t *testing.T, fields map[string]string, file *cvFile) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, val := range fields {
		if err := writer.WriteField(key, val); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if file != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="cv"; filename="`+file.name+`"`)
		header.Set("Content-Type", file.contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(file.data); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"fullName":        "Jane Doe",
		"email":           "jane@example.com",
		"phone":           "07700900123",
		"linkedin":        "https://www.linkedin.com/in/janedoe",
		"currentPosition": "Operations Manager",
		"coverLetter":     strings.Repeat("I would like to join your consultancy. ", 3),
		"consent":         "true",
	}
}

func submit(t *testing.T, router *gin.Engine, fields map[string]string, file *cvFile) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := buildForm(t, fields, file)
	req := httptest.NewRequest(http.MethodPost, "/submit-cv", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func errorBody(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var out struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return out.Error
}

func TestSubmitCVSuccessKeepsAttachmentName(t *testing.T) {
	mailer := &fakeMailer{}
	router := newRouter(mailer)

	resp := submit(t, router, validFields(), &cvFile{
		name:        "Jane Doe CV.pdf",
		contentType: "application/pdf",
		data:        makePDF(t, 4<<20),
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if len(msg.Attachments) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(msg.Attachments))
	}
	if msg.Attachments[0].Filename != "Jane Doe CV.pdf" {
		t.Errorf("attachment name = %q, want original upload name", msg.Attachments[0].Filename)
	}
	if msg.ReplyTo != "jane@example.com" {
		t.Errorf("reply-to = %q", msg.ReplyTo)
	}
}

func TestSubmitCVTooLarge(t *testing.T) {
	mailer := &fakeMailer{}
	resp := submit(t, newRouter(mailer), validFields(), &cvFile{
		name:        "cv.pdf",
		contentType: "application/pdf",
		data:        makePDF(t, 6<<20),
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if got := errorBody(t, resp); !strings.Contains(got, "5 MB") {
		t.Fatalf("expected file-size error, got %q", got)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("no dispatch for oversized CV")
	}
}

func TestSubmitCVWrongType(t *testing.T) {
	mailer := &fakeMailer{}
	resp := submit(t, newRouter(mailer), validFields(), &cvFile{
		name:        "cv.docx",
		contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		data:        bytes.Repeat([]byte("PK docx "), 512*1024),
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if got := errorBody(t, resp); !strings.Contains(got, "PDF") {
		t.Fatalf("expected file-type error, got %q", got)
	}
}

func TestSubmitCVMissingFile(t *testing.T) {
	mailer := &fakeMailer{}
	resp := submit(t, newRouter(mailer), validFields(), nil)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if got := errorBody(t, resp); !strings.Contains(got, "attach") {
		t.Fatalf("expected missing-file error, got %q", got)
	}
}

func TestSubmitCVWithoutConsent(t *testing.T) {
	mailer := &fakeMailer{}
	fields := validFields()
	fields["consent"] = "false"
	resp := submit(t, newRouter(mailer), fields, &cvFile{
		name:        "cv.pdf",
		contentType: "application/pdf",
		data:        makePDF(t, 1<<16),
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("no dispatch without consent")
	}
}

func TestSubmitCVShortCoverLetter(t *testing.T) {
	mailer := &fakeMailer{}
	fields := validFields()
	fields["coverLetter"] = "too short"
	resp := submit(t, newRouter(mailer), fields, &cvFile{
		name:        "cv.pdf",
		contentType: "application/pdf",
		data:        makePDF(t, 1<<16),
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if got := errorBody(t, resp); !strings.Contains(got, "cover letter") {
		t.Fatalf("expected coverLetter error, got %q", got)
	}
}

func TestSubmitCVDispatchFailure(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("gmail 500")}
	resp := submit(t, newRouter(mailer), validFields(), &cvFile{
		name:        "cv.pdf",
		contentType: "application/pdf",
		data:        makePDF(t, 1<<16),
	})

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if got := errorBody(t, resp); strings.Contains(got, "gmail") {
		t.Fatalf("dispatch detail must not leak: %q", got)
	}
}
