package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Upload authorization and file-presence checks run before any storage
// access, so they are testable without a database.

func uploadContext(t *testing.T, body *bytes.Buffer, contentType string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest("POST", "/api/company/upload-document", body)
	req.Header.Set("Content-Type", contentType)
	c.Request = req
	return c, w
}

func multipartBody(t *testing.T, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("requestId", "12"))
	if withFile {
		fw, err := mw.CreateFormFile("document", "receipt.pdf")
		require.NoError(t, err)
		_, err = fw.Write([]byte("%PDF-1.7"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestUploadDocumentWithoutSessionCompany(t *testing.T) {
	h := NewCompanyHandler(nil, nil, nil)

	body, contentType := multipartBody(t, true)
	c, w := uploadContext(t, body, contentType)
	// No company claim in the context.
	h.UploadDocument(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "CompanyID not found.")
}

func TestUploadDocumentWithoutFile(t *testing.T) {
	h := NewCompanyHandler(nil, nil, nil)

	body, contentType := multipartBody(t, false)
	c, w := uploadContext(t, body, contentType)
	c.Set("company_id", 5)
	h.UploadDocument(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file uploaded.")
}
