package upload_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/vendor-registry/internal/http/handlers/upload"
	"github.com/magabrotheeeer/vendor-registry/internal/http/response"
)

// Мок для Service
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Save(file io.Reader, originalName string) (string, error) {
	args := m.Called(file, originalName)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMultipartRequest(t *testing.T, fieldName, fileName, content string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadHandler_Success(t *testing.T) {
	service := new(ServiceMock)
	service.On("Save", mock.Anything, "photo.png").
		Return("/uploads/some-uuid.png", nil).Once()

	handler := upload.New(newNoopLogger(), service)

	req := newMultipartRequest(t, "image", "photo.png", "fake image bytes")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, response.StatusOK, resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/uploads/some-uuid.png", data["path"])
	assert.Equal(t, "file uploaded successfully", data["message"])

	service.AssertExpectations(t)
}

func TestUploadHandler_MissingFileField(t *testing.T) {
	service := new(ServiceMock)
	handler := upload.New(newNoopLogger(), service)

	// Поле называется не image
	req := newMultipartRequest(t, "file", "photo.png", "fake image bytes")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "missing file field image")

	service.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUploadHandler_NotMultipart(t *testing.T) {
	service := new(ServiceMock)
	handler := upload.New(newNoopLogger(), service)

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("plain body"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "invalid multipart form")
}

func TestUploadHandler_SaveError(t *testing.T) {
	service := new(ServiceMock)
	service.On("Save", mock.Anything, "photo.png").
		Return("", errors.New("disk full")).Once()

	handler := upload.New(newNoopLogger(), service)

	req := newMultipartRequest(t, "image", "photo.png", "fake image bytes")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "failed to store file")

	service.AssertExpectations(t)
}
