package create_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/vendor-registry/internal/http/handlers/firm/create"
	"github.com/magabrotheeeer/vendor-registry/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vendor-registry/internal/http/response"
)

// Мок для Service
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Create(ctx context.Context, vendorUID, name string) (string, error) {
	args := m.Called(ctx, vendorUID, name)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateHandler(t *testing.T) {
	vendorUID := "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		name       string
		body       string
		withAuth   bool
		setupMocks func(s *ServiceMock)
		wantStatus int
		wantError  string
	}{
		{
			name:     "successful create",
			body:     `{"name": "Acme Inc"}`,
			withAuth: true,
			setupMocks: func(s *ServiceMock) {
				s.On("Create", mock.Anything, vendorUID, "Acme Inc").
					Return("firm-uid", nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing auth context",
			body:       `{"name": "Acme Inc"}`,
			withAuth:   false,
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusUnauthorized,
			wantError:  "unauthorized",
		},
		{
			name:       "invalid json",
			body:       `{"name": `,
			withAuth:   true,
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request body",
		},
		{
			name:       "missing name",
			body:       `{}`,
			withAuth:   true,
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "field Name is a required field",
		},
		{
			name:     "service error",
			body:     `{"name": "Acme Inc"}`,
			withAuth: true,
			setupMocks: func(s *ServiceMock) {
				s.On("Create", mock.Anything, vendorUID, "Acme Inc").
					Return("", errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "failed to create firm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(ServiceMock)
			tt.setupMocks(service)

			handler := create.New(newNoopLogger(), service)

			req := httptest.NewRequest(http.MethodPost, "/firm", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.withAuth {
				ctx := context.WithValue(req.Context(), middlewarectx.VendorUID, vendorUID)
				req = req.WithContext(ctx)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)

			var resp response.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			if tt.wantError != "" {
				assert.Equal(t, response.StatusError, resp.Status)
				assert.Contains(t, resp.Error, tt.wantError)
			} else {
				assert.Equal(t, response.StatusOK, resp.Status)
				data, ok := resp.Data.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "firm-uid", data["uid"])
				assert.Equal(t, "Acme Inc", data["name"])
			}

			service.AssertExpectations(t)
		})
	}
}
