package read_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/vendor-registry/internal/http/handlers/vendors/read"
	"github.com/magabrotheeeer/vendor-registry/internal/http/response"
	"github.com/magabrotheeeer/vendor-registry/internal/models"
	"github.com/magabrotheeeer/vendor-registry/internal/storage/repository"
)

// Мок для Service
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Read(ctx context.Context, vendorUID string) (*models.Vendor, error) {
	args := m.Called(ctx, vendorUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReadHandler(t *testing.T) {
	vendorUID := "550e8400-e29b-41d4-a716-446655440000"
	vendor := &models.Vendor{
		UID:      vendorUID,
		Username: "testvendor",
		Email:    "vendor@example.com",
		Firms: []*models.Firm{
			{UID: "firm-uid", Name: "Acme Inc"},
		},
	}

	tests := []struct {
		name       string
		id         string
		setupMocks func(s *ServiceMock)
		wantStatus int
		wantError  string
	}{
		{
			name: "successful read with firms",
			id:   vendorUID,
			setupMocks: func(s *ServiceMock) {
				s.On("Read", mock.Anything, vendorUID).Return(vendor, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid uuid",
			id:         "not-a-uuid",
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid vendor id",
		},
		{
			name: "vendor not found",
			id:   "660e8400-e29b-41d4-a716-446655440001",
			setupMocks: func(s *ServiceMock) {
				s.On("Read", mock.Anything, "660e8400-e29b-41d4-a716-446655440001").
					Return(nil, repository.ErrVendorNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantError:  "vendor not found",
		},
		{
			name: "service error",
			id:   vendorUID,
			setupMocks: func(s *ServiceMock) {
				s.On("Read", mock.Anything, vendorUID).
					Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "could not read vendor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(ServiceMock)
			tt.setupMocks(service)

			handler := read.New(newNoopLogger(), service)

			r := chi.NewRouter()
			r.Get("/vendor/single-vendor/{id}", handler.ServeHTTP)

			req := httptest.NewRequest(http.MethodGet, "/vendor/single-vendor/"+tt.id, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

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
				got, ok := data["vendor"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "testvendor", got["username"])
				firms, ok := got["firm"].([]any)
				require.True(t, ok)
				assert.Len(t, firms, 1)
			}

			service.AssertExpectations(t)
		})
	}
}
