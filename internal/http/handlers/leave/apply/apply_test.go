package apply

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chweng/leave-system/internal/models"
)

// MockService реализует интерфейс apply.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Apply(ctx context.Context, req models.DummyLeave) (models.LeaveRequest, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.LeaveRequest), args.Error(1)
}

func TestApplyHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная подача заявки",
			requestBody: models.DummyLeave{
				StudentID: "12156208",
				Date:      "2024-01-10",
				Reason:    "personal",
			},
			setupMock: func(m *MockService) {
				m.On("Apply", mock.Anything, mock.AnythingOfType("models.DummyLeave")).
					Return(models.LeaveRequest{
						ID:        3,
						StudentID: "12156208",
						Date:      "2024-01-10",
						Reason:    "personal",
						Status:    models.StatusPending,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":3`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"error","message":"invalid request body"}`,
		},
		{
			name: "отсутствует дата",
			requestBody: models.DummyLeave{
				StudentID: "12156208",
				Reason:    "personal",
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Date is a required field`,
		},
		{
			name:           "все поля пустые",
			requestBody:    models.DummyLeave{},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field StudentID is a required field, field Date is a required field, field Reason is a required field`,
		},
		{
			name: "ошибка сервиса",
			requestBody: models.DummyLeave{
				StudentID: "12156208",
				Date:      "2024-01-10",
				Reason:    "personal",
			},
			setupMock: func(m *MockService) {
				m.On("Apply", mock.Anything, mock.AnythingOfType("models.DummyLeave")).
					Return(models.LeaveRequest{}, errors.New("store closed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"error","message":"could not create leave request"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/apply", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}

func TestApplyHandler_CreatedShape(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	created := models.LeaveRequest{
		ID:        3,
		StudentID: "12156208",
		Date:      "2024-01-10",
		Reason:    "personal",
		Status:    models.StatusPending,
	}

	mockService := new(MockService)
	mockService.On("Apply", mock.Anything, mock.AnythingOfType("models.DummyLeave")).
		Return(created, nil)

	handler := New(logger, mockService)

	body, err := json.Marshal(models.DummyLeave{
		StudentID: "12156208",
		Date:      "2024-01-10",
		Reason:    "personal",
	})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/apply", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	var resp struct {
		Status string              `json:"status"`
		Data   models.LeaveRequest `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, created, resp.Data)
}
