package list

import (
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

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, studentID string) ([]models.LeaveRequest, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeaveRequest), args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	seeded := []models.LeaveRequest{
		{ID: 1, StudentID: "12156208", Date: "2023-12-01", Reason: "病假", Status: models.StatusPending},
		{ID: 2, StudentID: "12156231", Date: "2023-12-05", Reason: "事假", Status: models.StatusApproved},
	}

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedIDs    []int
	}{
		{
			name: "без параметра возвращаются все заявки",
			url:  "/api/leaves",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "").Return(seeded, nil)
			},
			expectedStatus: http.StatusOK,
			expectedIDs:    []int{1, 2},
		},
		{
			name: "фильтр по студенту",
			url:  "/api/leaves?student_id=12156208",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "12156208").Return(seeded[:1], nil)
			},
			expectedStatus: http.StatusOK,
			expectedIDs:    []int{1},
		},
		{
			name: "неизвестный студент — пустой массив",
			url:  "/api/leaves?student_id=99999999",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "99999999").Return([]models.LeaveRequest{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedIDs:    []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			// контракт: «голый» JSON-массив, без конверта
			var got []models.LeaveRequest
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			ids := make([]int, 0, len(got))
			for _, l := range got {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)

			mockService.AssertExpectations(t)
		})
	}
}

func TestListHandler_ServiceError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mockService := new(MockService)
	mockService.On("List", mock.Anything, "").Return(nil, errors.New("store closed"))

	handler := New(logger, mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/leaves", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `{"status":"error","message":"failed to list"}`)

	mockService.AssertExpectations(t)
}
