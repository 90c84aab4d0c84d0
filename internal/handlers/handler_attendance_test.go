package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/martapiva/presenze_tracker_app/internal/apperrors"
	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
	"github.com/martapiva/presenze_tracker_app/internal/dto"
	"github.com/martapiva/presenze_tracker_app/internal/handlers"
	"github.com/martapiva/presenze_tracker_app/internal/middleware"
	"github.com/martapiva/presenze_tracker_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AttendanceService ---
type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) CheckIn(ctx context.Context, workerID string) (*domain.ActionResult, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActionResult), args.Error(1)
}
func (m *MockAttendanceService) CheckOut(ctx context.Context, workerID string) error {
	args := m.Called(ctx, workerID)
	return args.Error(0)
}
func (m *MockAttendanceService) ListActiveSessions(ctx context.Context) ([]domain.ActiveSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActiveSession), args.Error(1)
}
func (m *MockAttendanceService) AutoCloseSessions(ctx context.Context, customCloseTime string) (*domain.SweepResult, error) {
	args := m.Called(ctx, customCloseTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SweepResult), args.Error(1)
}
func (m *MockAttendanceService) ForceCloseAllSessions(ctx context.Context, closeTime string) (*domain.SweepResult, error) {
	args := m.Called(ctx, closeTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SweepResult), args.Error(1)
}
func (m *MockAttendanceService) AddManualTimeEntry(ctx context.Context, req dto.CreateManualEntryRequest) (*domain.ActionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActionResult), args.Error(1)
}
func (m *MockAttendanceService) UpdateTimeEntry(ctx context.Context, entryID string, req dto.UpdateTimeEntryRequest) (*domain.ActionResult, error) {
	args := m.Called(ctx, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActionResult), args.Error(1)
}
func (m *MockAttendanceService) DeleteTimeEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}
func (m *MockAttendanceService) GetAutoCloseSettings(ctx context.Context) (*domain.AutoCloseSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AutoCloseSettings), args.Error(1)
}
func (m *MockAttendanceService) UpdateAutoCloseSettings(ctx context.Context, settings domain.AutoCloseSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Test Suite ---
type AttendanceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockAttendanceService
	jwtSecret   string
	adminToken  string
}

func (suite *AttendanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockAttendanceService)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	token, _, err := utils.GenerateJWT("admin", suite.jwtSecret, time.Hour, "presenze-tracker-app")
	suite.Require().NoError(err)
	suite.adminToken = token

	// Mimic the real route grouping: kiosk routes are open, admin routes sit
	// behind the JWT middleware.
	public := suite.router.Group("/api/v1")
	handlers.RegisterPublicAttendanceRoutes(public, suite.mockService)

	admin := suite.router.Group("/api/v1", middleware.AdminAuthMiddleware(suite.jwtSecret))
	handlers.RegisterAttendanceRoutes(admin, suite.mockService)
}

func (suite *AttendanceHandlerTestSuite) performRequest(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- CheckIn ---

func (suite *AttendanceHandlerTestSuite) TestCheckIn_Success() {
	result := &domain.ActionResult{Success: true, Message: "Check-in registrato alle 08:30"}
	suite.mockService.On("CheckIn", mock.Anything, "worker-1").Return(result, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/attendance/checkin", dto.CheckInRequest{WorkerID: "worker-1"}, "")

	suite.Equal(http.StatusOK, w.Code)
	var got domain.ActionResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(got.Success)
	suite.Equal(result.Message, got.Message)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AttendanceHandlerTestSuite) TestCheckIn_AlreadyCheckedInIsBusinessRejection() {
	result := &domain.ActionResult{Success: false, Message: "Mario ha già una sessione attiva"}
	suite.mockService.On("CheckIn", mock.Anything, "worker-1").Return(result, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/attendance/checkin", dto.CheckInRequest{WorkerID: "worker-1"}, "")

	// Business rejections still travel as 200 so the kiosk shows the message.
	suite.Equal(http.StatusOK, w.Code)
	var got domain.ActionResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.False(got.Success)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AttendanceHandlerTestSuite) TestCheckIn_WorkerNotFound() {
	suite.mockService.On("CheckIn", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/attendance/checkin", dto.CheckInRequest{WorkerID: "ghost"}, "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AttendanceHandlerTestSuite) TestCheckIn_MissingWorkerIDIsBadRequest() {
	w := suite.performRequest(http.MethodPost, "/api/v1/attendance/checkin", map[string]string{}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CheckIn", mock.Anything, mock.Anything)
}

// --- CheckOut ---

func (suite *AttendanceHandlerTestSuite) TestCheckOut_Success() {
	suite.mockService.On("CheckOut", mock.Anything, "worker-1").Return(nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/attendance/checkout", dto.CheckOutRequest{WorkerID: "worker-1"}, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

// --- ListActiveSessions ---

func (suite *AttendanceHandlerTestSuite) TestListActiveSessions_Success() {
	sessions := []domain.ActiveSession{
		{WorkerID: "worker-1", WorkerName: "Mario Rossi", CheckIn: "08:30:00", Date: "2024-04-10"},
	}
	suite.mockService.On("ListActiveSessions", mock.Anything).Return(sessions, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/attendance/sessions", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var got dto.ListActiveSessionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().Len(got.Sessions, 1)
	suite.Equal("Mario Rossi", got.Sessions[0].WorkerName)
	suite.Equal("08:30:00", got.Sessions[0].CheckIn)
	suite.mockService.AssertExpectations(suite.T())
}

// --- AutoClose / ForceClose ---

func (suite *AttendanceHandlerTestSuite) TestAutoClose_RequiresToken() {
	w := suite.performRequest(http.MethodPost, "/api/v1/attendance/autoclose", nil, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "AutoCloseSessions", mock.Anything, mock.Anything)
}

func (suite *AttendanceHandlerTestSuite) TestAutoClose_EmptyBodyUsesConfiguredCutoff() {
	result := &domain.SweepResult{Closed: 2, Message: "2 sessioni chiuse automaticamente alle 18:00"}
	suite.mockService.On("AutoCloseSessions", mock.Anything, "").Return(result, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/attendance/autoclose", nil, suite.adminToken)

	suite.Equal(http.StatusOK, w.Code)
	var got domain.SweepResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(2, got.Closed)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AttendanceHandlerTestSuite) TestAutoClose_CustomCloseTime() {
	result := &domain.SweepResult{Closed: 1, Message: "1 sessioni chiuse automaticamente alle 19:30"}
	suite.mockService.On("AutoCloseSessions", mock.Anything, "19:30").Return(result, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/attendance/autoclose", dto.SweepRequest{CloseTime: "19:30"}, suite.adminToken)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AttendanceHandlerTestSuite) TestForceClose_Success() {
	result := &domain.SweepResult{Closed: 3, Message: "3 sessioni chiuse manualmente"}
	suite.mockService.On("ForceCloseAllSessions", mock.Anything, "").Return(result, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/attendance/forceclose", nil, suite.adminToken)

	suite.Equal(http.StatusOK, w.Code)
	var got domain.SweepResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(3, got.Closed)
	suite.mockService.AssertExpectations(suite.T())
}

// --- Manual entries ---

func (suite *AttendanceHandlerTestSuite) TestAddManualEntry_Success() {
	req := dto.CreateManualEntryRequest{
		WorkerID:   "worker-1",
		WorkerName: "Mario Rossi",
		Date:       "2024-04-10",
		CheckIn:    "08:00",
		CheckOut:   "12:30",
	}
	result := &domain.ActionResult{Success: true, Message: "Registrazione aggiunta manualmente"}
	suite.mockService.On("AddManualTimeEntry", mock.Anything, req).Return(result, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/entries", req, suite.adminToken)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AttendanceHandlerTestSuite) TestAddManualEntry_RequiresToken() {
	w := suite.performRequest(http.MethodPost, "/api/v1/entries", dto.CreateManualEntryRequest{}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "AddManualTimeEntry", mock.Anything, mock.Anything)
}

func (suite *AttendanceHandlerTestSuite) TestUpdateEntry_NotFound() {
	req := dto.UpdateTimeEntryRequest{Date: "2024-04-10", CheckIn: "08:00", CheckOut: "12:00"}
	suite.mockService.On("UpdateTimeEntry", mock.Anything, "missing-entry", req).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodPut, "/api/v1/entries/missing-entry", req, suite.adminToken)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AttendanceHandlerTestSuite) TestDeleteEntry_Success() {
	suite.mockService.On("DeleteTimeEntry", mock.Anything, "entry-1").Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/entries/entry-1", nil, suite.adminToken)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestAttendanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceHandlerTestSuite))
}
