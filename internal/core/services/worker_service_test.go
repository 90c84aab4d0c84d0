package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/martapiva/presenze_tracker_app/internal/apperrors"
	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
	portssvc "github.com/martapiva/presenze_tracker_app/internal/core/ports/services"
	"github.com/martapiva/presenze_tracker_app/internal/core/services"
	"github.com/martapiva/presenze_tracker_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// fixedClock pins "now" so time-dependent behavior is deterministic.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// mustInstant builds an instant from a date and a time-of-day in UTC, the zone
// every suite here runs its clock in.
func mustInstant(t *testing.T, date, timeOfDay string) time.Time {
	t.Helper()
	instant, err := time.ParseInLocation("2006-01-02 15:04:05", date+" "+timeOfDay, time.UTC)
	if err != nil {
		t.Fatalf("bad test instant %s %s: %v", date, timeOfDay, err)
	}
	return instant
}

// --- Mock WorkerRepository ---
type MockWorkerRepository struct {
	mock.Mock
}

func (m *MockWorkerRepository) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) FindWorkers(ctx context.Context, limit int, offset int) ([]domain.Worker, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}

func (m *MockWorkerRepository) UpdateWorker(ctx context.Context, worker domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}

func (m *MockWorkerRepository) DeleteWorker(ctx context.Context, workerID string) error {
	args := m.Called(ctx, workerID)
	return args.Error(0)
}

// --- Test Suite ---
type WorkerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockWorkerRepository
	service  portssvc.WorkerSvcFacade
	now      time.Time
}

func (suite *WorkerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockWorkerRepository)
	suite.now = mustInstant(suite.T(), "2024-03-01", "10:00:00")
	suite.service = services.NewWorkerService(suite.mockRepo, fixedClock{now: suite.now})
}

// --- Test Cases ---

func (suite *WorkerServiceTestSuite) TestCreateWorker_Success() {
	ctx := context.Background()
	req := dto.CreateWorkerRequest{
		Name:       "Mario Rossi",
		ImageURL:   "https://example.com/mario.png",
		HourlyRate: decimal.NewFromInt(12),
	}

	suite.mockRepo.On("SaveWorker", ctx, mock.MatchedBy(func(w domain.Worker) bool {
		return w.Name == req.Name && w.ImageURL == req.ImageURL &&
			w.HourlyRate.Equal(req.HourlyRate) && w.WorkerID != "" &&
			w.CreatedAt.Equal(suite.now)
	})).Return(nil).Once()

	worker, err := suite.service.CreateWorker(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(worker)
	suite.Equal(req.Name, worker.Name)
	suite.NotEmpty(worker.WorkerID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestCreateWorker_SaveError() {
	ctx := context.Background()
	req := dto.CreateWorkerRequest{Name: "Mario Rossi"}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveWorker", ctx, mock.AnythingOfType("domain.Worker")).Return(expectedErr).Once()

	worker, err := suite.service.CreateWorker(ctx, req)

	suite.Require().Error(err)
	suite.Nil(worker)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestGetWorkerByID_Success() {
	ctx := context.Background()
	workerID := uuid.NewString()
	expected := &domain.Worker{WorkerID: workerID, Name: "Mario Rossi"}

	suite.mockRepo.On("FindWorkerByID", ctx, workerID).Return(expected, nil).Once()

	worker, err := suite.service.GetWorkerByID(ctx, workerID)

	suite.Require().NoError(err)
	suite.Equal(expected, worker)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestGetWorkerByID_NotFound() {
	ctx := context.Background()
	workerID := uuid.NewString()

	suite.mockRepo.On("FindWorkerByID", ctx, workerID).Return(nil, apperrors.ErrNotFound).Once()

	worker, err := suite.service.GetWorkerByID(ctx, workerID)

	suite.Require().Error(err)
	suite.Nil(worker)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestListWorkers_Success() {
	ctx := context.Background()
	expected := []domain.Worker{
		{WorkerID: uuid.NewString(), Name: "Anna Bianchi"},
		{WorkerID: uuid.NewString(), Name: "Mario Rossi"},
	}

	suite.mockRepo.On("FindWorkers", ctx, 50, 0).Return(expected, nil).Once()

	workers, err := suite.service.ListWorkers(ctx, 50, 0)

	suite.Require().NoError(err)
	suite.Equal(expected, workers)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestUpdateWorker_PartialUpdate() {
	ctx := context.Background()
	workerID := uuid.NewString()
	existing := &domain.Worker{
		WorkerID:   workerID,
		Name:       "Mario Rossi",
		ImageURL:   "https://example.com/mario.png",
		HourlyRate: decimal.NewFromInt(12),
	}
	newRate := decimal.NewFromFloat(13.5)
	req := dto.UpdateWorkerRequest{HourlyRate: &newRate}

	suite.mockRepo.On("FindWorkerByID", ctx, workerID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateWorker", ctx, mock.MatchedBy(func(w domain.Worker) bool {
		return w.WorkerID == workerID && w.Name == "Mario Rossi" &&
			w.HourlyRate.Equal(newRate) && w.LastUpdatedAt.Equal(suite.now)
	})).Return(nil).Once()

	worker, err := suite.service.UpdateWorker(ctx, workerID, req)

	suite.Require().NoError(err)
	suite.True(worker.HourlyRate.Equal(newRate))
	suite.Equal("Mario Rossi", worker.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestUpdateWorker_NotFound() {
	ctx := context.Background()
	workerID := uuid.NewString()
	name := "Nuovo Nome"

	suite.mockRepo.On("FindWorkerByID", ctx, workerID).Return(nil, apperrors.ErrNotFound).Once()

	worker, err := suite.service.UpdateWorker(ctx, workerID, dto.UpdateWorkerRequest{Name: &name})

	suite.Require().Error(err)
	suite.Nil(worker)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestDeleteWorker_Success() {
	ctx := context.Background()
	workerID := uuid.NewString()

	suite.mockRepo.On("DeleteWorker", ctx, workerID).Return(nil).Once()

	err := suite.service.DeleteWorker(ctx, workerID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestDeleteWorker_NotFound() {
	ctx := context.Background()
	workerID := uuid.NewString()

	suite.mockRepo.On("DeleteWorker", ctx, workerID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteWorker(ctx, workerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestWorkerService(t *testing.T) {
	suite.Run(t, new(WorkerServiceTestSuite))
}
