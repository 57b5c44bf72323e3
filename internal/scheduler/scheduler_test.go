package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katsuchip/functions/internal/model"
)

type MockCleanupService struct {
	mock.Mock
}

func (m *MockCleanupService) RunScheduledCleanup(ctx context.Context) (*model.CleanupResult, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*model.CleanupResult)
	return result, args.Error(1)
}

func TestNew_Defaults(t *testing.T) {
	s, err := New(&MockCleanupService{}, "0 2 * * *", "Asia/Jakarta", time.Minute, zap.NewNop().Sugar())
	require.NoError(t, err)

	entries := s.cron.Entries()
	require.Len(t, entries, 1)

	jakarta, _ := time.LoadLocation("Asia/Jakarta")
	from := time.Date(2024, time.June, 30, 3, 0, 0, 0, jakarta)
	next := entries[0].Schedule.Next(from)

	assert.Equal(t, time.Date(2024, time.July, 1, 2, 0, 0, 0, jakarta), next)
}

func TestNew_InvalidSchedule(t *testing.T) {
	_, err := New(&MockCleanupService{}, "every day", "Asia/Jakarta", time.Minute, zap.NewNop().Sugar())
	assert.ErrorContains(t, err, "invalid cleanup schedule")
}

func TestNew_InvalidTimezone(t *testing.T) {
	_, err := New(&MockCleanupService{}, "0 2 * * *", "Mars/Olympus", time.Minute, zap.NewNop().Sugar())
	assert.ErrorContains(t, err, "load location")
}

func TestRunCleanup(t *testing.T) {
	svc := &MockCleanupService{}
	svc.On("RunScheduledCleanup", mock.Anything).
		Return(&model.CleanupResult{Success: true, DeletedCount: 4, CutoffDate: "2024-05-01T10:00:00Z"}, nil).
		Once()

	s, err := New(svc, "0 2 * * *", "UTC", time.Minute, zap.NewNop().Sugar())
	require.NoError(t, err)

	s.runCleanup()

	svc.AssertExpectations(t)
}

func TestRunCleanup_ContextHasDeadline(t *testing.T) {
	svc := &MockCleanupService{}
	svc.On("RunScheduledCleanup", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(nil, errors.New("server selection timeout")).Once()

	s, err := New(svc, "0 2 * * *", "UTC", time.Second, zap.NewNop().Sugar())
	require.NoError(t, err)

	s.runCleanup()

	svc.AssertExpectations(t)
}

func TestStartStop(t *testing.T) {
	s, err := New(&MockCleanupService{}, "0 2 * * *", "UTC", time.Minute, zap.NewNop().Sugar())
	require.NoError(t, err)

	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, s.Stop(ctx))
}
