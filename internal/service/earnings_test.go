package service

import (
	"context"
	"testing"

	"rentops-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestEarningsService_WorkerEarnings(t *testing.T) {
	ctx := context.Background()

	setup := func(worker *domain.Worker, tasks []domain.WorkerTask, attendance []domain.Attendance) EarningsService {
		taskRepo := new(MockTaskRepo)
		workerRepo := new(MockWorkerRepo)
		attendanceRepo := new(MockAttendanceRepo)

		workerRepo.On("GetByID", ctx, worker.ID).Return(worker, nil)
		taskRepo.On("ListByWorkerBetween", ctx, worker.ID, "2026-07-01", "2026-07-31").Return(tasks, nil)
		attendanceRepo.On("ListByWorkerBetween", ctx, worker.ID, "2026-07-01", "2026-07-31").Return(attendance, nil)

		return NewEarningsService(taskRepo, workerRepo, attendanceRepo)
	}

	t.Run("SharedPoolAndFullRate", func(t *testing.T) {
		worker := &domain.Worker{ID: "w-1", Active: true}
		tasks := []domain.WorkerTask{
			{
				ID: "t-1", Type: domain.TaskTypeLoading, TaskAmountCents: 150000,
				Workers: []domain.TaskWorker{
					{WorkerID: "w-1", Present: true},
					{WorkerID: "w-2", Present: true},
					{WorkerID: "w-3", Present: true},
				},
			},
			{
				// Transport pays every present driver the full rate.
				ID: "t-2", Type: domain.TaskTypeTransport, TaskAmountCents: 100000,
				Workers: []domain.TaskWorker{
					{WorkerID: "w-1", Present: true},
					{WorkerID: "w-2", Present: true},
				},
			},
			{
				// Absent on this one: no share.
				ID: "t-3", Type: domain.TaskTypeLoading, TaskAmountCents: 90000,
				Workers: []domain.TaskWorker{
					{WorkerID: "w-1", Present: false},
					{WorkerID: "w-2", Present: true},
				},
			},
		}

		svc := setup(worker, tasks, nil)
		summary, err := svc.WorkerEarnings(ctx, "w-1", "2026-07-01", "2026-07-31")
		assert.NoError(t, err)
		assert.Equal(t, 2, summary.TaskCount)
		assert.Equal(t, int64(50000+100000), summary.TaskEarningsCents)
		assert.Equal(t, int64(0), summary.AttendanceEarningsCents)
		assert.Equal(t, int64(150000), summary.TotalCents)

		assert.Len(t, summary.ByTaskType, 2)
		for _, row := range summary.ByTaskType {
			switch row.TaskType {
			case domain.TaskTypeLoading:
				assert.Equal(t, int64(50000), row.TotalCents)
			case domain.TaskTypeTransport:
				assert.Equal(t, int64(100000), row.TotalCents)
			default:
				t.Fatalf("unexpected task type %s", row.TaskType)
			}
		}
	})

	t.Run("AttendanceAtDailyRate", func(t *testing.T) {
		// 1600.00 per day means 200.00 per hour; 12 hours earns 2400.00.
		worker := &domain.Worker{ID: "w-1", Active: true, DailyRateCents: 160000}
		attendance := []domain.Attendance{
			{WorkerID: "w-1", Date: "2026-07-10", Hours: 8},
			{WorkerID: "w-1", Date: "2026-07-11", Hours: 4},
		}

		svc := setup(worker, []domain.WorkerTask{}, attendance)
		summary, err := svc.WorkerEarnings(ctx, "w-1", "2026-07-01", "2026-07-31")
		assert.NoError(t, err)
		assert.Equal(t, float64(12), summary.AttendanceHours)
		assert.Equal(t, int64(240000), summary.AttendanceEarningsCents)
		assert.Equal(t, int64(240000), summary.TotalCents)
	})

	t.Run("NoDailyRateSkipsAttendance", func(t *testing.T) {
		worker := &domain.Worker{ID: "w-1", Active: true, DailyRateCents: 0}

		taskRepo := new(MockTaskRepo)
		workerRepo := new(MockWorkerRepo)
		attendanceRepo := new(MockAttendanceRepo)
		workerRepo.On("GetByID", ctx, "w-1").Return(worker, nil)
		taskRepo.On("ListByWorkerBetween", ctx, "w-1", "2026-07-01", "2026-07-31").Return([]domain.WorkerTask{}, nil)

		svc := NewEarningsService(taskRepo, workerRepo, attendanceRepo)
		summary, err := svc.WorkerEarnings(ctx, "w-1", "2026-07-01", "2026-07-31")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), summary.TotalCents)
		attendanceRepo.AssertNotCalled(t, "ListByWorkerBetween", ctx, "w-1", "2026-07-01", "2026-07-31")
	})
}
