package service

import (
	"context"
	"math"
	"sort"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/logger"
	"rentops-backend/internal/pricing"
	"rentops-backend/internal/repository"
)

const hoursPerWorkDay = 8

type earningsService struct {
	taskRepo       repository.WorkerTaskRepository
	workerRepo     repository.WorkerRepository
	attendanceRepo repository.AttendanceRepository
}

func NewEarningsService(
	taskRepo repository.WorkerTaskRepository,
	workerRepo repository.WorkerRepository,
	attendanceRepo repository.AttendanceRepository,
) EarningsService {
	return &earningsService{
		taskRepo:       taskRepo,
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
	}
}

// WorkerEarnings sums a worker's pay over [startDate, endDate]: the share of
// every task the worker was present on, under the task type's payment policy,
// plus attendance hours at dailyRate/8 per hour.
func (s *earningsService) WorkerEarnings(ctx context.Context, workerID, startDate, endDate string) (*domain.EarningsSummary, error) {
	logger.EnterMethod("earningsService.WorkerEarnings", "workerID", workerID, "start", startDate, "end", endDate)

	worker, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		logger.ExitMethodWithError("earningsService.WorkerEarnings", err, "workerID", workerID)
		return nil, err
	}

	tasks, err := s.taskRepo.ListByWorkerBetween(ctx, workerID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	summary := &domain.EarningsSummary{
		WorkerID:  workerID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	byType := make(map[domain.TaskType]*domain.TaskTypeEarnings)
	for i := range tasks {
		share := pricing.ShareFor(&tasks[i], workerID)
		if share == 0 {
			continue
		}
		summary.TaskCount++
		summary.TaskEarningsCents += share

		row, ok := byType[tasks[i].Type]
		if !ok {
			row = &domain.TaskTypeEarnings{TaskType: tasks[i].Type}
			byType[tasks[i].Type] = row
		}
		row.TaskCount++
		row.TotalCents += share
	}

	for _, row := range byType {
		summary.ByTaskType = append(summary.ByTaskType, *row)
	}
	sort.Slice(summary.ByTaskType, func(i, j int) bool {
		return summary.ByTaskType[i].TaskType < summary.ByTaskType[j].TaskType
	})

	if worker.DailyRateCents > 0 {
		records, err := s.attendanceRepo.ListByWorkerBetween(ctx, workerID, startDate, endDate)
		if err != nil {
			return nil, err
		}
		hourlyRate := float64(worker.DailyRateCents) / hoursPerWorkDay
		for _, rec := range records {
			summary.AttendanceHours += rec.Hours
		}
		summary.AttendanceEarningsCents = int64(math.Floor(summary.AttendanceHours*hourlyRate + 0.5))
	}

	summary.TotalCents = summary.TaskEarningsCents + summary.AttendanceEarningsCents

	logger.ExitMethod("earningsService.WorkerEarnings", "workerID", workerID,
		"tasks", summary.TaskCount, "totalCents", summary.TotalCents)
	return summary, nil
}
