package pricing

import "rentops-backend/internal/domain"

// WorkerShare is one worker's cut of a task amount. Absent workers appear
// with a zero share so callers can render the full roster.
type WorkerShare struct {
	WorkerID   string `json:"worker_id"`
	Present    bool   `json:"present"`
	ShareCents int64  `json:"share_cents"`
}

// SplitShares divides a task amount across the workers marked present.
//
// The base split is equal, with no weighting by role or hours. Remainder
// cents are handed out one each from the front of the present list so the
// shares always sum exactly to the task amount. Zero present workers yields
// zero shares for everyone; task creation rejects that case before money
// ever moves.
func SplitShares(taskAmountCents int64, workers []domain.TaskWorker) []WorkerShare {
	present := 0
	for _, w := range workers {
		if w.Present {
			present++
		}
	}

	shares := make([]WorkerShare, 0, len(workers))
	if present == 0 {
		for _, w := range workers {
			shares = append(shares, WorkerShare{WorkerID: w.WorkerID, Present: w.Present})
		}
		return shares
	}

	base := taskAmountCents / int64(present)
	remainder := taskAmountCents % int64(present)

	for _, w := range workers {
		s := WorkerShare{WorkerID: w.WorkerID, Present: w.Present}
		if w.Present {
			s.ShareCents = base
			if remainder > 0 {
				s.ShareCents++
				remainder--
			}
		}
		shares = append(shares, s)
	}
	return shares
}

// ShareFor returns what a single worker earns from a task under the payment
// policy attached to the task's type. SHARED_POOL divides the amount among
// present workers; FULL_RATE_PER_WORKER pays each present worker the whole
// task amount. Workers not present, or not on the task, earn nothing.
func ShareFor(task *domain.WorkerTask, workerID string) int64 {
	onTask := false
	for _, w := range task.Workers {
		if w.WorkerID == workerID {
			onTask = w.Present
			break
		}
	}
	if !onTask {
		return 0
	}

	if domain.PaymentPolicyFor(task.Type) == domain.PaymentPolicyFullRatePerWorker {
		return task.TaskAmountCents
	}

	for _, s := range SplitShares(task.TaskAmountCents, task.Workers) {
		if s.WorkerID == workerID {
			return s.ShareCents
		}
	}
	return 0
}
