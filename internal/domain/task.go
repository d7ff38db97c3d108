package domain

import "time"

type TaskType string

const (
	TaskTypeIssuing          TaskType = "ISSUING"
	TaskTypeReceiving        TaskType = "RECEIVING"
	TaskTypeLoading          TaskType = "LOADING"
	TaskTypeUnloading        TaskType = "UNLOADING"
	TaskTypeTransport        TaskType = "TRANSPORT"
	TaskTypeArrangingPickup  TaskType = "ARRANGING_PICKUP"
	TaskTypeLoadingReturns   TaskType = "LOADING_RETURNS"
	TaskTypeTransportReturns TaskType = "TRANSPORT_RETURNS"
	TaskTypeUnloadingReturns TaskType = "UNLOADING_RETURNS"
	TaskTypeStoring          TaskType = "STORING"
	TaskTypeOther            TaskType = "OTHER"
)

func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeIssuing, TaskTypeReceiving, TaskTypeLoading, TaskTypeUnloading,
		TaskTypeTransport, TaskTypeArrangingPickup, TaskTypeLoadingReturns,
		TaskTypeTransportReturns, TaskTypeUnloadingReturns, TaskTypeStoring,
		TaskTypeOther:
		return true
	}
	return false
}

// PaymentPolicy decides how a task's amount is converted into per-worker pay.
type PaymentPolicy string

const (
	// PaymentPolicySharedPool divides the task amount equally among present workers.
	PaymentPolicySharedPool PaymentPolicy = "SHARED_POOL"
	// PaymentPolicyFullRatePerWorker pays each present worker the full task amount.
	PaymentPolicyFullRatePerWorker PaymentPolicy = "FULL_RATE_PER_WORKER"
)

// taskPaymentPolicies maps each task type to its payment policy. Transport
// legs are per-driver engagements and pay the full rate to every present
// worker; everything else is a shared bonus pool.
var taskPaymentPolicies = map[TaskType]PaymentPolicy{
	TaskTypeTransport:        PaymentPolicyFullRatePerWorker,
	TaskTypeTransportReturns: PaymentPolicyFullRatePerWorker,
}

// PaymentPolicyFor returns the payment policy for a task type.
func PaymentPolicyFor(t TaskType) PaymentPolicy {
	if p, ok := taskPaymentPolicies[t]; ok {
		return p
	}
	return PaymentPolicySharedPool
}

// WorkerTask records one unit of labor tied to an order. TaskAmountCents is
// the total for the task, not per worker; only workers marked present are paid.
type WorkerTask struct {
	ID              string       `json:"id"`
	OrderID         string       `json:"order_id"`
	Type            TaskType     `json:"task_type"`
	TaskAmountCents int64        `json:"task_amount_cents"`
	Notes           string       `json:"notes"`
	CompletedAt     time.Time    `json:"completed_at"`
	Workers         []TaskWorker `json:"workers"`
	CreatedOn       time.Time    `json:"created_on"`
}

type TaskWorker struct {
	WorkerID string `json:"worker_id"`
	Present  bool   `json:"present"`
}

// PresentCount returns how many workers on the task are marked present.
func (t *WorkerTask) PresentCount() int {
	n := 0
	for _, w := range t.Workers {
		if w.Present {
			n++
		}
	}
	return n
}
