package domain

import "time"

type SMSStatus string

const (
	SMSStatusPending SMSStatus = "PENDING"
	SMSStatusSent    SMSStatus = "SENT"
	SMSStatusFailed  SMSStatus = "FAILED"
)

// SMSMessage is one outbox entry. Messages that fail the immediate send are
// parked here and retried by the outbox flush job until MaxAttempts is spent.
type SMSMessage struct {
	ID        string     `json:"id"`
	Phone     string     `json:"phone"`
	Body      string     `json:"body"`
	Status    SMSStatus  `json:"status"`
	Attempts  int        `json:"attempts"`
	LastError string     `json:"last_error"`
	CreatedOn time.Time  `json:"created_on"`
	SentOn    *time.Time `json:"sent_on,omitempty"`
}
