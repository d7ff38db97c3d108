package jobs

import (
	"context"

	"rentops-backend/internal/logger"
)

// FlushSMSOutbox retries messages parked by failed immediate sends.
func (jr *JobRunner) FlushSMSOutbox() {
	jr.runWithRecovery("FlushSMSOutbox", func() {
		sent, failed, err := jr.services.SMS.FlushOutbox(context.Background())
		if err != nil {
			logger.Error("Failed to flush SMS outbox", "error", err)
			return
		}
		if failed > 0 {
			logger.Warn("SMS outbox messages exhausted their retry budget", "failed", failed)
		}
		logger.Info("Flushed SMS outbox", "sent", sent, "failed", failed)
	})
}
