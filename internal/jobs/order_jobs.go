package jobs

import (
	"context"
	"fmt"
	"time"

	"rentops-backend/internal/logger"
)

// SendOverdueReminders texts clients whose in-progress orders are past the
// expected return date plus the configured grace period. Overdue is a derived
// condition, not a status; the order stays IN_PROGRESS until it is completed.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		graceDays := jr.config.Rental.ReturnGraceDays
		cutoff := time.Now().AddDate(0, 0, -graceDays).Format("2006-01-02")

		query := `
			SELECT o.id, o.expected_return_date, c.name, c.phone
			FROM orders o
			JOIN clients c ON c.id = o.client_id
			WHERE o.status = 'IN_PROGRESS'
			  AND o.expected_return_date < $1
			  AND c.phone <> ''
		`

		rows, err := jr.db.QueryContext(ctx, query, cutoff)
		if err != nil {
			logger.Error("Failed to find overdue orders", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var orderID, expectedReturn, clientName, phone string
			if err := rows.Scan(&orderID, &expectedReturn, &clientName, &phone); err != nil {
				logger.Error("Failed to scan overdue order", "error", err)
				continue
			}

			body := fmt.Sprintf("Dear %s, your rental order %s was due back on %s. Please arrange the return.",
				clientName, orderID, expectedReturn)
			if err := jr.services.SMS.Notify(ctx, phone, body); err != nil {
				logger.Error("Failed to send overdue reminder", "orderID", orderID, "error", err)
				continue
			}
			count++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue orders", "error", err)
			return
		}

		logger.Info("Sent overdue reminders", "count", count)
	})
}
