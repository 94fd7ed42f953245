package jobs

import (
	"context"
	"time"

	"closetshare-backend/internal/logger"
)

// ExpireStalePendingRentals marks pending rentals older than the configured
// age as failed. Pending rows only exist for free-listing requests; paid
// bookings are written confirmed or not at all.
func (jr *JobRunner) ExpireStalePendingRentals() {
	jr.runWithRecovery("ExpireStalePendingRentals", func() {
		ctx := context.Background()

		maxAge := time.Duration(jr.config.Scheduler.PendingMaxAgeHours) * time.Hour
		cutoff := time.Now().UTC().Add(-maxAge).Format(time.RFC3339)

		count, err := jr.rentals.ExpireStalePending(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to expire stale pending rentals", "error", err)
			return
		}

		logger.Info("Expired stale pending rentals", "count", count, "cutoff", cutoff)
	})
}
