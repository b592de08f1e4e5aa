package jobs

import (
	"context"

	"github.com/Ahmed-779/Vehicle-Booking/internal/logger"
)

// PurgeExpiredBookings deletes every booking whose end instant has passed.
// Nothing else ages out: future and in-progress bookings are untouched.
func (jr *JobRunner) PurgeExpiredBookings() {
	jr.runWithRecovery("PurgeExpiredBookings", func() {
		ctx := context.Background()

		purged, err := jr.services.Booking.PurgeExpired(ctx)
		if err != nil {
			logger.Error("Failed to purge expired bookings", "error", err)
			return
		}
		logger.Info("Purged expired bookings", "count", purged)
	})
}
