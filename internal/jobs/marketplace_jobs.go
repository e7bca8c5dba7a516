package jobs

import (
	"context"
	"time"

	"krishisanjivni-backend/internal/logger"
)

// RefreshMarketPrices recomputes the daily mandi price selection and warms
// the cache before farmers start checking prices in the morning.
func (jr *JobRunner) RefreshMarketPrices() {
	jr.runWithRecovery("RefreshMarketPrices", func() {
		ctx := context.Background()

		count, err := jr.services.Market.RefreshDailyPrices(ctx)
		if err != nil {
			logger.Error("Failed to refresh market prices", "error", err)
			return
		}
		logger.Info("Market prices refreshed", "rows", count)
	})
}

// SendPaymentReminders emails every farmer whose accepted booking is still
// unpaid.
func (jr *JobRunner) SendPaymentReminders() {
	jr.runWithRecovery("SendPaymentReminders", func() {
		ctx := context.Background()

		bookings, err := jr.store.BookingRepository.ListAcceptedUnpaid(ctx)
		if err != nil {
			logger.Error("Failed to list unpaid bookings", "error", err)
			return
		}

		sent := 0
		for _, booking := range bookings {
			user, err := jr.store.UserRepository.GetByID(ctx, booking.UserID)
			if err != nil {
				logger.Error("Failed to load booking owner", "booking_id", booking.ID, "error", err)
				continue
			}
			if err := jr.services.Email.SendPaymentReminder(ctx, user.Email, user.FullName, booking.ItemName, booking.TotalCost); err != nil {
				logger.Error("Failed to send payment reminder", "booking_id", booking.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Payment reminders sent", "count", sent, "pending", len(bookings))
	})
}

// PurgeChatSessions deletes assistant conversations idle past the retention
// window.
func (jr *JobRunner) PurgeChatSessions() {
	jr.runWithRecovery("PurgeChatSessions", func() {
		ctx := context.Background()

		retention := jr.config.Scheduler.ChatRetentionDays
		cutoff := time.Now().AddDate(0, 0, -retention)

		deleted, err := jr.store.ChatRepository.DeleteIdleBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge chat sessions", "error", err)
			return
		}
		logger.Info("Idle chat sessions purged", "count", deleted, "retention_days", retention)
	})
}
