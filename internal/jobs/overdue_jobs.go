package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dressrent-backend/internal/logger"
	"dressrent-backend/internal/service"
)

// SendOverdueDigest mails the shop owner one digest listing every rental past
// its due date. No mail is sent when nothing is overdue.
func (jr *JobRunner) SendOverdueDigest() {
	jr.runWithRecovery("SendOverdueDigest", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		overdue, err := jr.services.Reports.OverdueRentals(ctx)
		if err != nil {
			logger.Error("Failed to load overdue rentals", "error", err)
			return
		}
		if len(overdue) == 0 {
			logger.Info("No overdue rentals, skipping digest")
			return
		}

		entries := make([]service.OverdueEntry, 0, len(overdue))
		for _, rental := range overdue {
			customerName := fmt.Sprintf("customer #%d", rental.CustomerID)
			if customer, err := jr.services.Customers.GetCustomer(ctx, rental.CustomerID); err == nil {
				customerName = customer.Name
			}

			var lines []string
			for _, line := range rental.Items {
				name := fmt.Sprintf("item #%d", line.ItemID)
				if item, err := jr.services.Inventory.GetItem(ctx, line.ItemID); err == nil {
					name = item.Name
				}
				lines = append(lines, fmt.Sprintf("%s x%d", name, line.Quantity))
			}

			entries = append(entries, service.OverdueEntry{
				CustomerName: customerName,
				ItemSummary:  strings.Join(lines, ", "),
				DueDate:      rental.DueDate,
			})
		}

		if err := jr.services.Email.SendOverdueDigest(ctx, jr.config.Email.OwnerEmail, entries); err != nil {
			logger.Error("Failed to send overdue digest", "error", err)
			return
		}
		logger.Info("Overdue digest delivered", "overdue_count", len(entries))
	})
}
