package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"market/internal/core/application/usecases/queries"
	"market/internal/core/domain/model/order"
	"market/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob reminds the admin pool about orders that have sat in
// Placed status for too long. It is driven by current order state, not by
// past notification outcomes: an admin who missed the original placement
// message still hears about the order here.
type StaleOrderJob struct {
	ordersHandler queries.GetOrdersByStatusQueryHandler
	sender        ports.MessageSender
	admins        ports.AdminDirectory
	maxAge        time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewStaleOrderJob creates a job that checks every minute for placed
// orders older than maxAge and reminds the admins.
func NewStaleOrderJob(
	ordersHandler queries.GetOrdersByStatusQueryHandler,
	sender ports.MessageSender,
	admins ports.AdminDirectory,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		ordersHandler: ordersHandler,
		sender:        sender,
		admins:        admins,
		maxAge:        maxAge,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale order job to run at the top of every minute.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale order check failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every minute)")
	return nil
}

// Stop stops the stale order job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}

func (j *StaleOrderJob) run(ctx context.Context) error {
	query, err := queries.NewGetOrdersByStatusQuery(order.Placed)
	if err != nil {
		return err
	}

	placed, err := j.ordersHandler.Handle(ctx, query)
	if err != nil {
		return err
	}

	cutoff := time.Now().UTC().Add(-j.maxAge)
	stale := make([]queries.GetOrdersByStatusQueryResponse, 0, len(placed))
	for _, o := range placed {
		if o.CreatedAt.Before(cutoff) {
			stale = append(stale, o)
		}
	}

	if len(stale) == 0 {
		return nil
	}

	chats, err := j.admins.ListAdminChats(ctx)
	if err != nil {
		return err
	}

	text := reminderText(stale, j.maxAge)
	for _, chat := range chats {
		if sendErr := j.sender.Send(ctx, chat, text); sendErr != nil {
			j.logger.ErrorContext(ctx, "Failed to deliver stale order reminder",
				"recipient", chat, "error", sendErr)
		}
	}

	return nil
}

func reminderText(stale []queries.GetOrdersByStatusQueryResponse, maxAge time.Duration) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d order(s) waiting longer than %s:\n", len(stale), maxAge)
	for _, o := range stale {
		fmt.Fprintf(&b, "- %s placed %s, total %s\n",
			o.ID, o.CreatedAt.Format(time.RFC3339), o.TotalPrice)
	}

	return strings.TrimRight(b.String(), "\n")
}
