package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// InconsistentOrdersFinder is satisfied by queries.FindInconsistentOrdersQueryHandler.
type InconsistentOrdersFinder interface {
	Handle(ctx context.Context, query queries.FindInconsistentOrdersQuery) ([]ports.TotalsMismatch, error)
}

// OrderTotalsReconciliationJob periodically looks for orders whose stored totals
// disagree with their line items and reports them. It never modifies an order.
type OrderTotalsReconciliationJob struct {
	finder   InconsistentOrdersFinder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderTotalsReconciliationJob creates the job. schedule is a six-field cron
// expression (seconds first); an empty schedule disables the job.
func NewOrderTotalsReconciliationJob(
	finder InconsistentOrdersFinder,
	schedule string,
	logger *slog.Logger,
) *OrderTotalsReconciliationJob {
	return &OrderTotalsReconciliationJob{
		finder:   finder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_totals_reconciliation_job"),
	}
}

// Enabled reports whether a schedule was configured.
func (j *OrderTotalsReconciliationJob) Enabled() bool {
	return j.schedule != ""
}

// Start registers the job with its schedule. Invalid schedules are returned as errors.
func (j *OrderTotalsReconciliationJob) Start() error {
	if !j.Enabled() {
		j.logger.InfoContext(context.Background(), "Order totals reconciliation disabled")
		return nil
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order totals reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running reconciliation to finish.
func (j *OrderTotalsReconciliationJob) Stop() {
	if !j.Enabled() {
		return
	}
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order totals reconciliation job stopped")
}

// run performs one reconciliation pass and returns the number of inconsistent orders.
func (j *OrderTotalsReconciliationJob) run(ctx context.Context) int {
	mismatches, err := j.finder.Handle(ctx, queries.NewFindInconsistentOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order totals reconciliation failed", "error", err)
		return 0
	}

	for _, m := range mismatches {
		j.logger.WarnContext(ctx, "Order totals do not reconcile",
			"order_id", m.OrderID,
			"subtotal", m.Subtotal.Cents(),
			"items_subtotal", m.ItemsSubtotal.Cents(),
			"delivery_fee", m.DeliveryFee.Cents(),
			"total", m.Total.Cents(),
		)
	}
	if len(mismatches) > 0 {
		j.logger.WarnContext(ctx, "Order totals reconciliation finished", "inconsistent_orders", len(mismatches))
	}
	return len(mismatches)
}
