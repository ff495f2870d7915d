package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"pasteleria/internal/core/application/usecases/queries"
	"pasteleria/internal/core/domain/model/order"
)

// PendingOrdersJob periodically reports orders still waiting for the
// kitchen. Once a minute it counts PENDIENTE orders and warns when the
// oldest one has been waiting longer than the configured threshold.
type PendingOrdersJob struct {
	handler   queries.GetAllOrdersQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPendingOrdersJob creates the pending orders monitor. The threshold
// controls how long an order may stay PENDIENTE before it is reported as
// stale.
func NewPendingOrdersJob(
	handler queries.GetAllOrdersQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *PendingOrdersJob {
	return &PendingOrdersJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "pending_orders_job"),
	}
}

// Start begins the monitor, running at the top of every minute.
func (j *PendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders monitor started (running every minute)")
	return nil
}

// Stop stops the monitor.
func (j *PendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders monitor stopped")
}

func (j *PendingOrdersJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetAllOrdersQuery(order.Pendiente)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending orders monitor failed to build query", "error", err)
		return
	}

	pending, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending orders monitor failed", "error", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	oldest := pending[0].Fecha
	for _, o := range pending[1:] {
		if o.Fecha.Before(oldest) {
			oldest = o.Fecha
		}
	}
	waiting := time.Since(oldest)

	if waiting > j.threshold {
		j.logger.WarnContext(ctx, "Orders waiting too long for preparation",
			"count", len(pending),
			"oldest_waiting", waiting.Round(time.Second).String(),
			"threshold", j.threshold.String())
		return
	}

	j.logger.InfoContext(ctx, "Orders awaiting preparation",
		"count", len(pending),
		"oldest_waiting", waiting.Round(time.Second).String())
}
