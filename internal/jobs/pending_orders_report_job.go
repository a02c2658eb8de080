package jobs

import (
	"context"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// reportSchedule runs the report at the top of every minute.
const reportSchedule = "0 * * * * *"

// PendingOrdersReportJob periodically logs per-status order counts.
// Read-only: the job never changes order state.
type PendingOrdersReportJob struct {
	handler queries.GetOrderStatsQueryHandler
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewPendingOrdersReportJob creates the report job.
func NewPendingOrdersReportJob(handler queries.GetOrderStatsQueryHandler) *PendingOrdersReportJob {
	return &PendingOrdersReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  zap.L().With(zap.String("component", "pending_orders_report_job")),
	}
}

// Start begins the report job on its schedule.
func (j *PendingOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc(reportSchedule, func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
		if err != nil {
			j.logger.Error("Pending orders report failed", zap.Error(err))
			return
		}

		j.logger.Info("Order status report",
			zap.Int64("pending", stats.CountByStatus[order.Pending]),
			zap.Int64("paid", stats.CountByStatus[order.Paid]),
			zap.Int64("shipped", stats.CountByStatus[order.Shipped]),
			zap.Int64("delivered", stats.CountByStatus[order.Delivered]),
			zap.Int64("cancelled", stats.CountByStatus[order.Cancelled]),
			zap.Int64("total", stats.TotalCount),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Pending orders report job started")
	return nil
}

// Stop stops the report job.
func (j *PendingOrdersReportJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Pending orders report job stopped")
}
