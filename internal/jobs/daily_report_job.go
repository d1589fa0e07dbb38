package jobs

import (
	"context"
	"log/slog"

	"mezzo/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DailyReportJob computes the analytics report every morning and logs a
// revenue and losses summary for the operations team.
type DailyReportJob struct {
	handler queries.GetAnalyticsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailyReportJob creates a new job for the morning analytics summary.
func NewDailyReportJob(handler queries.GetAnalyticsQueryHandler, logger *slog.Logger) *DailyReportJob {
	return &DailyReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "daily_report_job"),
	}
}

// Start schedules the report for 06:00 every day.
func (j *DailyReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 6 * * *", func() {
		ctx := context.Background()

		resp, err := j.handler.Handle(ctx, queries.NewGetAnalyticsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Daily report failed", "error", err)
			return
		}

		report := resp.Report
		j.logger.InfoContext(ctx, "Daily report",
			"total_orders", report.TotalOrders,
			"completed_orders", report.CompletedOrders,
			"cancelled_orders", report.CancelledOrders,
			"revenue", report.Revenue.String(),
			"losses", report.Losses.String(),
			"average_order", report.AverageOrder.String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily report job started (running at 06:00)")
	return nil
}

// Stop stops the daily report job.
func (j *DailyReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily report job stopped")
}
