package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// LowStockReportJob periodically scans the catalog for items whose stock
// fell below the configured threshold and logs them for replenishment.
// Read-only; restocking stays a deliberate human action through AddStock.
type LowStockReportJob struct {
	itemRepo  ports.ItemRepository
	schedule  string
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockReportJob creates a job reporting items below the stock threshold.
// schedule is a six-field cron expression with a seconds column.
func NewLowStockReportJob(
	itemRepo ports.ItemRepository,
	schedule string,
	threshold int,
	logger *slog.Logger,
) *LowStockReportJob {
	return &LowStockReportJob{
		itemRepo:  itemRepo,
		schedule:  schedule,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_stock_report_job"),
	}
}

// Start begins the low stock report job on its configured schedule.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		items, repoErr := j.itemRepo.GetAllBelowStock(ctx, j.threshold)
		if repoErr != nil {
			j.logger.ErrorContext(ctx, "Low stock scan failed", "error", repoErr)
			return
		}

		if len(items) == 0 {
			return
		}

		for _, lowItem := range items {
			j.logger.WarnContext(ctx, "Item below stock threshold",
				"item_id", lowItem.ID().String(),
				"name", lowItem.Name(),
				"stock", lowItem.Stock(),
				"threshold", j.threshold,
			)
		}
		j.logger.InfoContext(ctx, "Low stock report completed", "items_below_threshold", len(items))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the low stock report job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}
