package jobs

import (
	"context"
	"log/slog"

	"webshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StockMonitorJob periodically scans the catalog and reports products whose
// stock reached zero at every location. It only observes; replenishment is a
// manual operation.
type StockMonitorJob struct {
	handler queries.GetAllProductsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStockMonitorJob creates a job that checks stock levels every minute.
func NewStockMonitorJob(handler queries.GetAllProductsQueryHandler, logger *slog.Logger) *StockMonitorJob {
	return &StockMonitorJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stock_monitor_job"),
	}
}

// Start begins the stock monitor job to run every minute.
func (j *StockMonitorJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		j.run(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock monitor job started (running every minute)")
	return nil
}

// Stop stops the stock monitor job.
func (j *StockMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stock monitor job stopped")
}

func (j *StockMonitorJob) run(ctx context.Context) {
	query := queries.NewGetAllProductsQuery()

	records, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stock monitor job failed", "error", err)
		return
	}

	// A product is depleted only when every one of its records is empty.
	remaining := make(map[int]int)
	for _, record := range records {
		remaining[record.ID] += record.Quantity
	}

	for productID, quantity := range remaining {
		if quantity == 0 {
			j.logger.WarnContext(ctx, "Product out of stock in all locations",
				"productId", productID)
		}
	}
}
