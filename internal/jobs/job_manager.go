package jobs

import (
	"fmt"
	"log/slog"

	"webshop/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stockMonitorJob *StockMonitorJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getAllProductsHandler queries.GetAllProductsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stockMonitorJob: NewStockMonitorJob(getAllProductsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stockMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start stock monitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stockMonitorJob.Stop()
}
