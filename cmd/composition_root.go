package cmd

import (
	"log/slog"
	"os"

	webshophttp "webshop/internal/adapters/in/http"
	"webshop/internal/adapters/out/postgres"
	"webshop/internal/core/application/usecases/commands"
	"webshop/internal/core/application/usecases/queries"
	"webshop/internal/core/ports"
	"webshop/internal/jobs"
	"webshop/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    metrics.New(prometheus.DefaultRegisterer),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsByIDQueryHandler() queries.GetProductsByIDQueryHandler {
	return queries.NewGetProductsByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *webshophttp.Server {
	return webshophttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetAllProductsQueryHandler(),
		c.CreateGetProductsByIDQueryHandler(),
		c.metrics,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetAllProductsQueryHandler(), c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
