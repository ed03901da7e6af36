package cmd

import (
	"context"
	"fmt"
	"time"

	httpin "catering/internal/adapters/in/http"
	"catering/internal/adapters/out/labels"
	"catering/internal/adapters/out/postgres"
	"catering/internal/adapters/out/postgres/schedulerepo"
	schedulecache "catering/internal/adapters/out/redis"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
	"catering/internal/infrastructure/metrics"
	"catering/internal/jobs"
	"catering/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger
	metrics    *metrics.Metrics

	clock        ports.Clock
	labels       labels.French
	stateMachine order.StateMachine
	pricing      services.PricingCalculator
	schedules    ports.ScheduleRepository
	cache        *schedulecache.CachedScheduleLookup
	window       metrics.InstrumentedWindowValidator
	publisher    ports.OrderEventPublisher
}

// NewCompositionRoot wires the application. redisClient may be nil, in which
// case the opening schedule is read from postgres on every lookup.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	publisher ports.OrderEventPublisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) (CompositionRoot, error) {
	location, err := time.LoadLocation(configs.Timezone)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid TIMEZONE %q: %w", configs.Timezone, err)
	}

	systemClock := clock.NewSystem()
	french := labels.NewFrench()
	schedules := schedulerepo.NewGormScheduleRepository(gormDB)

	var (
		lookup ports.ScheduleLookup = schedules
		cache  *schedulecache.CachedScheduleLookup
	)
	if redisClient != nil {
		cache = schedulecache.NewCachedScheduleLookup(redisClient, configs.ScheduleCacheTTL, schedules, logger)
		lookup = cache
	}

	window := services.NewDeliveryWindowValidator(lookup, systemClock, services.WithRestaurantLocation(location))

	return CompositionRoot{
		configs:      configs,
		gormDB:       gormDB,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:       logger,
		metrics:      m,
		clock:        systemClock,
		labels:       french,
		stateMachine: order.NewStateMachine(systemClock, french, order.WithLocation(location)),
		pricing:      services.NewPricingCalculator(configs.LocalZoneCity),
		schedules:    schedules,
		cache:        cache,
		window:       metrics.NewInstrumentedWindowValidator(window, m),
		publisher:    metrics.NewInstrumentedPublisher(publisher, m),
	}, nil
}

// SeedOpeningSchedule stores the schedule file when no schedule is stored yet.
// Cached days are dropped after a seed so lookups see the stored week.
func (c *CompositionRoot) SeedOpeningSchedule(ctx context.Context) error {
	entries, err := schedulerepo.LoadScheduleFile(c.configs.OpeningScheduleFile)
	if err != nil {
		return err
	}

	seeded, err := c.schedules.SeedIfEmpty(ctx, entries)
	if err != nil {
		return fmt.Errorf("failed to seed opening schedule: %w", err)
	}
	if seeded {
		c.logger.Info("opening schedule seeded", zap.String("file", c.configs.OpeningScheduleFile))
		if c.cache != nil {
			if err = c.cache.Invalidate(ctx); err != nil {
				c.logger.Warn("failed to invalidate schedule cache", zap.Error(err))
			}
		}
	}

	week, err := c.schedules.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load opening schedule: %w", err)
	}
	openDays := make([]string, 0, len(week))
	for _, day := range week {
		if day.IsOpen() {
			openDays = append(openDays, day.Day().String())
		}
	}
	c.logger.Info("opening schedule loaded", zap.Int("days", len(week)), zap.Strings("open", openDays))
	return nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(), c.stateMachine, c.pricing, c.window, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(
		c.orderUoWFactory(), c.stateMachine, c.configs.MaterialReturnPeriod, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.stateMachine, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateReturnMaterialCommandHandler() commands.ReturnMaterialCommandHandler {
	return commands.NewReturnMaterialCommandHandler(c.orderUoWFactory(), c.stateMachine, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.labels)
}

func (c *CompositionRoot) CreateQuotePriceQueryHandler() queries.QuotePriceQueryHandler {
	return queries.NewQuotePriceQueryHandler(c.pricing)
}

func (c *CompositionRoot) CreateCheckDeliveryWindowQueryHandler() queries.CheckDeliveryWindowQueryHandler {
	return queries.NewCheckDeliveryWindowQueryHandler(c.window)
}

func (c *CompositionRoot) CreateGetOverdueMaterialReturnsQueryHandler() queries.GetOverdueMaterialReturnsQueryHandler {
	return queries.NewGetOverdueMaterialReturnsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateMaterialReturnJob() *jobs.MaterialReturnJob {
	return jobs.NewMaterialReturnJob(
		c.CreateGetOverdueMaterialReturnsQueryHandler(),
		c.clock,
		c.metrics.MaterialReturnsOverdue,
		c.configs.MaterialReturnScanSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateMaterialReturnJob())
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	changeStatus := c.CreateChangeOrderStatusCommandHandler()
	cancelOrder := c.CreateCancelOrderCommandHandler()
	returnMaterial := c.CreateReturnMaterialCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		CreateOrder:         &createOrder,
		ChangeOrderStatus:   &changeStatus,
		CancelOrder:         &cancelOrder,
		ReturnMaterial:      &returnMaterial,
		GetOrder:            c.CreateGetOrderQueryHandler(),
		QuotePrice:          c.CreateQuotePriceQueryHandler(),
		CheckDeliveryWindow: c.CreateCheckDeliveryWindowQueryHandler(),
	}, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
