package jobs

import (
	"context"
	"time"

	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/ports"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultMaterialReturnSchedule runs the overdue scan at the start of every hour.
const DefaultMaterialReturnSchedule = "@hourly"

// OverdueMaterialReturnsReader is the read model the job scans.
type OverdueMaterialReturnsReader interface {
	Handle(
		ctx context.Context,
		query queries.GetOverdueMaterialReturnsQuery,
	) ([]queries.GetOverdueMaterialReturnsQueryResponse, error)
}

// Gauge receives the number of overdue returns found by the last scan.
type Gauge interface {
	Set(value float64)
}

// MaterialReturnJob periodically lists the orders whose lent material is late,
// logs each of them and publishes the count.
type MaterialReturnJob struct {
	reader   OverdueMaterialReturnsReader
	clock    ports.Clock
	gauge    Gauge
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewMaterialReturnJob creates the overdue scan job. An empty schedule means
// DefaultMaterialReturnSchedule.
func NewMaterialReturnJob(
	reader OverdueMaterialReturnsReader,
	clock ports.Clock,
	gauge Gauge,
	schedule string,
	logger *zap.Logger,
) *MaterialReturnJob {
	if schedule == "" {
		schedule = DefaultMaterialReturnSchedule
	}
	return &MaterialReturnJob{
		reader:   reader,
		clock:    clock,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "material_return_job")),
	}
}

// Name identifies the job in logs and errors.
func (j *MaterialReturnJob) Name() string {
	return "material return job"
}

// Start registers the scan on its schedule and starts the scheduler.
func (j *MaterialReturnJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.Error("material return scan failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("material return job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running scan to finish.
func (j *MaterialReturnJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("material return job stopped")
}

// RunOnce scans for overdue returns at the current clock time and returns how
// many were found.
func (j *MaterialReturnJob) RunOnce(ctx context.Context) (int, error) {
	query, err := queries.NewGetOverdueMaterialReturnsQuery(j.clock.Now())
	if err != nil {
		return 0, err
	}

	overdue, err := j.reader.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	for _, o := range overdue {
		j.logger.Warn("material return overdue",
			zap.String("order_number", o.Number),
			zap.String("customer", o.CustomerName),
			zap.String("email", o.CustomerEmail),
			zap.Time("deadline", o.Deadline),
			zap.Duration("overdue_by", o.OverdueBy),
		)
	}

	j.gauge.Set(float64(len(overdue)))
	return len(overdue), nil
}
