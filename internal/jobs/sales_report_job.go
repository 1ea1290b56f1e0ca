package jobs

import (
	"context"
	"sync"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultReportSchedule is used when no schedule is configured.
const DefaultReportSchedule = "@hourly"

// SalesReport is what one run of SalesReportJob observed.
type SalesReport struct {
	From         time.Time
	To           time.Time
	Sales        queries.GetSalesTotalQueryResponse
	PendingCount int64
}

// SalesReportJob logs, on every tick, the sales of the window since the
// previous tick and the number of orders still open.
type SalesReportJob struct {
	sales    queries.GetSalesTotalQueryHandler
	counts   queries.CountOrdersByStatusQueryHandler
	schedule string
	cron     *cron.Cron
	logger   zerolog.Logger
	now      func() time.Time

	mu sync.Mutex
	// lastRun is the last instant already reported. Timestamps are stored
	// with microsecond precision, so the next window opens one microsecond later.
	lastRun time.Time
}

// NewSalesReportJob creates the job. An empty schedule means DefaultReportSchedule.
func NewSalesReportJob(
	sales queries.GetSalesTotalQueryHandler,
	counts queries.CountOrdersByStatusQueryHandler,
	schedule string,
	logger zerolog.Logger,
) *SalesReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}
	return &SalesReportJob{
		sales:    sales,
		counts:   counts,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With().Str("component", "sales_report_job").Logger(),
		now:      time.Now,
	}
}

// Start registers the job on its schedule. The first window opens now.
func (j *SalesReportJob) Start() error {
	j.mu.Lock()
	j.lastRun = j.clock().Add(-time.Microsecond)
	j.mu.Unlock()

	_, err := j.cron.AddFunc(j.schedule, func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.logger.Error().Err(err).Msg("sales report failed")
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Msg("sales report job started")
	return nil
}

// Stop waits for a running report to finish.
func (j *SalesReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("sales report job stopped")
}

// Run reports the orders created after the previous run, up to and including
// now. Consecutive windows never overlap. The window only advances when the
// report succeeds.
func (j *SalesReportJob) Run(ctx context.Context) (SalesReport, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	to := j.clock()
	from := to
	if !j.lastRun.IsZero() {
		from = j.lastRun.Add(time.Microsecond)
	}

	sales := queries.GetSalesTotalQueryResponse{Total: kernel.ZeroMoney()}
	if !from.After(to) {
		salesQuery, err := queries.NewSalesInPeriodQuery(from, to)
		if err != nil {
			return SalesReport{}, err
		}
		if sales, err = j.sales.Handle(ctx, salesQuery); err != nil {
			return SalesReport{}, err
		}
	}

	countQuery, err := queries.NewCountOrdersByStatusQuery(order.OpenStatuses()...)
	if err != nil {
		return SalesReport{}, err
	}
	counts, err := j.counts.Handle(ctx, countQuery)
	if err != nil {
		return SalesReport{}, err
	}

	report := SalesReport{From: from, To: to, Sales: sales, PendingCount: counts.Total()}
	if to.After(j.lastRun) {
		j.lastRun = to
	}

	j.logger.Info().
		Time("from", report.From).
		Time("to", report.To).
		Str("sales_total", report.Sales.Total.String()).
		Int64("orders", report.Sales.OrderCount).
		Int64("pending", report.PendingCount).
		Msg("sales report")
	return report, nil
}

func (j *SalesReportJob) clock() time.Time {
	return j.now().UTC().Truncate(time.Microsecond)
}
