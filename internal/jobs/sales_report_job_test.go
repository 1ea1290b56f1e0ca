package jobs

import (
	"bytes"
	"testing"
	"time"

	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/restaurant"
	"marketplace/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderUoWFactory struct{ ports.UnitOfWorkFactory }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.UnitOfWorkFactory.Create() }

type customerUoWFactory struct{ ports.UnitOfWorkFactory }

func (f customerUoWFactory) Create() commands.CustomerUoW { return f.UnitOfWorkFactory.Create() }

type restaurantUoWFactory struct{ ports.UnitOfWorkFactory }

func (f restaurantUoWFactory) Create() commands.RestaurantUoW { return f.UnitOfWorkFactory.Create() }

// seedOrders places one order per total and cancels the last one.
func seedOrders(t *testing.T, uows ports.UnitOfWorkFactory, totals ...string) {
	t.Helper()
	ctx := t.Context()

	createCustomer := commands.NewCreateCustomerCommandHandler(customerUoWFactory{uows})
	c, err := createCustomer.Handle(ctx, commands.NewCreateCustomerCommand("Ana Souza", "ana@example.com", "11999990000", "Rua A, 10"))
	require.NoError(t, err)

	createRestaurant := commands.NewCreateRestaurantCommandHandler(restaurantUoWFactory{uows})
	r, err := createRestaurant.Handle(ctx, commands.NewCreateRestaurantCommand(restaurant.Details{
		Name: "Cantina Bella", Category: "Italiana", Address: "Rua B, 20",
	}))
	require.NoError(t, err)

	createOrder := commands.NewCreateOrderCommandHandler(orderUoWFactory{uows}, nil, 0, zerolog.Nop())
	var last kernel.UUID
	for _, total := range totals {
		cmd, err := commands.NewCreateOrderCommand(c.ID(), r.ID(), kernel.MustParseMoney(total), "Rua A, 10", "", "")
		require.NoError(t, err)
		result, err := createOrder.Handle(ctx, cmd)
		require.NoError(t, err)
		last = result.Order.ID()
	}

	cancel := commands.NewCancelOrderCommandHandler(orderUoWFactory{uows})
	cmd, err := commands.NewCancelOrderCommand(last)
	require.NoError(t, err)
	require.NoError(t, cancel.Handle(ctx, cmd))
}

func newTestJob(uows ports.UnitOfWorkFactory, logger zerolog.Logger) *SalesReportJob {
	orders := uows.Create().OrderRepository()
	return NewSalesReportJob(
		queries.NewGetSalesTotalQueryHandler(orders),
		queries.NewCountOrdersByStatusQueryHandler(orders),
		"",
		logger,
	)
}

func TestSalesReportJob_Run(t *testing.T) {
	uows := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, zerolog.Nop())
	var logs bytes.Buffer
	job := newTestJob(uows, zerolog.New(&logs))

	start := kernel.Now().Add(-time.Minute)
	job.lastRun = start
	seedOrders(t, uows, "40.00", "60.00", "25.00")

	end := kernel.Now().Add(time.Minute)
	job.now = func() time.Time { return end }

	report, err := job.Run(t.Context())
	require.NoError(t, err)

	assert.Equal(t, start.Add(time.Microsecond), report.From)
	assert.Equal(t, end, report.To)
	assert.Equal(t, "100.00", report.Sales.Total.String())
	assert.Equal(t, int64(3), report.Sales.OrderCount)
	assert.Equal(t, int64(2), report.PendingCount)
	assert.Contains(t, logs.String(), `"sales_total":"100.00"`)

	// The next window opens right after this one and holds no orders.
	job.now = func() time.Time { return end.Add(time.Hour) }
	report, err = job.Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, end.Add(time.Microsecond), report.From)
	assert.Equal(t, "0.00", report.Sales.Total.String())
	assert.Equal(t, int64(2), report.PendingCount)
}

func TestSalesReportJob_BoundaryOrderReportedOnce(t *testing.T) {
	uows := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, zerolog.Nop())
	job := newTestJob(uows, zerolog.Nop())

	boundary := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.MustParseMoney("12.50"), "Rua A, 10", "", boundary)
	require.NoError(t, err)
	require.NoError(t, uows.Create().OrderRepository().Add(t.Context(), o))

	job.lastRun = boundary.Add(-time.Hour)
	job.now = func() time.Time { return boundary }
	first, err := job.Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "12.50", first.Sales.Total.String())

	job.now = func() time.Time { return boundary.Add(time.Hour) }
	second, err := job.Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "0.00", second.Sales.Total.String())
	assert.Zero(t, second.Sales.OrderCount)

	// A tick within the same microsecond reports an empty window.
	third, err := job.Run(t.Context())
	require.NoError(t, err)
	assert.True(t, third.Sales.Total.IsZero())
	assert.Equal(t, int64(1), third.PendingCount)
}

func TestSalesReportJob_DefaultSchedule(t *testing.T) {
	uows := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, zerolog.Nop())
	job := newTestJob(uows, zerolog.Nop())

	assert.Equal(t, DefaultReportSchedule, job.schedule)
}

func TestJobManager_StartAllRejectsInvalidSchedule(t *testing.T) {
	uows := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, zerolog.Nop())
	orders := uows.Create().OrderRepository()
	job := NewSalesReportJob(
		queries.NewGetSalesTotalQueryHandler(orders),
		queries.NewCountOrdersByStatusQueryHandler(orders),
		"every now and then",
		zerolog.Nop(),
	)

	err := NewJobManager(job).StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sales report job")
}

func TestJobManager_StartAndStop(t *testing.T) {
	uows := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, zerolog.Nop())
	manager := NewJobManager(newTestJob(uows, zerolog.Nop()))

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
