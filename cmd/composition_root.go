package cmd

import (
	"time"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"github.com/rs/zerolog"
)

// CompositionRoot wires use cases to one storage backend.
type CompositionRoot struct {
	configs     Config
	uowFactory  ports.UnitOfWorkFactory
	idempotency ports.IdempotencyStore
	logger      zerolog.Logger
}

// NewCompositionRoot creates the root. idempotency may be nil, which turns
// Idempotency-Key handling off.
func NewCompositionRoot(
	configs Config,
	uowFactory ports.UnitOfWorkFactory,
	idempotency ports.IdempotencyStore,
	logger zerolog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:     configs,
		uowFactory:  uowFactory,
		idempotency: idempotency,
		logger:      logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) restaurantUoWFactory() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW { return c.uowFactory.Create() })
}

// Readers run outside any transaction.
func (c *CompositionRoot) orderReader() queries.OrderReader {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var ttl time.Duration
	if c.idempotency != nil {
		ttl = c.configs.IdempotencyTTL
	}
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.idempotency, ttl, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.configs.TransitionPolicy())
}

func (c *CompositionRoot) CreateGetSalesTotalQueryHandler() queries.GetSalesTotalQueryHandler {
	return queries.NewGetSalesTotalQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.orderReader())
}

// CreateHTTPHandlers collects every use case served by the HTTP adapter.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	uow := c.uowFactory.Create()
	return httpin.Handlers{
		CreateCustomer: commands.NewCreateCustomerCommandHandler(c.customerUoWFactory()),
		UpdateCustomer: commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory()),
		DeleteCustomer: commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory()),

		CreateRestaurant: commands.NewCreateRestaurantCommandHandler(c.restaurantUoWFactory()),
		UpdateRestaurant: commands.NewUpdateRestaurantCommandHandler(c.restaurantUoWFactory()),
		DeleteRestaurant: commands.NewDeleteRestaurantCommandHandler(c.restaurantUoWFactory()),

		CreateProduct: commands.NewCreateProductCommandHandler(c.productUoWFactory()),
		UpdateProduct: commands.NewUpdateProductCommandHandler(c.productUoWFactory()),
		DeleteProduct: commands.NewDeleteProductCommandHandler(c.productUoWFactory()),

		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		CancelOrder:       commands.NewCancelOrderCommandHandler(c.orderUoWFactory()),

		Customers:    queries.NewCustomerQueryHandler(uow.CustomerRepository()),
		Restaurants:  queries.NewRestaurantQueryHandler(uow.RestaurantRepository()),
		Products:     queries.NewProductQueryHandler(uow.ProductRepository()),
		GetOrder:     queries.NewGetOrderQueryHandler(uow.OrderRepository()),
		ListOrders:   queries.NewListOrdersQueryHandler(uow.OrderRepository()),
		SalesTotal:   c.CreateGetSalesTotalQueryHandler(),
		StatusCounts: c.CreateCountOrdersByStatusQueryHandler(),
	}
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(c.CreateHTTPHandlers(), c.configs.PublicBaseURL, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(jobs.NewSalesReportJob(
		c.CreateGetSalesTotalQueryHandler(),
		c.CreateCountOrdersByStatusQueryHandler(),
		c.configs.ReportCron,
		c.logger,
	))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
