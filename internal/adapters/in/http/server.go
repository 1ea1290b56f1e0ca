package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateCustomer commands.CreateCustomerCommandHandler
	UpdateCustomer commands.UpdateCustomerCommandHandler
	DeleteCustomer commands.DeleteCustomerCommandHandler

	CreateRestaurant commands.CreateRestaurantCommandHandler
	UpdateRestaurant commands.UpdateRestaurantCommandHandler
	DeleteRestaurant commands.DeleteRestaurantCommandHandler

	CreateProduct commands.CreateProductCommandHandler
	UpdateProduct commands.UpdateProductCommandHandler
	DeleteProduct commands.DeleteProductCommandHandler

	CreateOrder       commands.CreateOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler

	Customers    queries.CustomerQueryHandler
	Restaurants  queries.RestaurantQueryHandler
	Products     queries.ProductQueryHandler
	GetOrder     queries.GetOrderQueryHandler
	ListOrders   queries.ListOrdersQueryHandler
	SalesTotal   queries.GetSalesTotalQueryHandler
	StatusCounts queries.CountOrdersByStatusQueryHandler
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	h             Handlers
	logger        zerolog.Logger
	publicBaseURL string
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates the HTTP server. publicBaseURL prefixes the links
// encoded into order QR codes.
func NewServer(handlers Handlers, publicBaseURL string, logger zerolog.Logger) *Server {
	return &Server{
		h:             handlers,
		logger:        logger.With().Str("component", "http").Logger(),
		publicBaseURL: publicBaseURL,
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	return writeError(ctx, s.logger, err)
}

// bindBody decodes the JSON request body into dest.
func bindBody(ctx echo.Context, dest any) error {
	if err := ctx.Bind(dest); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	return nil
}

func kernelID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalKernelID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	kid, err := kernelID(*id)
	if err != nil {
		return nil, err
	}
	return &kid, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// Health answers liveness probes.
func Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
