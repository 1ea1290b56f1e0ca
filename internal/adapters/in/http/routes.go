package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Query parameters of the list and report operations.
type (
	ListCustomersParams struct {
		Name   *string
		Email  *string
		Active *bool
	}

	ListRestaurantsParams struct {
		Category  *string
		Name      *string
		Active    *bool
		MinRating *float64
		Ranked    *bool
		Limit     *int
	}

	ListProductsParams struct {
		Category  *string
		Name      *string
		Available *bool
		MinPrice  *string
		MaxPrice  *string
	}

	ListOrdersParams struct {
		CustomerID   *uuid.UUID
		RestaurantID *uuid.UUID
		Status       *string
		Pending      *bool
		From         *time.Time
		To           *time.Time
		MinTotal     *string
		Sort         *string
		Limit        *int
	}

	CustomerOrdersParams struct {
		Status *string
		From   *time.Time
		To     *time.Time
		Limit  *int
	}

	PeriodParams struct {
		From time.Time
		To   time.Time
	}

	StatusCountsParams struct {
		Status     *string
		CustomerID *uuid.UUID
	}

	QRCodeParams struct {
		Size *int
	}
)

// ServerInterface lists the operations of api/openapi.yaml.
type ServerInterface interface {
	ListCustomers(ctx echo.Context, params ListCustomersParams) error
	CreateCustomer(ctx echo.Context) error
	GetCustomer(ctx echo.Context, id uuid.UUID) error
	UpdateCustomer(ctx echo.Context, id uuid.UUID) error
	DeleteCustomer(ctx echo.Context, id uuid.UUID) error
	ListCustomerOrders(ctx echo.Context, id uuid.UUID, params CustomerOrdersParams) error
	GetCustomerSpending(ctx echo.Context, id uuid.UUID) error

	ListRestaurants(ctx echo.Context, params ListRestaurantsParams) error
	CreateRestaurant(ctx echo.Context) error
	ListRestaurantCategories(ctx echo.Context) error
	GetRestaurant(ctx echo.Context, id uuid.UUID) error
	UpdateRestaurant(ctx echo.Context, id uuid.UUID) error
	DeleteRestaurant(ctx echo.Context, id uuid.UUID) error
	ListRestaurantProducts(ctx echo.Context, id uuid.UUID, available *bool) error
	GetRestaurantSales(ctx echo.Context, id uuid.UUID) error

	ListProducts(ctx echo.Context, params ListProductsParams) error
	CreateProduct(ctx echo.Context) error
	ListProductCategories(ctx echo.Context) error
	GetProduct(ctx echo.Context, id uuid.UUID) error
	UpdateProduct(ctx echo.Context, id uuid.UUID) error
	DeleteProduct(ctx echo.Context, id uuid.UUID) error

	ListOrders(ctx echo.Context, params ListOrdersParams) error
	CreateOrder(ctx echo.Context, idempotencyKey string) error
	ListDeliveredOrders(ctx echo.Context, params PeriodParams) error
	GetOrder(ctx echo.Context, id uuid.UUID) error
	ChangeOrderStatus(ctx echo.Context, id uuid.UUID) error
	CancelOrder(ctx echo.Context, id uuid.UUID) error
	GetOrderQRCode(ctx echo.Context, id uuid.UUID, params QRCodeParams) error

	GetSalesInPeriod(ctx echo.Context, params PeriodParams) error
	GetStatusCounts(ctx echo.Context, params StatusCountsParams) error
}

// ServerInterfaceWrapper binds path, query and header parameters before
// calling the ServerInterface.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindID(ctx echo.Context) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func bindQuery(ctx echo.Context, name string, required bool, dest any) error {
	if err := runtime.BindQueryParameter("form", true, required, name, ctx.QueryParams(), dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

func bindQueries(ctx echo.Context, bindings ...func() error) error {
	for _, bind := range bindings {
		if err := bind(); err != nil {
			return err
		}
	}
	return nil
}

func optionalQuery(ctx echo.Context, name string, dest any) func() error {
	return func() error { return bindQuery(ctx, name, false, dest) }
}

func requiredQuery(ctx echo.Context, name string, dest any) func() error {
	return func() error { return bindQuery(ctx, name, true, dest) }
}

func (w *ServerInterfaceWrapper) withID(fn func(echo.Context, uuid.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindID(ctx)
		if err != nil {
			return err
		}
		return fn(ctx, id)
	}
}

func (w *ServerInterfaceWrapper) ListCustomers(ctx echo.Context) error {
	var params ListCustomersParams
	if err := bindQueries(ctx,
		optionalQuery(ctx, "name", &params.Name),
		optionalQuery(ctx, "email", &params.Email),
		optionalQuery(ctx, "active", &params.Active),
	); err != nil {
		return err
	}
	return w.Handler.ListCustomers(ctx, params)
}

func (w *ServerInterfaceWrapper) ListCustomerOrders(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	var params CustomerOrdersParams
	if err := bindQueries(ctx,
		optionalQuery(ctx, "status", &params.Status),
		optionalQuery(ctx, "from", &params.From),
		optionalQuery(ctx, "to", &params.To),
		optionalQuery(ctx, "limit", &params.Limit),
	); err != nil {
		return err
	}
	return w.Handler.ListCustomerOrders(ctx, id, params)
}

func (w *ServerInterfaceWrapper) ListRestaurants(ctx echo.Context) error {
	var params ListRestaurantsParams
	if err := bindQueries(ctx,
		optionalQuery(ctx, "category", &params.Category),
		optionalQuery(ctx, "name", &params.Name),
		optionalQuery(ctx, "active", &params.Active),
		optionalQuery(ctx, "minRating", &params.MinRating),
		optionalQuery(ctx, "ranked", &params.Ranked),
		optionalQuery(ctx, "limit", &params.Limit),
	); err != nil {
		return err
	}
	return w.Handler.ListRestaurants(ctx, params)
}

func (w *ServerInterfaceWrapper) ListRestaurantProducts(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	var available *bool
	if err := bindQuery(ctx, "available", false, &available); err != nil {
		return err
	}
	return w.Handler.ListRestaurantProducts(ctx, id, available)
}

func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	var params ListProductsParams
	if err := bindQueries(ctx,
		optionalQuery(ctx, "category", &params.Category),
		optionalQuery(ctx, "name", &params.Name),
		optionalQuery(ctx, "available", &params.Available),
		optionalQuery(ctx, "minPrice", &params.MinPrice),
		optionalQuery(ctx, "maxPrice", &params.MaxPrice),
	); err != nil {
		return err
	}
	return w.Handler.ListProducts(ctx, params)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	if err := bindQueries(ctx,
		optionalQuery(ctx, "customerId", &params.CustomerID),
		optionalQuery(ctx, "restaurantId", &params.RestaurantID),
		optionalQuery(ctx, "status", &params.Status),
		optionalQuery(ctx, "pending", &params.Pending),
		optionalQuery(ctx, "from", &params.From),
		optionalQuery(ctx, "to", &params.To),
		optionalQuery(ctx, "minTotal", &params.MinTotal),
		optionalQuery(ctx, "sort", &params.Sort),
		optionalQuery(ctx, "limit", &params.Limit),
	); err != nil {
		return err
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var key string
	if values, ok := ctx.Request().Header[http.CanonicalHeaderKey("Idempotency-Key")]; ok {
		if len(values) != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "Expected one value for Idempotency-Key")
		}
		err := runtime.BindStyledParameterWithOptions("simple", "Idempotency-Key", values[0], &key,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter Idempotency-Key: %s", err))
		}
	}
	return w.Handler.CreateOrder(ctx, key)
}

func (w *ServerInterfaceWrapper) period(fn func(echo.Context, PeriodParams) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var params PeriodParams
		if err := bindQueries(ctx,
			requiredQuery(ctx, "from", &params.From),
			requiredQuery(ctx, "to", &params.To),
		); err != nil {
			return err
		}
		return fn(ctx, params)
	}
}

func (w *ServerInterfaceWrapper) GetOrderQRCode(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	var params QRCodeParams
	if err := bindQuery(ctx, "size", false, &params.Size); err != nil {
		return err
	}
	return w.Handler.GetOrderQRCode(ctx, id, params)
}

func (w *ServerInterfaceWrapper) GetStatusCounts(ctx echo.Context) error {
	var params StatusCountsParams
	if err := bindQueries(ctx,
		optionalQuery(ctx, "status", &params.Status),
		optionalQuery(ctx, "customerId", &params.CustomerID),
	); err != nil {
		return err
	}
	return w.Handler.GetStatusCounts(ctx, params)
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation under baseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/customers", w.ListCustomers)
	router.POST(baseURL+"/customers", si.CreateCustomer)
	router.GET(baseURL+"/customers/:id", w.withID(si.GetCustomer))
	router.PUT(baseURL+"/customers/:id", w.withID(si.UpdateCustomer))
	router.DELETE(baseURL+"/customers/:id", w.withID(si.DeleteCustomer))
	router.GET(baseURL+"/customers/:id/orders", w.ListCustomerOrders)
	router.GET(baseURL+"/customers/:id/spending", w.withID(si.GetCustomerSpending))

	router.GET(baseURL+"/restaurants", w.ListRestaurants)
	router.POST(baseURL+"/restaurants", si.CreateRestaurant)
	router.GET(baseURL+"/restaurants/categories", si.ListRestaurantCategories)
	router.GET(baseURL+"/restaurants/:id", w.withID(si.GetRestaurant))
	router.PUT(baseURL+"/restaurants/:id", w.withID(si.UpdateRestaurant))
	router.DELETE(baseURL+"/restaurants/:id", w.withID(si.DeleteRestaurant))
	router.GET(baseURL+"/restaurants/:id/products", w.ListRestaurantProducts)
	router.GET(baseURL+"/restaurants/:id/sales", w.withID(si.GetRestaurantSales))

	router.GET(baseURL+"/products", w.ListProducts)
	router.POST(baseURL+"/products", si.CreateProduct)
	router.GET(baseURL+"/products/categories", si.ListProductCategories)
	router.GET(baseURL+"/products/:id", w.withID(si.GetProduct))
	router.PUT(baseURL+"/products/:id", w.withID(si.UpdateProduct))
	router.DELETE(baseURL+"/products/:id", w.withID(si.DeleteProduct))

	router.GET(baseURL+"/orders", w.ListOrders)
	router.POST(baseURL+"/orders", w.CreateOrder)
	router.GET(baseURL+"/orders/delivered", w.period(si.ListDeliveredOrders))
	router.GET(baseURL+"/orders/:id", w.withID(si.GetOrder))
	router.PATCH(baseURL+"/orders/:id/status", w.withID(si.ChangeOrderStatus))
	router.PATCH(baseURL+"/orders/:id/cancel", w.withID(si.CancelOrder))
	router.GET(baseURL+"/orders/:id/qrcode", w.GetOrderQRCode)

	router.GET(baseURL+"/reports/sales", w.period(si.GetSalesInPeriod))
	router.GET(baseURL+"/reports/status-counts", w.GetStatusCounts)
}
