package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/memory"
	redisstore "marketplace/internal/adapters/out/redis"
	"marketplace/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite

	handler http.Handler
	redis   *miniredis.Miniredis
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.redis = miniredis.RunT(s.T())
	client := goredis.NewClient(&goredis.Options{Addr: s.redis.Addr()})
	s.T().Cleanup(func() { _ = client.Close() })

	configs := cmd.Config{
		OrderTransitionPolicy: "strict",
		IdempotencyTTL:        time.Hour,
		PublicBaseURL:         "https://shop.example/",
	}
	var idempotency ports.IdempotencyStore = redisstore.NewIdempotencyStore(client)
	uows := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, zerolog.Nop())
	root := cmd.NewCompositionRoot(configs, uows, idempotency, zerolog.Nop())

	_, handler, err := httpin.NewRouter(root.CreateHTTPServer(), httpin.RouterConfig{
		AllowedOrigins: []string{"https://app.example"},
	}, zerolog.Nop())
	s.Require().NoError(err)
	s.handler = handler
}

func (s *ServerTestSuite) do(method, target string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder, dest any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), dest), rec.Body.String())
}

func (s *ServerTestSuite) requireStatus(rec *httptest.ResponseRecorder, code int) {
	s.Require().Equal(code, rec.Code, rec.Body.String())
}

func (s *ServerTestSuite) createCustomer(email string) httpin.Customer {
	rec := s.do(http.MethodPost, "/api/v1/customers", map[string]any{
		"name": "Ana Souza", "email": email, "phone": "11999990000", "address": "Rua A, 10",
	})
	s.requireStatus(rec, http.StatusCreated)
	var c httpin.Customer
	s.decode(rec, &c)
	return c
}

func (s *ServerTestSuite) createRestaurant(name, category string, rating float64) httpin.Restaurant {
	rec := s.do(http.MethodPost, "/api/v1/restaurants", map[string]any{
		"name": name, "category": category, "address": "Rua B, 20", "rating": rating,
	})
	s.requireStatus(rec, http.StatusCreated)
	var r httpin.Restaurant
	s.decode(rec, &r)
	return r
}

func (s *ServerTestSuite) createOrder(c httpin.Customer, r httpin.Restaurant, total string, headers ...string) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, "/api/v1/orders", map[string]any{
		"customerId":      c.ID,
		"restaurantId":    r.ID,
		"totalAmount":     total,
		"deliveryAddress": "Rua A, 10",
	}, headers...)
}

func (s *ServerTestSuite) placeOrder(c httpin.Customer, r httpin.Restaurant, total string) httpin.Order {
	rec := s.createOrder(c, r, total)
	s.requireStatus(rec, http.StatusCreated)
	var o httpin.Order
	s.decode(rec, &o)
	return o
}

func (s *ServerTestSuite) setStatus(o httpin.Order, status string) *httptest.ResponseRecorder {
	return s.do(http.MethodPatch, "/api/v1/orders/"+o.ID.String()+"/status", map[string]string{"status": status})
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil)
	s.requireStatus(rec, http.StatusOK)
}

func (s *ServerTestSuite) TestCustomers() {
	c := s.createCustomer("Ana@Example.com")
	s.Equal("ana@example.com", c.Email)
	s.True(c.Active)

	rec := s.do(http.MethodPost, "/api/v1/customers", map[string]any{
		"name": "Other Ana", "email": "ana@example.com", "phone": "11888880000",
	})
	s.requireStatus(rec, http.StatusConflict)
	var body httpin.Error
	s.decode(rec, &body)
	s.Equal(http.StatusConflict, body.Code)
	s.Contains(body.Message, "email")

	rec = s.do(http.MethodPut, "/api/v1/customers/"+c.ID.String(), map[string]any{"active": false})
	s.requireStatus(rec, http.StatusOK)
	var updated httpin.Customer
	s.decode(rec, &updated)
	s.False(updated.Active)
	s.Equal("Ana Souza", updated.Name)

	rec = s.do(http.MethodGet, "/api/v1/customers?active=true", nil)
	s.requireStatus(rec, http.StatusOK)
	var active []httpin.Customer
	s.decode(rec, &active)
	s.Empty(active)

	rec = s.do(http.MethodDelete, "/api/v1/customers/"+c.ID.String(), nil)
	s.requireStatus(rec, http.StatusNoContent)

	rec = s.do(http.MethodGet, "/api/v1/customers/"+c.ID.String(), nil)
	s.requireStatus(rec, http.StatusNotFound)
}

func (s *ServerTestSuite) TestRequestValidation() {
	// Missing required email.
	rec := s.do(http.MethodPost, "/api/v1/customers", map[string]any{"name": "Ana Souza", "phone": "11999990000"})
	s.requireStatus(rec, http.StatusBadRequest)

	rec = s.do(http.MethodGet, "/api/v1/customers/not-a-uuid", nil)
	s.requireStatus(rec, http.StatusBadRequest)

	rec = s.do(http.MethodGet, "/api/v1/orders?sort=cheapest", nil)
	s.requireStatus(rec, http.StatusBadRequest)

	rec = s.do(http.MethodGet, "/api/v1/reports/sales?from=2024-01-01T00:00:00Z", nil)
	s.requireStatus(rec, http.StatusBadRequest)

	rec = s.do(http.MethodGet, "/api/v1/nowhere", nil)
	s.requireStatus(rec, http.StatusNotFound)
	var body httpin.Error
	s.decode(rec, &body)
	s.Equal(http.StatusNotFound, body.Code)
}

func (s *ServerTestSuite) TestRestaurantsAndProducts() {
	bella := s.createRestaurant("Cantina Bella", "Italiana", 4.5)
	s.createRestaurant("Sushi Kai", "Japonesa", 4.8)

	rec := s.do(http.MethodGet, "/api/v1/restaurants?ranked=true&limit=1", nil)
	s.requireStatus(rec, http.StatusOK)
	var top []httpin.Restaurant
	s.decode(rec, &top)
	s.Require().Len(top, 1)
	s.Equal("Sushi Kai", top[0].Name)

	rec = s.do(http.MethodGet, "/api/v1/restaurants/categories", nil)
	s.requireStatus(rec, http.StatusOK)
	var categories []string
	s.decode(rec, &categories)
	s.Equal([]string{"Italiana", "Japonesa"}, categories)

	rec = s.do(http.MethodPost, "/api/v1/products", map[string]any{
		"restaurantId": bella.ID, "name": "Lasanha", "price": "42.90", "category": "Massas",
	})
	s.requireStatus(rec, http.StatusCreated)
	var lasanha httpin.Product
	s.decode(rec, &lasanha)
	s.Equal("42.90", lasanha.Price)

	rec = s.do(http.MethodPut, "/api/v1/products/"+lasanha.ID.String(), map[string]any{"available": false})
	s.requireStatus(rec, http.StatusOK)

	rec = s.do(http.MethodGet, "/api/v1/restaurants/"+bella.ID.String()+"/products?available=true", nil)
	s.requireStatus(rec, http.StatusOK)
	var menu []httpin.Product
	s.decode(rec, &menu)
	s.Empty(menu)

	rec = s.do(http.MethodGet, "/api/v1/restaurants/"+uuid.NewString()+"/products", nil)
	s.requireStatus(rec, http.StatusNotFound)

	rec = s.do(http.MethodPost, "/api/v1/products", map[string]any{
		"restaurantId": uuid.New(), "name": "Temaki", "price": "20.00", "category": "Japonesa",
	})
	s.requireStatus(rec, http.StatusNotFound)

	rec = s.do(http.MethodPost, "/api/v1/products", map[string]any{
		"restaurantId": bella.ID, "name": "Temaki", "price": "20.00",
	})
	s.requireStatus(rec, http.StatusBadRequest)
}

func (s *ServerTestSuite) TestOrderLifecycle() {
	c := s.createCustomer("ana@example.com")
	r := s.createRestaurant("Cantina Bella", "Italiana", 4.5)

	o := s.placeOrder(c, r, "100.00")
	s.Equal("pending", o.Status)
	s.Equal("100.00", o.TotalAmount)
	s.Nil(o.DeliveredAt)

	rec := s.setStatus(o, "delivered")
	s.requireStatus(rec, http.StatusConflict)

	for _, status := range []string{"confirmed", "preparing", "out_for_delivery", "delivered"} {
		rec = s.setStatus(o, status)
		s.requireStatus(rec, http.StatusOK)
	}
	var delivered httpin.Order
	s.decode(rec, &delivered)
	s.Equal("delivered", delivered.Status)
	s.NotNil(delivered.DeliveredAt)

	rec = s.do(http.MethodPatch, "/api/v1/orders/"+o.ID.String()+"/cancel", nil)
	s.requireStatus(rec, http.StatusConflict)

	second := s.placeOrder(c, r, "50.00")
	rec = s.do(http.MethodPatch, "/api/v1/orders/"+second.ID.String()+"/cancel", nil)
	s.requireStatus(rec, http.StatusNoContent)

	rec = s.do(http.MethodGet, "/api/v1/customers/"+c.ID.String()+"/spending", nil)
	s.requireStatus(rec, http.StatusOK)
	var spending httpin.SalesTotal
	s.decode(rec, &spending)
	s.Equal("100.00", spending.Total)
	s.Equal(int64(2), spending.OrderCount)

	rec = s.do(http.MethodGet, "/api/v1/customers/"+c.ID.String()+"/orders?status=cancelled", nil)
	s.requireStatus(rec, http.StatusOK)
	var cancelled []httpin.Order
	s.decode(rec, &cancelled)
	s.Require().Len(cancelled, 1)
	s.Equal(second.ID, cancelled[0].ID)

	rec = s.do(http.MethodPatch, "/api/v1/orders/"+uuid.NewString()+"/cancel", nil)
	s.requireStatus(rec, http.StatusNotFound)
}

func (s *ServerTestSuite) TestCreateOrder_UnknownCustomer() {
	r := s.createRestaurant("Cantina Bella", "Italiana", 4.5)
	rec := s.createOrder(httpin.Customer{ID: uuid.New()}, r, "10.00")
	s.requireStatus(rec, http.StatusNotFound)
}

func (s *ServerTestSuite) TestCreateOrder_IdempotencyKey() {
	c := s.createCustomer("ana@example.com")
	r := s.createRestaurant("Cantina Bella", "Italiana", 4.5)

	first := s.createOrder(c, r, "30.00", "Idempotency-Key", "checkout-42")
	s.requireStatus(first, http.StatusCreated)
	replay := s.createOrder(c, r, "30.00", "Idempotency-Key", "checkout-42")
	s.requireStatus(replay, http.StatusOK)

	var a, b httpin.Order
	s.decode(first, &a)
	s.decode(replay, &b)
	s.Equal(a.ID, b.ID)

	rec := s.do(http.MethodGet, "/api/v1/orders?customerId="+c.ID.String(), nil)
	s.requireStatus(rec, http.StatusOK)
	var orders []httpin.Order
	s.decode(rec, &orders)
	s.Len(orders, 1)
}

func (s *ServerTestSuite) TestOrderListings() {
	c := s.createCustomer("ana@example.com")
	r := s.createRestaurant("Cantina Bella", "Italiana", 4.5)
	small := s.placeOrder(c, r, "20.00")
	big := s.placeOrder(c, r, "80.00")
	s.requireStatus(s.setStatus(small, "confirmed"), http.StatusOK)
	s.requireStatus(s.do(http.MethodPatch, "/api/v1/orders/"+big.ID.String()+"/cancel", nil), http.StatusNoContent)

	rec := s.do(http.MethodGet, "/api/v1/orders?pending=true", nil)
	s.requireStatus(rec, http.StatusOK)
	var pending []httpin.Order
	s.decode(rec, &pending)
	s.Require().Len(pending, 1)
	s.Equal(small.ID, pending[0].ID)

	rec = s.do(http.MethodGet, "/api/v1/orders?minTotal=50", nil)
	s.requireStatus(rec, http.StatusOK)
	var above []httpin.Order
	s.decode(rec, &above)
	s.Require().Len(above, 1)
	s.Equal(big.ID, above[0].ID)

	rec = s.do(http.MethodGet, "/api/v1/orders?sort=total", nil)
	s.requireStatus(rec, http.StatusOK)
	var byTotal []httpin.Order
	s.decode(rec, &byTotal)
	s.Require().Len(byTotal, 2)
	s.Equal(big.ID, byTotal[0].ID)

	rec = s.do(http.MethodGet, "/api/v1/reports/status-counts", nil)
	s.requireStatus(rec, http.StatusOK)
	var counts httpin.StatusCounts
	s.decode(rec, &counts)
	s.Len(counts.Counts, 6)
	s.Equal(int64(2), counts.Total)

	rec = s.do(http.MethodGet, "/api/v1/reports/status-counts?status=cancelled&customerId="+c.ID.String(), nil)
	s.requireStatus(rec, http.StatusOK)
	s.decode(rec, &counts)
	s.Require().Len(counts.Counts, 1)
	s.Equal(httpin.StatusCount{Status: "cancelled", Count: 1}, counts.Counts[0])

	from := url.QueryEscape(time.Now().Add(-time.Hour).UTC().Format(time.RFC3339))
	to := url.QueryEscape(time.Now().Add(time.Hour).UTC().Format(time.RFC3339))
	rec = s.do(http.MethodGet, "/api/v1/reports/sales?from="+from+"&to="+to, nil)
	s.requireStatus(rec, http.StatusOK)
	var sales httpin.SalesTotal
	s.decode(rec, &sales)
	s.Equal("20.00", sales.Total)

	rec = s.do(http.MethodGet, "/api/v1/reports/sales?from="+to+"&to="+from, nil)
	s.requireStatus(rec, http.StatusBadRequest)
}

func (s *ServerTestSuite) TestOrderQRCode() {
	c := s.createCustomer("ana@example.com")
	r := s.createRestaurant("Cantina Bella", "Italiana", 4.5)
	o := s.placeOrder(c, r, "10.00")

	rec := s.do(http.MethodGet, "/api/v1/orders/"+o.ID.String()+"/qrcode?size=128", nil)
	s.requireStatus(rec, http.StatusOK)
	s.Equal("image/png", rec.Header().Get("Content-Type"))
	s.True(bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = s.do(http.MethodGet, "/api/v1/orders/"+uuid.NewString()+"/qrcode", nil)
	s.requireStatus(rec, http.StatusNotFound)

	rec = s.do(http.MethodGet, "/api/v1/orders/"+o.ID.String()+"/qrcode?size=8", nil)
	s.requireStatus(rec, http.StatusBadRequest)
}

func (s *ServerTestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/orders", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
