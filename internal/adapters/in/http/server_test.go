package http_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	webshophttp "webshop/internal/adapters/in/http"
	"webshop/internal/core/application/usecases/commands"
	"webshop/internal/core/application/usecases/queries"
	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/order"
	"webshop/internal/core/domain/model/product"
	"webshop/internal/core/ports"
	"webshop/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory doubles for the write path. Queries go straight to SQL and are
// covered by their own integration suites.

type fakeProductRepo struct {
	records map[int][]*product.Product
}

func (f *fakeProductRepo) GetByProductID(_ context.Context, productID int) ([]*product.Product, error) {
	records, ok := f.records[productID]
	if !ok {
		return []*product.Product{}, nil
	}
	return records, nil
}

func (f *fakeProductRepo) GetAll(_ context.Context) ([]*product.Product, error) {
	all := make([]*product.Product, 0)
	for _, records := range f.records {
		all = append(all, records...)
	}
	return all, nil
}

func (f *fakeProductRepo) Update(_ context.Context, _ *product.Product) error {
	return nil
}

type fakeOrderRepo struct {
	added []*order.Order
}

func (f *fakeOrderRepo) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.AssignID(len(f.added) + 1); err != nil {
		return err
	}
	f.added = append(f.added, aggregate)
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, _ int) (*order.Order, error) {
	panic("not used")
}

func (f *fakeOrderRepo) GetAll(_ context.Context) ([]*order.Order, error) {
	panic("not used")
}

type fakeUoW struct {
	products ports.ProductRepository
	orders   ports.OrderRepository
}

func (f *fakeUoW) Begin(_ context.Context) error    { return nil }
func (f *fakeUoW) Commit(_ context.Context) error   { return nil }
func (f *fakeUoW) Rollback(_ context.Context) error { return nil }

func (f *fakeUoW) ProductRepository() ports.ProductRepository { return f.products }
func (f *fakeUoW) OrderRepository() ports.OrderRepository     { return f.orders }

type fakeUoWFactory struct {
	uow commands.UoW
}

func (f *fakeUoWFactory) Create() commands.UoW { return f.uow }

func newTestServer(t *testing.T, catalog map[int][]*product.Product) *webshophttp.Server {
	t.Helper()

	uow := &fakeUoW{
		products: &fakeProductRepo{records: catalog},
		orders:   &fakeOrderRepo{},
	}

	return webshophttp.NewServer(
		commands.NewCreateOrderCommandHandler(&fakeUoWFactory{uow: uow}),
		queries.GetAllOrdersQueryHandler{},
		queries.GetOrderByIDQueryHandler{},
		queries.GetAllProductsQueryHandler{},
		queries.GetProductsByIDQueryHandler{},
		metrics.New(prometheus.NewRegistry()),
		slog.New(slog.DiscardHandler),
	)
}

func stock(t *testing.T, id int, loc kernel.Location, price float64, qty int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, loc, "test product", &price, qty)
	require.NoError(t, err)
	return p
}

func postOrder(t *testing.T, server *webshophttp.Server, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	server.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrder_Success(t *testing.T) {
	server := newTestServer(t, map[int][]*product.Product{
		1: {stock(t, 1, kernel.Munich, 100, 10)},
	})

	rec := postOrder(t, server, `[{"productId":1,"quantity":3}]`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp webshophttp.OrderJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ID)
	require.NotNil(t, resp.OrderCost)
	assert.InDelta(t, 300.0, *resp.OrderCost, 0.0001)
	assert.Equal(t, order.DefaultDeliveryCost, resp.DeliveryCost)
	assert.Equal(t, order.DefaultDeliveryTime, resp.DeliveryTime)
	require.Len(t, resp.LineItems, 1)
	assert.Equal(t, 1, resp.LineItems[0].ProductID)
	assert.Equal(t, 3, resp.LineItems[0].Quantity)
}

func TestCreateOrder_UnknownProduct_Returns400(t *testing.T) {
	server := newTestServer(t, map[int][]*product.Product{})

	rec := postOrder(t, server, `[{"productId":42,"quantity":1}]`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp webshophttp.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "42")
}

func TestCreateOrder_InsufficientStock_Returns409(t *testing.T) {
	server := newTestServer(t, map[int][]*product.Product{
		3: {stock(t, 3, kernel.Munich, 10, 2)},
	})

	rec := postOrder(t, server, `[{"productId":3,"quantity":9}]`)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp webshophttp.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Message, "available")
}

func TestCreateOrder_MissingQuantity_Returns400(t *testing.T) {
	server := newTestServer(t, map[int][]*product.Product{
		5: {stock(t, 5, kernel.Munich, 10, 5)},
	})

	rec := postOrder(t, server, `[{"productId":5}]`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_EmptyBasket_Returns400(t *testing.T) {
	server := newTestServer(t, map[int][]*product.Product{})

	rec := postOrder(t, server, `[]`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_MalformedBody_Returns400(t *testing.T) {
	server := newTestServer(t, map[int][]*product.Product{})

	rec := postOrder(t, server, `{"not":"a list"`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrderByID_NonNumericParam_Returns400(t *testing.T) {
	server := newTestServer(t, map[int][]*product.Product{})
	e := echo.New()
	server.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/orders/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth_ReturnsOK(t *testing.T) {
	server := newTestServer(t, map[int][]*product.Product{})
	e := echo.New()
	server.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
