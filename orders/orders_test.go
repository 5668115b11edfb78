package orders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sharee/models"
	"sharee/shipping"
	"sharee/store"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderStore struct {
	orders []models.Order
}

func (f *fakeOrderStore) Create(ctx context.Context, o models.Order) error {
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeOrderStore) List(ctx context.Context) ([]models.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderStore) FindByID(ctx context.Context, id string) (models.Order, error) {
	for _, o := range f.orders {
		if o.OrderID == id {
			return o, nil
		}
	}
	return models.Order{}, store.ErrNotFound
}

func (f *fakeOrderStore) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	for i, o := range f.orders {
		if o.OrderID == id {
			f.orders[i].Status = status
			return f.orders[i], nil
		}
	}
	return models.Order{}, store.ErrNotFound
}

func (f *fakeOrderStore) Delete(ctx context.Context, id string) error {
	for i, o := range f.orders {
		if o.OrderID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeProductStore struct {
	products []models.Product
}

func (f *fakeProductStore) Create(ctx context.Context, p models.Product) error { return nil }
func (f *fakeProductStore) List(ctx context.Context) ([]models.Product, error) {
	return f.products, nil
}
func (f *fakeProductStore) FindByID(ctx context.Context, id string) (models.Product, error) {
	for _, p := range f.products {
		if p.ProductID == id {
			return p, nil
		}
	}
	return models.Product{}, store.ErrNotFound
}
func (f *fakeProductStore) Delete(ctx context.Context, id string) error { return nil }

func testHandler() (*Handler, *fakeOrderStore) {
	orderStore := &fakeOrderStore{}
	productStore := &fakeProductStore{products: []models.Product{
		{ProductID: "a", Name: "Jamdani", OfferPrice: 500},
		{ProductID: "b", Name: "Katan", OfferPrice: 300},
	}}
	h := &Handler{
		Orders:   orderStore,
		Products: productStore,
		Rates:    shipping.NewRateTable(60, 120),
	}
	return h, orderStore
}

func place(h *Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Place(w, r, nil)
	return w
}

const validOrder = `{
	"customerName": "Anika Rahman",
	"phone": "01711000000",
	"address": "House 7, Road 3, Dhanmondi",
	"shipping": "inside",
	"products": [
		{"productId": "a", "quantity": 2},
		{"productId": "b", "quantity": 1}
	]
}`

func TestPlaceOrder(t *testing.T) {
	h, orderStore := testHandler()

	w := place(h, validOrder)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Len(t, orderStore.orders, 1)
	order := orderStore.orders[0]
	assert.Equal(t, 1360.0, order.TotalPrice)
	assert.Equal(t, models.StatusPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 500.0, order.Items[0].Price, "snapshot uses catalog price, not client input")
}

func TestPlaceOrderIgnoresUnknownProducts(t *testing.T) {
	h, orderStore := testHandler()

	body := strings.Replace(validOrder, `"productId": "b"`, `"productId": "ghost"`, 1)
	w := place(h, body)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, orderStore.orders, 1)
	require.Len(t, orderStore.orders[0].Items, 1)
	assert.Equal(t, "a", orderStore.orders[0].Items[0].ProductID)
}

func TestPlaceOrderKeepsDuplicateProductEntries(t *testing.T) {
	h, orderStore := testHandler()

	// A repeated productId must not cancel the first entry out of the
	// selection; the first occurrence wins.
	body := `{
		"customerName": "Anika Rahman",
		"phone": "01711000000",
		"address": "House 7, Road 3, Dhanmondi",
		"shipping": "inside",
		"products": [
			{"productId": "a", "quantity": 2},
			{"productId": "a", "quantity": 5}
		]
	}`
	w := place(h, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Len(t, orderStore.orders, 1)
	order := orderStore.orders[0]
	require.Len(t, order.Items, 1)
	assert.Equal(t, "a", order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 1060.0, order.TotalPrice)
}

func TestPlaceOrderValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty cart", `{"customerName":"A","phone":"1","address":"x","shipping":"inside","products":[]}`},
		{"missing phone", `{"customerName":"A","address":"x","shipping":"inside","products":[{"productId":"a","quantity":1}]}`},
		{"bad zone", `{"customerName":"A","phone":"1","address":"x","shipping":"nowhere","products":[{"productId":"a","quantity":1}]}`},
		{"bad json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, orderStore := testHandler()
			w := place(h, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, orderStore.orders)
		})
	}
}

func TestPlaceOrderTwiceCreatesTwoOrders(t *testing.T) {
	h, orderStore := testHandler()

	require.Equal(t, http.StatusOK, place(h, validOrder).Code)
	require.Equal(t, http.StatusOK, place(h, validOrder).Code)

	require.Len(t, orderStore.orders, 2)
	assert.NotEqual(t, orderStore.orders[0].OrderID, orderStore.orders[1].OrderID)
}

func TestUpdateStatus(t *testing.T) {
	h, orderStore := testHandler()
	orderStore.orders = []models.Order{{OrderID: "o1", Status: models.StatusPending}}

	r := httptest.NewRequest(http.MethodPatch, "/api/orders/o1", strings.NewReader(`{"status":"shipped"}`))
	w := httptest.NewRecorder()
	h.UpdateStatus(w, r, httprouter.Params{{Key: "id", Value: "o1"}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusShipped, orderStore.orders[0].Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	h, orderStore := testHandler()
	orderStore.orders = []models.Order{{OrderID: "o1", Status: models.StatusPending}}

	r := httptest.NewRequest(http.MethodPatch, "/api/orders/o1", strings.NewReader(`{"status":"Pending"}`))
	w := httptest.NewRecorder()
	h.UpdateStatus(w, r, httprouter.Params{{Key: "id", Value: "o1"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.StatusPending, orderStore.orders[0].Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	h, _ := testHandler()

	r := httptest.NewRequest(http.MethodPatch, "/api/orders/nope", strings.NewReader(`{"status":"shipped"}`))
	w := httptest.NewRecorder()
	h.UpdateStatus(w, r, httprouter.Params{{Key: "id", Value: "nope"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteOrder(t *testing.T) {
	h, orderStore := testHandler()
	orderStore.orders = []models.Order{{OrderID: "o1"}}

	r := httptest.NewRequest(http.MethodDelete, "/api/orders/o1", nil)
	w := httptest.NewRecorder()
	h.Delete(w, r, httprouter.Params{{Key: "id", Value: "o1"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, orderStore.orders)
}

func TestInvoice(t *testing.T) {
	h, orderStore := testHandler()
	orderStore.orders = []models.Order{{
		OrderID:      "o1",
		CustomerName: "Anika Rahman",
		Phone:        "01711000000",
		Address:      "Dhanmondi, Dhaka",
		Shipping:     shipping.ZoneInside,
		Items:        []models.OrderItem{{ProductID: "a", Name: "Jamdani", Price: 500, Quantity: 2}},
		TotalPrice:   1060,
		Status:       models.StatusPending,
		CreatedAt:    time.Now(),
	}}

	r := httptest.NewRequest(http.MethodGet, "/api/orders/o1/invoice", nil)
	w := httptest.NewRecorder()
	h.Invoice(w, r, httprouter.Params{{Key: "id", Value: "o1"}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"), "response is a PDF document")
}

func TestInvoiceNotFound(t *testing.T) {
	h, _ := testHandler()

	r := httptest.NewRequest(http.MethodGet, "/api/orders/nope/invoice", nil)
	w := httptest.NewRecorder()
	h.Invoice(w, r, httprouter.Params{{Key: "id", Value: "nope"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
