package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chinmayee2524/inventory-tracker/internal/config"
	itemhttp "github.com/Chinmayee2524/inventory-tracker/internal/http"
	"github.com/Chinmayee2524/inventory-tracker/internal/model"
	"github.com/Chinmayee2524/inventory-tracker/internal/repository"
	"github.com/Chinmayee2524/inventory-tracker/internal/service"
	"github.com/Chinmayee2524/inventory-tracker/pkg/validator"
)

type errorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	itemSvc := service.NewItemService(repository.NewMemoryItemRepository())
	svc := itemhttp.New(config.HTTP{}, logger, validator.NewDefaultValidator(), itemSvc)

	r := chi.NewRouter()
	svc.RegisterMiddlewares(r)
	svc.RegisterHandlers(r)

	return r
}

func doRequest(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeItem(t *testing.T, resp *httptest.ResponseRecorder) model.Item {
	t.Helper()

	var item model.Item
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &item))
	return item
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body
}

func TestItemLifecycle(t *testing.T) {
	r := newTestRouter(t)

	resp := doRequest(t, r, http.MethodPost, "/api/items",
		`{"name":"Widget","quantity":5,"price":2.50,"supplier":"Acme"}`)
	require.Equal(t, http.StatusCreated, resp.Code)

	created := decodeItem(t, resp)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Widget", created.Name)
	assert.Equal(t, 5, created.Quantity)
	assert.Equal(t, model.Cents(250), created.Price)
	assert.Equal(t, "Acme", created.Supplier)

	resp = doRequest(t, r, http.MethodGet, "/api/items/1", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, created, decodeItem(t, resp))

	resp = doRequest(t, r, http.MethodPut, "/api/items/1",
		`{"name":"Widget","quantity":3,"price":2.50,"supplier":"Acme"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	updated := decodeItem(t, resp)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, 3, updated.Quantity)

	resp = doRequest(t, r, http.MethodDelete, "/api/items/1", "")
	require.Equal(t, http.StatusNoContent, resp.Code)
	assert.Empty(t, resp.Body.Bytes())

	resp = doRequest(t, r, http.MethodGet, "/api/items/1", "")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Item not found", decodeError(t, resp).Message)
}

func TestListItems(t *testing.T) {
	r := newTestRouter(t)

	resp := doRequest(t, r, http.MethodGet, "/api/items", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())

	for _, body := range []string{
		`{"name":"Widget","quantity":5,"price":2.50,"supplier":"Acme"}`,
		`{"name":"Gadget","quantity":2,"price":9.99,"supplier":"Globex"}`,
	} {
		resp := doRequest(t, r, http.MethodPost, "/api/items", body)
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	resp = doRequest(t, r, http.MethodGet, "/api/items", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var items []model.Item
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Widget", items[0].Name)
	assert.Equal(t, "Gadget", items[1].Name)
}

func TestInvalidItemID(t *testing.T) {
	r := newTestRouter(t)

	paths := []string{
		"/api/items/abc",
		"/api/items/0",
		"/api/items/-1",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
				body := ""
				if method == http.MethodPut {
					body = `{"name":"Widget","quantity":5,"price":2.50,"supplier":"Acme"}`
				}
				resp := doRequest(t, r, method, path, body)
				assert.Equal(t, http.StatusBadRequest, resp.Code)
				assert.Equal(t, "Invalid item ID", decodeError(t, resp).Message)
			}
		})
	}
}

func TestCreateItemValidation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing supplier",
			body:      `{"name":"Widget","quantity":5,"price":2.50}`,
			wantField: "supplier",
		},
		{
			name:      "empty name",
			body:      `{"name":"","quantity":5,"price":2.50,"supplier":"Acme"}`,
			wantField: "name",
		},
		{
			name:      "negative quantity",
			body:      `{"name":"Widget","quantity":-1,"price":2.50,"supplier":"Acme"}`,
			wantField: "quantity",
		},
		{
			name:      "negative price",
			body:      `{"name":"Widget","quantity":5,"price":-0.01,"supplier":"Acme"}`,
			wantField: "price",
		},
		{
			name:      "missing quantity",
			body:      `{"name":"Widget","price":2.50,"supplier":"Acme"}`,
			wantField: "quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, r, http.MethodPost, "/api/items", tt.body)
			require.Equal(t, http.StatusBadRequest, resp.Code)

			body := decodeError(t, resp)
			assert.Equal(t, "Invalid item data", body.Message)

			fields := make([]string, 0, len(body.Errors))
			for _, fe := range body.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestCreateItemAcceptsZeroValues(t *testing.T) {
	r := newTestRouter(t)

	resp := doRequest(t, r, http.MethodPost, "/api/items",
		`{"name":"Widget","quantity":0,"price":0,"supplier":"Acme"}`)
	require.Equal(t, http.StatusCreated, resp.Code)

	item := decodeItem(t, resp)
	assert.Equal(t, 0, item.Quantity)
	assert.Equal(t, model.Cents(0), item.Price)
}

func TestCreateItemMalformedBody(t *testing.T) {
	r := newTestRouter(t)

	resp := doRequest(t, r, http.MethodPost, "/api/items", `{"name":`)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Invalid item data", decodeError(t, resp).Message)
}

func TestUpdateAbsentItem(t *testing.T) {
	r := newTestRouter(t)

	resp := doRequest(t, r, http.MethodPut, "/api/items/42",
		`{"name":"Widget","quantity":5,"price":2.50,"supplier":"Acme"}`)
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Item not found", decodeError(t, resp).Message)
}

func TestUpdateIsFullReplace(t *testing.T) {
	r := newTestRouter(t)

	resp := doRequest(t, r, http.MethodPost, "/api/items",
		`{"name":"Widget","quantity":5,"price":2.50,"supplier":"Acme"}`)
	require.Equal(t, http.StatusCreated, resp.Code)

	// A partial body is rejected rather than merged.
	resp = doRequest(t, r, http.MethodPut, "/api/items/1", `{"name":"Widget 2"}`)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doRequest(t, r, http.MethodGet, "/api/items/1", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 5, decodeItem(t, resp).Quantity)
}

func TestDeleteAbsentItem(t *testing.T) {
	r := newTestRouter(t)

	resp := doRequest(t, r, http.MethodDelete, "/api/items/42", "")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Item not found", decodeError(t, resp).Message)
}

func TestIDsAreNotReused(t *testing.T) {
	r := newTestRouter(t)

	body := `{"name":"Widget","quantity":5,"price":2.50,"supplier":"Acme"}`

	resp := doRequest(t, r, http.MethodPost, "/api/items", body)
	require.Equal(t, http.StatusCreated, resp.Code)
	require.Equal(t, int64(1), decodeItem(t, resp).ID)

	resp = doRequest(t, r, http.MethodDelete, "/api/items/1", "")
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doRequest(t, r, http.MethodPost, "/api/items", body)
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, int64(2), decodeItem(t, resp).ID)
}

var errStorageDown = errors.New("connection refused")

// failingItemRepository simulates a storage backend that is down.
type failingItemRepository struct{}

var _ repository.ItemRepository = failingItemRepository{}

func (failingItemRepository) ListItems(_ context.Context) ([]model.Item, error) {
	return nil, errStorageDown
}

func (failingItemRepository) GetItem(_ context.Context, _ int64) (model.Item, bool, error) {
	return model.Item{}, false, errStorageDown
}

func (failingItemRepository) CreateItem(_ context.Context, _ repository.ItemParams) (model.Item, error) {
	return model.Item{}, errStorageDown
}

func (failingItemRepository) UpdateItem(_ context.Context, _ int64, _ repository.ItemParams) (model.Item, bool, error) {
	return model.Item{}, false, errStorageDown
}

func (failingItemRepository) DeleteItem(_ context.Context, _ int64) (bool, error) {
	return false, errStorageDown
}

func TestUnexpectedErrorReturns500(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	itemSvc := service.NewItemService(failingItemRepository{})
	svc := itemhttp.New(config.HTTP{}, logger, validator.NewDefaultValidator(), itemSvc)

	r := chi.NewRouter()
	svc.RegisterMiddlewares(r)
	svc.RegisterHandlers(r)

	body := `{"name":"Widget","quantity":5,"price":2.50,"supplier":"Acme"}`
	requests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "list", method: http.MethodGet, path: "/api/items"},
		{name: "get", method: http.MethodGet, path: "/api/items/1"},
		{name: "create", method: http.MethodPost, path: "/api/items", body: body},
		{name: "update", method: http.MethodPut, path: "/api/items/1", body: body},
		{name: "delete", method: http.MethodDelete, path: "/api/items/1"},
	}

	for _, tt := range requests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, r, tt.method, tt.path, tt.body)
			require.Equal(t, http.StatusInternalServerError, resp.Code)

			got := decodeError(t, resp)
			assert.Equal(t, "An unexpected error occurred", got.Message)
			assert.Empty(t, got.Errors)
		})
	}
}
