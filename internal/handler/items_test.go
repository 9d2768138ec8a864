package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/handler"
	"stockroom/internal/service"
)

// stubItemService returns canned values so handler tests exercise only
// binding, validation and error mapping.
type stubItemService struct {
	resp *dto.ItemResponse
	err  error
}

func (s *stubItemService) Create(context.Context, dto.CreateItemRequest) (*dto.ItemResponse, error) {
	return s.resp, s.err
}
func (s *stubItemService) StockIn(context.Context, uuid.UUID, dto.StockInRequest) (*dto.ItemResponse, error) {
	return s.resp, s.err
}
func (s *stubItemService) StockOut(context.Context, uuid.UUID, dto.StockOutRequest) (*dto.ItemResponse, error) {
	return s.resp, s.err
}
func (s *stubItemService) Delete(context.Context, uuid.UUID) error { return s.err }
func (s *stubItemService) Get(context.Context, uuid.UUID) (*dto.ItemResponse, error) {
	return s.resp, s.err
}
func (s *stubItemService) List(context.Context, dto.ItemFilter) ([]dto.ItemResponse, error) {
	return nil, s.err
}
func (s *stubItemService) ListByWarehouse(context.Context, uuid.UUID) ([]dto.ItemResponse, error) {
	return nil, s.err
}

var _ service.ItemService = (*stubItemService)(nil)

func newItemsRouter(svc service.ItemService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewItemsHandler(svc)
	r.POST("/api/items", h.Create)
	r.POST("/api/items/:id/stock-in", h.StockIn)
	r.POST("/api/items/:id/stock-out", h.StockOut)
	r.DELETE("/api/items/:id", h.Delete)
	return r
}

func TestStockOutInsufficientStockResponse(t *testing.T) {
	r := newItemsRouter(&stubItemService{err: apierror.InsufficientStock(4, 10)})

	body := bytes.NewBufferString(`{"quantity": 10}`)
	req := httptest.NewRequest(http.MethodPost, "/api/items/"+uuid.NewString()+"/stock-out", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var envelope apierror.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Contains(t, envelope.Detail, "available 4")
	assert.Contains(t, envelope.Detail, "requested 10")
}

func TestStockOutRejectsZeroQuantityBeforeService(t *testing.T) {
	// The stub would happily succeed; a 400 proves validation short-circuits.
	r := newItemsRouter(&stubItemService{resp: &dto.ItemResponse{}})

	body := bytes.NewBufferString(`{"quantity": 0}`)
	req := httptest.NewRequest(http.MethodPost, "/api/items/"+uuid.NewString()+"/stock-out", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var envelope apierror.ValidationError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Contains(t, envelope.Fields, "Quantity")
}

func TestStockOutInvalidID(t *testing.T) {
	r := newItemsRouter(&stubItemService{})

	body := bytes.NewBufferString(`{"quantity": 1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/items/not-a-uuid/stock-out", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateItemCreated(t *testing.T) {
	r := newItemsRouter(&stubItemService{resp: &dto.ItemResponse{Name: "Widget", Quantity: 5}})

	payload := dto.CreateItemRequest{
		Name:        "Widget",
		CategoryID:  uuid.NewString(),
		WarehouseID: uuid.NewString(),
		Quantity:    5,
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Widget", resp.Name)
}

func TestStorageErrorsStayGeneric(t *testing.T) {
	r := newItemsRouter(&stubItemService{err: apierror.Storage(assert.AnError)})

	req := httptest.NewRequest(http.MethodDelete, "/api/items/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var envelope apierror.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "internal server error", envelope.Detail)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestDeleteItemNoContent(t *testing.T) {
	r := newItemsRouter(&stubItemService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/items/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
