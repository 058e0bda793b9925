package menu

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-orders/internal/logger"
	"restaurant-orders/internal/models"
)

func newTestHandler(store *fakeDishStore) *Handler {
	log := logger.New("test")
	return NewHandler(NewService(store, log), log)
}

func TestHandler_GetMenu_Preflight(t *testing.T) {
	store := &fakeDishStore{}
	handler := newTestHandler(store)

	req := httptest.NewRequest(http.MethodOptions, "/menu", nil)
	rec := httptest.NewRecorder()
	handler.GetMenu(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
	// Preflight never reaches the store.
	assert.Zero(t, store.calls)
}

func TestHandler_GetMenu_MethodNotAllowed(t *testing.T) {
	store := &fakeDishStore{}
	handler := newTestHandler(store)

	req := httptest.NewRequest(http.MethodDelete, "/menu", nil)
	rec := httptest.NewRecorder()
	handler.GetMenu(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Zero(t, store.calls)
}

func TestHandler_GetMenu(t *testing.T) {
	handler := newTestHandler(&fakeDishStore{dishes: testDishes()})

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	rec := httptest.NewRecorder()
	handler.GetMenu(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var resp models.MenuResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Dishes, 2)
	assert.Equal(t, "1", resp.Dishes[0].ID)
	assert.Equal(t, "Caesar Salad", resp.Dishes[0].Name)
	require.NotNil(t, resp.Dishes[0].OldPrice)
	assert.Equal(t, 15.99, *resp.Dishes[0].OldPrice)
	assert.Nil(t, resp.Dishes[1].OldPrice)
}

func TestHandler_GetMenu_CategoryFilter(t *testing.T) {
	store := &fakeDishStore{dishes: testDishes()}
	handler := newTestHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/menu?category=Main+Courses", nil)
	rec := httptest.NewRecorder()
	handler.GetMenu(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Main Courses", store.lastCategory)

	var resp models.MenuResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Dishes, 1)
	assert.Equal(t, "Margherita Pizza", resp.Dishes[0].Name)
}

func TestHandler_GetMenu_DatabaseCallCarriesDeadline(t *testing.T) {
	store := &fakeDishStore{}
	handler := newTestHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	handler.GetMenu(httptest.NewRecorder(), req)

	assert.True(t, store.hadDeadline, "GetMenu must bound its database work with a deadline")
}

func TestHandler_GetMenu_EmptyMenu(t *testing.T) {
	handler := newTestHandler(&fakeDishStore{})

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	rec := httptest.NewRecorder()
	handler.GetMenu(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"dishes":[]}`, rec.Body.String())
}
