package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clothing-store/config"
	"clothing-store/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// These tests exercise the validation layer, which rejects bad input before
// any database write happens, so no store is needed behind the router.
func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, &config.Config{
		CORSOrigins: []string{"http://localhost:5173"},
		JWTSecret:   "test-secret",
	})
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBrandRequiresName(t *testing.T) {
	r := newRouter()

	w := doJSON(r, http.MethodPost, "/api/v1/admin/brands", `{"country":"Spain"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestCreateClothingRequiresNameAndBrand(t *testing.T) {
	r := newRouter()

	w := doJSON(r, http.MethodPost, "/api/v1/admin/clothing", `{"name":"Camiseta Negra"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/admin/clothing", `{"brand_id":"b1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserRequiresNameAndEmail(t *testing.T) {
	r := newRouter()

	w := doJSON(r, http.MethodPost, "/api/v1/admin/users", `{"name":"Carlos"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/admin/users", `{"name":"Carlos","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSaleRejectsNonPositiveQuantity(t *testing.T) {
	r := newRouter()

	// Plain zero.
	w := doJSON(r, http.MethodPost, "/api/v1/admin/sales",
		`{"user_id":"u1","clothing_id":"c1","quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Tagged zero.
	w = doJSON(r, http.MethodPost, "/api/v1/admin/sales",
		`{"user_id":"u1","clothing_id":"c1","quantity":{"$numberInt":"0"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Negative.
	w = doJSON(r, http.MethodPost, "/api/v1/admin/sales",
		`{"user_id":"u1","clothing_id":"c1","quantity":{"$numberInt":"-2"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSaleRequiresReferences(t *testing.T) {
	r := newRouter()

	w := doJSON(r, http.MethodPost, "/api/v1/admin/sales",
		`{"quantity":{"$numberInt":"3"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSaleRejectsNonPositiveQuantity(t *testing.T) {
	r := newRouter()

	w := doJSON(r, http.MethodPut, "/api/v1/admin/sales/s1",
		`{"quantity":{"$numberInt":"0"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Quantity")
}

func TestUpdateSaleRejectsUnparseableDate(t *testing.T) {
	r := newRouter()

	w := doJSON(r, http.MethodPut, "/api/v1/admin/sales/s1",
		`{"date":"next tuesday"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid date")
}

func TestUpdateWithoutIDIsRejected(t *testing.T) {
	r := newRouter()

	w := doJSON(r, http.MethodPut, "/api/v1/admin/brands", `{"name":"Zara"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing brand id")
}

func TestDeleteWithoutIDIsRejected(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/clothing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStockValidatesModeAndAmount(t *testing.T) {
	r := newRouter()

	w := doJSON(r, http.MethodPut, "/api/v1/admin/clothing/c1/stock",
		`{"mode":"increment","amount":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, "/api/v1/admin/clothing/c1/stock",
		`{"mode":"decrement"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, "/api/v1/admin/clothing/c1/stock",
		`{"mode":"decrement","amount":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, "/api/v1/admin/clothing/c1/stock",
		`{"mode":"set","amount":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSalesReportRequiresValidDate(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports/sales", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports/sales?date=15-06-2025", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutesRequireTokenWhenAuthEnabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, &config.Config{
		CORSOrigins: []string{"http://localhost:5173"},
		JWTSecret:   "test-secret",
		RequireAuth: true,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/brands", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
