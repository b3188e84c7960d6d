package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"evdealer/fixtures"
	"evdealer/handlers"
	"evdealer/models"
	"evdealer/repository/repotest"
	"evdealer/services"
	"evdealer/store"
	"evdealer/utils"
	"evdealer/validators"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var tokens = utils.NewTokenIssuer("routes-test-secret", time.Hour)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cipher, err := utils.NewFieldCipher("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	v := validators.New(nil)
	mem := store.NewMemory()
	customers := repotest.NewCustomers(
		models.Customer{ID: "c1", FullName: "An", SalesStaffID: "sales-1"},
		models.Customer{ID: "c2", FullName: "Binh", SalesStaffID: "sales-2"},
	)
	payments := &repotest.Payments{}
	vehicles := services.NewVehicleService(&repotest.Vehicles{Items: fixtures.Vehicles()}, 12)

	h := &handlers.Handler{
		Vehicles:   vehicles,
		Compare:    services.NewCompareService(vehicles, mem),
		Bookings:   services.NewBookingService(v, mem, 0),
		Customers:  services.NewCustomerService(customers, payments, v, cipher),
		Orders:     services.NewOrderService(repotest.NewOrders(payments), customers),
		Dealers:    services.NewDealerService(repotest.NewDealers(fixtures.Dealers()...)),
		Promotions: services.NewPromotionService(repotest.NewPromotions()),
		Auth:       services.NewAuthService(repotest.NewStaff(), tokens),
	}

	r := gin.New()
	Setup(r, h, tokens)
	return r
}

func bearer(t *testing.T, staffID, role string) string {
	t.Helper()
	token, _, err := tokens.Issue(staffID, role)
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(r *gin.Engine, method, path, auth, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handlers.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	return resp.Code
}

func TestPublicRoutes(t *testing.T) {
	r := newRouter(t)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/ping", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/vehicles", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/vehicles/vf3", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/dealers", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/promotions", "", "").Code)
	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/api/compare", "", "").Code)
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"missing header", "", "ERR_NO_AUTH_HEADER"},
		{"wrong scheme", "Basic abc", "ERR_INVALID_AUTH_FORMAT"},
		{"garbage token", "Bearer not.a.token", "ERR_INVALID_TOKEN"},
		{"unknown role", bearer(t, "x1", "renter"), "ERR_INVALID_ROLE"},
		{"missing staff id", bearer(t, "", models.RoleSales), "ERR_INVALID_TOKEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, http.MethodGet, "/api/customers", tt.header, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	r := newRouter(t)
	expired := utils.NewTokenIssuer("routes-test-secret", -time.Minute)
	token, _, err := expired.Issue("sales-1", models.RoleSales)
	require.NoError(t, err)

	w := serve(r, http.MethodGet, "/api/customers", "Bearer "+token, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ERR_TOKEN_EXPIRED", errorCode(t, w))
}

func TestRoleMiddleware(t *testing.T) {
	r := newRouter(t)
	sales := bearer(t, "sales-1", models.RoleSales)
	admin := bearer(t, "admin-1", models.RoleAdmin)
	body := `{"name":"EV Hue","address":"1 Le Loi, Hue"}`

	w := serve(r, http.MethodPost, "/api/dealers", sales, body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "ERR_INSUFFICIENT_PERMISSIONS", errorCode(t, w))

	w = serve(r, http.MethodPost, "/api/dealers", admin, body)
	assert.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/customers", sales, "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/customers", admin, "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/bookings/deposit", admin, "").Code)
}

func TestBookingLogAdminOnly(t *testing.T) {
	r := newRouter(t)

	w := serve(r, http.MethodGet, "/api/bookings/deposit", bearer(t, "sales-1", models.RoleSales), "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "ERR_INSUFFICIENT_PERMISSIONS", errorCode(t, w))

	w = serve(r, http.MethodGet, "/api/bookings/test-drive", bearer(t, "sales-1", models.RoleSales), "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(r, http.MethodGet, "/api/bookings/test-drive", bearer(t, "admin-1", models.RoleAdmin), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCustomersYourselfUsesTokenStaff(t *testing.T) {
	r := newRouter(t)

	w := serve(r, http.MethodGet, "/api/customers/yourself", bearer(t, "sales-2", models.RoleSales), "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Customer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "c2", resp.Data[0].ID)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouter(t)
	serve(r, http.MethodGet, "/api/vehicles", "", "")

	w := serve(r, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/api/vehicles",status="200"}`)
	assert.Contains(t, w.Body.String(), "http_request_duration_seconds")
}

func TestMetricsRecordsRecoveredPanics(t *testing.T) {
	r := newRouter(t)
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})
	labels := []string{http.MethodGet, "/boom", "500"}
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(labels...))

	w := serve(r, http.MethodGet, "/boom", "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(labels...)))
}
