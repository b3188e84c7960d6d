package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"evdealer/fixtures"
	"evdealer/models"
	"evdealer/repository/repotest"
	"evdealer/services"
	"evdealer/store"
	"evdealer/utils"
	"evdealer/validators"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Errors  map[string]string `json:"errors"`
}

type testEnv struct {
	router    *gin.Engine
	vehicles  *repotest.Vehicles
	customers *repotest.Customers
}

func today() time.Time {
	return time.Date(2026, 10, 16, 9, 0, 0, 0, time.FixedZone("ICT", 7*60*60))
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cipher, err := utils.NewFieldCipher("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	v := validators.New(today)
	mem := store.NewMemory()
	vehicleRepo := &repotest.Vehicles{Items: fixtures.Vehicles()}
	customerRepo := repotest.NewCustomers()
	payments := &repotest.Payments{}

	vehicles := services.NewVehicleService(vehicleRepo, 2)
	h := &Handler{
		Vehicles:   vehicles,
		Compare:    services.NewCompareService(vehicles, mem),
		Bookings:   services.NewBookingService(v, mem, 0),
		Customers:  services.NewCustomerService(customerRepo, payments, v, cipher),
		Orders:     services.NewOrderService(repotest.NewOrders(payments), customerRepo),
		Dealers:    services.NewDealerService(repotest.NewDealers(fixtures.Dealers()...)),
		Promotions: services.NewPromotionService(repotest.NewPromotions()),
	}

	r := gin.New()
	asStaff := func(c *gin.Context) {
		c.Set(ContextStaffID, "staff-1")
		c.Set(ContextRole, models.RoleSales)
	}
	r.GET("/vehicles", h.ListVehicles)
	r.GET("/vehicles/:id", h.GetVehicle)
	r.POST("/compare", h.CreateCompareSession)
	r.POST("/compare/:sessionId/vehicles/:vehicleId", h.ToggleCompareVehicle)
	r.DELETE("/compare/:sessionId", h.ClearCompareSession)
	r.POST("/bookings/test-drive", h.SubmitTestDrive)
	r.POST("/bookings/deposit", h.SubmitDeposit)
	r.GET("/bookings/:kind", h.ListBookings)
	r.POST("/customers", asStaff, h.CreateCustomer)
	r.GET("/customers", asStaff, h.ListCustomers)
	r.GET("/customers/yourself", asStaff, h.ListMyCustomers)
	r.GET("/customers/export", asStaff, h.ExportCustomers)
	r.GET("/customers/:id", asStaff, h.GetCustomer)
	r.GET("/customers/:id/payments", asStaff, h.GetCustomerPayments)
	r.POST("/orders", asStaff, h.CreateOrder)
	r.GET("/dealers", h.ListDealers)
	r.POST("/promotions", h.CreatePromotion)

	return &testEnv{router: r, vehicles: vehicleRepo, customers: customerRepo}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestListVehiclesEnvelope(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, http.MethodGet, "/vehicles?sort=price&order=desc&page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, services.MessageCatalogLoaded, resp.Message)

	var page struct {
		Page         int              `json:"page"`
		Limit        int              `json:"limit"`
		TotalPages   int              `json:"totalPages"`
		TotalRecords int              `json:"totalRecords"`
		Data         []models.Vehicle `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &page))
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 6, page.TotalRecords)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "vf7", page.Data[0].ID)
	assert.NotContains(t, string(resp.Data), "wholesalePrice")
}

func TestListVehiclesHugeLimit(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, http.MethodGet, "/vehicles?page=3&limit=4611686018427387904", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Limit      int               `json:"limit"`
		TotalPages int               `json:"totalPages"`
		Data       []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &page))
	assert.Equal(t, services.MaxPageLimit, page.Limit)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Data)
}

func TestListVehiclesOfflineFallback(t *testing.T) {
	env := newTestEnv(t)
	env.vehicles.Err = assert.AnError

	w, resp := env.do(t, http.MethodGet, "/vehicles?q=vf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, services.MessageOfflineCatalog, resp.Message)
}

func TestListVehiclesBadFilter(t *testing.T) {
	env := newTestEnv(t)
	w, resp := env.do(t, http.MethodGet, "/vehicles?minPrice=cheap", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "ERR_INVALID_FILTER", resp.Code)
}

func TestGetVehicleNotFound(t *testing.T) {
	env := newTestEnv(t)
	w, resp := env.do(t, http.MethodGet, "/vehicles/model-s", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_NOT_FOUND", resp.Code)
}

func TestCompareFlow(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, http.MethodPost, "/compare", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var view services.CompareView
	require.NoError(t, json.Unmarshal(resp.Data, &view))
	session := view.SessionID

	for _, id := range []string{"vf3", "vf5", "vf6"} {
		w, _ = env.do(t, http.MethodPost, "/compare/"+session+"/vehicles/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, resp = env.do(t, http.MethodPost, "/compare/"+session+"/vehicles/vf9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "You can compare at most 3 vehicles", resp.Message)
	var toggled struct {
		Outcome string               `json:"outcome"`
		View    services.CompareView `json:"compare"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &toggled))
	assert.Equal(t, "full", toggled.Outcome)
	assert.Len(t, toggled.View.Vehicles, 3)

	w, _ = env.do(t, http.MethodDelete, "/compare/"+session, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitTestDriveValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, http.MethodPost, "/bookings/test-drive", map[string]interface{}{
		"fullName":       "   ",
		"phone":          "abc",
		"email":          "a@b",
		"vehicleId":      "vf3",
		"preferredDate":  "2026-10-15",
		"pickupLocation": "home",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ERR_VALIDATION", resp.Code)
	for _, field := range []string{"fullName", "phone", "email", "preferredDate", "homeAddress", "agreement"} {
		assert.Contains(t, resp.Errors, field)
	}
	assert.NotContains(t, resp.Errors, "dealerId")
}

func TestSubmitDepositAndList(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, http.MethodPost, "/bookings/deposit", map[string]interface{}{
		"fullName":       "Le Van C",
		"phone":          "0912345678",
		"email":          "c@example.com",
		"identityCard":   "001203004567",
		"vehicleId":      "vf8",
		"deliveryDate":   "2026-10-16",
		"pickupLocation": "dealer",
		"dealerId":       "dealer-hn-01",
		"depositAmount":  50000000,
		"agreement":      true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var booking BookingResponse
	require.NoError(t, json.Unmarshal(resp.Data, &booking))
	assert.True(t, booking.ShowSuccessModal)
	assert.False(t, booking.IsSubmitting)
	assert.Equal(t, "********4567", booking.Booking.IdentityCard)

	w, resp = env.do(t, http.MethodGet, "/bookings/deposit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var records []models.BookingRecord
	require.NoError(t, json.Unmarshal(resp.Data, &records))
	assert.Len(t, records, 1)

	w, _ = env.do(t, http.MethodGet, "/bookings/service", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerEndpoints(t *testing.T) {
	env := newTestEnv(t)
	env.customers.Items["c0"] = models.Customer{ID: "c0", FullName: "Other", Email: "o@example.com", Phone: "0900000000", SalesStaffID: "staff-2"}

	form := map[string]string{
		"fullName":     "Pham Minh D",
		"phone":        "0987654321",
		"email":        "d@example.com",
		"identityCard": "079088001234",
	}
	w, resp := env.do(t, http.MethodPost, "/customers", form)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.Customer
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, "staff-1", created.SalesStaffID)

	w, resp = env.do(t, http.MethodPost, "/customers", form)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ERR_CONFLICT", resp.Code)

	w, resp = env.do(t, http.MethodGet, "/customers?q=pham", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Customer
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "079088001234", list[0].IdentityCard)

	w, resp = env.do(t, http.MethodGet, "/customers/yourself", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	w, _ = env.do(t, http.MethodGet, "/customers/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = env.do(t, http.MethodGet, "/customers/missing/payments", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = env.do(t, http.MethodPost, "/orders", map[string]interface{}{
		"customerId": created.ID, "vehicleId": "vf5", "amount": 529000000, "deposit": 20000000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp = env.do(t, http.MethodGet, "/customers/"+created.ID+"/payments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var payments []models.Payment
	require.NoError(t, json.Unmarshal(resp.Data, &payments))
	require.Len(t, payments, 1)
	assert.Equal(t, 20000000.0, payments[0].Amount)
}

func TestExportCustomers(t *testing.T) {
	env := newTestEnv(t)
	w, _ := env.do(t, http.MethodGet, "/customers/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "customers.xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestCreatePromotionBindingAndValidation(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, http.MethodPost, "/promotions", map[string]interface{}{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ERR_INVALID_INPUT", resp.Code)

	w, _ = env.do(t, http.MethodPost, "/promotions", map[string]interface{}{
		"title": "Year end", "discountPercent": 10, "startDate": "2026-12-31", "endDate": "2026-12-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = env.do(t, http.MethodPost, "/promotions", map[string]interface{}{
		"title": "Year end", "discountPercent": 10, "startDate": "2099-12-01", "endDate": "2099-12-31",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var p models.Promotion
	require.NoError(t, json.Unmarshal(resp.Data, &p))
	assert.Equal(t, models.PromotionScheduled, p.Status)
}

func TestListDealers(t *testing.T) {
	env := newTestEnv(t)
	w, resp := env.do(t, http.MethodGet, "/dealers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dealers []models.Dealer
	require.NoError(t, json.Unmarshal(resp.Data, &dealers))
	assert.Len(t, dealers, len(fixtures.Dealers()))
}
