package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealerdrive-api/internal/handler"
	"dealerdrive-api/internal/middleware"
	"dealerdrive-api/internal/model"
	"dealerdrive-api/internal/repository"
	"dealerdrive-api/internal/router"
	"dealerdrive-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminPassword = "opensesame"

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	carRepo := repository.NewMemoryCarRepository()
	enquiryRepo := repository.NewMemoryEnquiryRepository()

	sessionStore := service.NewMemorySessionStore()
	t.Cleanup(sessionStore.Close)
	sessions := service.NewSessionService(
		service.EnvCredentials{Username: "admin", Password: testAdminPassword},
		sessionStore, 0)

	return router.New(router.Config{
		Handler:           handler.New("test"),
		CarHandler:        handler.NewCarHandler(carRepo),
		EnquiryHandler:    handler.NewEnquiryHandler(enquiryRepo),
		AuthHandler:       handler.NewAuthHandler(sessions),
		AdminHandler:      handler.NewAdminHandler(carRepo, enquiryRepo, "memory"),
		SessionMiddleware: middleware.RequireSession(sessions),
	})
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestListCars(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/cars", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cars := decode[[]model.Car](t, rec)
	assert.Len(t, cars, 6)
}

func TestCreateCar(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/cars", map[string]interface{}{
		"name":         "Test Car",
		"price":        10000,
		"year":         2020,
		"mileage":      "30 MPG",
		"fuelType":     "Gasoline",
		"transmission": "Manual",
		"description":  "",
		"image":        "",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[model.Car](t, rec)
	assert.Equal(t, 7, created.ID) // seed catalog ends at 6
	assert.Equal(t, "Test Car", created.Name)
	assert.Equal(t, 10000.0, created.Price)
	assert.Equal(t, 2020, created.Year)
	assert.Equal(t, "30 MPG", created.Mileage)
	assert.Equal(t, "Gasoline", created.FuelType)
	assert.Equal(t, "Manual", created.Transmission)
}

func TestCreateCarInvalidBody(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cars", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCar(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPut, "/api/cars/2", map[string]interface{}{"price": 69900})
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decode[model.Car](t, rec)
	assert.Equal(t, 69900.0, updated.Price)
	assert.Equal(t, "BMW M4 Competition", updated.Name)
}

func TestUpdateCarNotFound(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPut, "/api/cars/999", map[string]interface{}{"price": 5000})
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decode[map[string]string](t, rec)
	assert.Equal(t, "Car not found", body["error"])
}

func TestUpdateCarNonNumericID(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPut, "/api/cars/abc", map[string]interface{}{"price": 5000})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCar(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodDelete, "/api/cars/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]bool](t, rec)
	assert.True(t, body["success"])

	rec = doJSON(t, r, http.MethodGet, "/api/cars", nil)
	cars := decode[[]model.Car](t, rec)
	assert.Len(t, cars, 5)
}

func TestEnquiryLifecycle(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/enquiries", map[string]interface{}{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"phone":   "555-0100",
		"message": "Is the M4 still available?",
		"carName": "BMW M4 Competition",
		"carId":   "2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[model.Enquiry](t, rec)
	assert.Equal(t, 1, created.ID)
	assert.NotEmpty(t, created.SubmittedAt)

	// First delete succeeds, second is a 404.
	rec = doJSON(t, r, http.MethodDelete, "/api/enquiries/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]bool](t, rec)
	assert.True(t, body["success"])

	rec = doJSON(t, r, http.MethodDelete, "/api/enquiries/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// No session exists afterwards.
	rec = doJSON(t, r, http.MethodGet, "/api/auth/session", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode[handler.SessionStatus](t, rec)
	assert.False(t, status.Authenticated)
}

func TestLoginAndSessionCheck(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	login := decode[handler.LoginResponse](t, rec)
	require.NotEmpty(t, login.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.Header.Set("X-Session-Token", login.Token)
	check := httptest.NewRecorder()
	r.ServeHTTP(check, req)
	require.Equal(t, http.StatusOK, check.Code)
	status := decode[handler.SessionStatus](t, check)
	assert.True(t, status.Authenticated)
	assert.Equal(t, "admin", status.Username)
}

func TestAdminStatsRequiresSession(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/admin/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	login := decode[handler.LoginResponse](t, rec)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("X-Session-Token", login.Token)
	stats := httptest.NewRecorder()
	r.ServeHTTP(stats, req)
	require.Equal(t, http.StatusOK, stats.Code)

	body := decode[map[string]interface{}](t, stats)
	assert.Equal(t, "memory", body["store_backend"])
}
