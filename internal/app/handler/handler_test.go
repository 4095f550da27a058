package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/internal/app/config"
	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := repository.NewMemory()
	require.NoError(t, err)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Token:         "test-secret",
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
	}

	h := NewAPIHandler(repo, nil, cfg)
	r := gin.New()
	h.RegisterAPIRoutes(r)
	r.GET("/ping", h.Ping)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
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
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// createPartner и createClient — общая подготовка для тестов с FK
func createPartner(t *testing.T, r *gin.Engine) dto.PartnerResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/partners/", dto.CreatePartnerRequest{
		Name:  "ООО Защита",
		INN:   "7712345678",
		Email: "sales@zashchita.ru",
		Type:  "provider",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.PartnerResponse
	decode(t, w, &resp)
	return resp
}

func createClient(t *testing.T, r *gin.Engine, partnerID uint) dto.ClientResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/clients/", dto.CreateClientRequest{
		PartnerID: partnerID,
		Name:      "АО Заказчик",
		Type:      "COMPANY",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.ClientResponse
	decode(t, w, &resp)
	return resp
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestListEmptyReturnsArray(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/partners/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestInvalidIDFormat(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/partners/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid ID format"}`, w.Body.String())
}

func TestGetMissingPartner(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/partners/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Partner not found"}`, w.Body.String())
}

func TestCreatePartnerIssuesToken(t *testing.T) {
	r := newTestRouter(t)
	partner := createPartner(t, r)

	assert.Equal(t, uint(1), partner.ID)
	assert.Equal(t, "active", partner.Status)
	assert.NotEmpty(t, partner.APIToken)
}

func TestCreatePartnerValidationErrors(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/partners/", map[string]interface{}{
		"name": "X",
		"type": "vendor",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ValidationErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "Invalid partner data", resp.Message)
	require.NotEmpty(t, resp.Errors)

	fields := make(map[string]string)
	for _, fe := range resp.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "inn")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "type")
}

func TestCreateClientRejectsMissingPartner(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/clients/", dto.CreateClientRequest{
		PartnerID: 99,
		Name:      "АО Заказчик",
		Type:      "COMPANY",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ValidationErrorResponse
	decode(t, w, &resp)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "partner_id", resp.Errors[0].Field)
}

func TestCreateLicense(t *testing.T) {
	r := newTestRouter(t)
	partner := createPartner(t, r)
	client := createClient(t, r, partner.ID)

	w := doJSON(t, r, http.MethodPost, "/api/v1/licenses/", dto.CreateLicenseRequest{
		ClientID:   client.ID,
		LicenseKey: "ABC123",
		Status:     "AVAIL",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.LicenseResponse
	decode(t, w, &resp)
	assert.Equal(t, client.ID, resp.ClientID)
	assert.Equal(t, "ABC123", resp.LicenseKey)
	assert.Equal(t, "AVAIL", resp.Status)
	assert.False(t, resp.IssuedDate.IsZero())
}

func TestCreateLicenseDuplicateKey(t *testing.T) {
	r := newTestRouter(t)
	partner := createPartner(t, r)
	client := createClient(t, r, partner.ID)

	body := dto.CreateLicenseRequest{ClientID: client.ID, LicenseKey: "DUP-KEY-1"}
	w := doJSON(t, r, http.MethodPost, "/api/v1/licenses/", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/licenses/", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ValidationErrorResponse
	decode(t, w, &resp)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "license_key", resp.Errors[0].Field)
}

func TestDeviceStatusUpdate(t *testing.T) {
	r := newTestRouter(t)
	partner := createPartner(t, r)
	client := createClient(t, r, partner.ID)

	w := doJSON(t, r, http.MethodPost, "/api/v1/licenses/", dto.CreateLicenseRequest{
		ClientID:   client.ID,
		LicenseKey: "DEV-KEY-1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var license dto.LicenseResponse
	decode(t, w, &license)

	w = doJSON(t, r, http.MethodPost, "/api/v1/devices/", dto.CreateDeviceRequest{
		ClientID:  client.ID,
		LicenseID: license.ID,
		InstID:    "inst-777",
		OSVersion: "Astra Linux 1.7",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var device dto.DeviceResponse
	decode(t, w, &device)
	assert.Equal(t, "not_configured", device.Status)
	assert.False(t, device.RegisteredDate.IsZero())

	status := "ready"
	w = doJSON(t, r, http.MethodPut, "/api/v1/devices/1", dto.UpdateDeviceRequest{Status: &status})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &device)
	assert.Equal(t, "ready", device.Status)
	// Нетронутые поля сохранены
	assert.Equal(t, "inst-777", device.InstID)
	assert.Equal(t, "Astra Linux 1.7", device.OSVersion)
}

func TestDeviceRejectsMissingLicense(t *testing.T) {
	r := newTestRouter(t)
	partner := createPartner(t, r)
	client := createClient(t, r, partner.ID)

	w := doJSON(t, r, http.MethodPost, "/api/v1/devices/", dto.CreateDeviceRequest{
		ClientID:  client.ID,
		LicenseID: 55,
		InstID:    "inst-1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ValidationErrorResponse
	decode(t, w, &resp)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "license_id", resp.Errors[0].Field)
}

func TestDeleteFlow(t *testing.T) {
	r := newTestRouter(t)
	createPartner(t, r)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/partners/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(t, r, http.MethodDelete, "/api/v1/partners/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Partner not found"}`, w.Body.String())
}

func TestUserPasswordNeverReturned(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/users/", dto.CreateUserRequest{
		Email:    "operator@console.ru",
		Password: "secret123",
		FullName: "Оператор",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var raw map[string]interface{}
	decode(t, w, &raw)
	assert.NotContains(t, raw, "password")
	assert.Equal(t, "CREATED", raw["status"])
	assert.Equal(t, "user", raw["role"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	raw = map[string]interface{}{}
	decode(t, w, &raw)
	assert.NotContains(t, raw, "password")
}

func TestUserDuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	body := dto.CreateUserRequest{Email: "dup@console.ru", Password: "secret123"}
	w := doJSON(t, r, http.MethodPost, "/api/v1/users/", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/users/", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ValidationErrorResponse
	decode(t, w, &resp)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "email", resp.Errors[0].Field)
}

func TestUpdatePartnerPartial(t *testing.T) {
	r := newTestRouter(t)
	partner := createPartner(t, r)

	phone := "+7 495 123-45-67"
	w := doJSON(t, r, http.MethodPut, "/api/v1/partners/1", dto.UpdatePartnerRequest{Phone: &phone})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.PartnerResponse
	decode(t, w, &resp)
	assert.Equal(t, phone, resp.Phone)
	assert.Equal(t, partner.Name, resp.Name)
	assert.Equal(t, partner.Email, resp.Email)
}

func TestUploadPackageWithoutStorage(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/updates/", dto.CreateUpdateRequest{
		Version: "2.1.0",
		Title:   "Осеннее обновление",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// MinIO не сконфигурирован — загрузка недоступна
	w = doJSON(t, r, http.MethodPost, "/api/v1/updates/1/package", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
