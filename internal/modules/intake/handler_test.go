package intake

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"claimsportal/internal/database"
	"claimsportal/internal/domain"
	"claimsportal/internal/repository"
	"claimsportal/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.EnergyDocument{},
		&domain.OperatingCostDocument{},
		&domain.CasinoDocument{},
	))

	store := storage.NewLocal(t.TempDir(), "http://localhost:3000/static/uploads")
	service := NewService(repository.NewDocumentRepository(db), store, "http://localhost:3000")
	handler := NewHandler(service)

	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)
	return router
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="`+filename+`"`)
		header.Set("Content-Type", "application/pdf")
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func postMultipart(router *gin.Engine, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitEnergy_StoresBlobAndRow(t *testing.T) {
	router := setupRouter(t)

	body, contentType := multipartBody(t, map[string]string{
		"provider":       "Wien Energie",
		"customerNumber": "KN-12345",
		"leadId":         "lead-1",
	}, "document", "rechnung.pdf", []byte("%PDF-1.4 energy"))

	w := postMultipart(router, "/api/energy", body, contentType)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success  bool   `json:"success"`
		FileID   string `json:"fileId"`
		ProxyURL string `json:"proxyUrl"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.FileID)
	assert.Equal(t, "http://localhost:3000/api/energy/files/"+resp.FileID, resp.ProxyURL)

	// proxy download round trip
	req := httptest.NewRequest(http.MethodGet, "/api/energy/files/"+resp.FileID, nil)
	dl := httptest.NewRecorder()
	router.ServeHTTP(dl, req)

	require.Equal(t, http.StatusOK, dl.Code)
	assert.Equal(t, []byte("%PDF-1.4 energy"), dl.Body.Bytes())
	assert.Equal(t, "application/pdf", dl.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000, immutable", dl.Header().Get("Cache-Control"))
}

func TestSubmitEnergy_MissingFields(t *testing.T) {
	router := setupRouter(t)

	body, contentType := multipartBody(t, map[string]string{
		"provider": "Wien Energie",
		// customerNumber missing
		"leadId": "lead-1",
	}, "document", "rechnung.pdf", []byte("x"))

	w := postMultipart(router, "/api/energy", body, contentType)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields.")
}

func TestSubmitEnergy_MissingFile(t *testing.T) {
	router := setupRouter(t)

	body, contentType := multipartBody(t, map[string]string{
		"provider":       "Wien Energie",
		"customerNumber": "KN-1",
		"leadId":         "lead-1",
	}, "", "", nil)

	w := postMultipart(router, "/api/energy", body, contentType)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitOperatingCost_BadDuration(t *testing.T) {
	router := setupRouter(t)

	body, contentType := multipartBody(t, map[string]string{
		"provider":      "Hausverwaltung Wien",
		"durationValue": "drei",
		"durationUnit":  "jahre",
		"leadId":        "lead-1",
	}, "document", "abrechnung.pdf", []byte("x"))

	w := postMultipart(router, "/api/betriebskosten", body, contentType)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Duration must be a number.")
}

func TestSubmitOperatingCost_Succeeds(t *testing.T) {
	router := setupRouter(t)

	body, contentType := multipartBody(t, map[string]string{
		"provider":      "Hausverwaltung Wien",
		"durationValue": "3",
		"durationUnit":  "jahre",
		"notes":         "Nachzahlung 2023",
		"leadId":        "lead-1",
	}, "document", "abrechnung.pdf", []byte("%PDF-1.4 betrieb"))

	w := postMultipart(router, "/api/betriebskosten", body, contentType)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestSubmitCasino_GermanAmountAndProviders(t *testing.T) {
	router := setupRouter(t)

	body, contentType := multipartBody(t, map[string]string{
		"providers":         `["win2day","bwin"]`,
		"amount":            "1.234,56",
		"notes":             "Verluste 2022-2024",
		"consentPrivacy":    "true",
		"consentConditions": "1",
		"leadId":            "lead-1",
	}, "document", "nachweis.pdf", []byte("%PDF-1.4 casino"))

	w := postMultipart(router, "/api/casino", body, contentType)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestSubmitCasino_RejectsMalformedProviders(t *testing.T) {
	router := setupRouter(t)

	body, contentType := multipartBody(t, map[string]string{
		"providers": `not-a-json-array`,
		"amount":    "500",
		"leadId":    "lead-1",
	}, "document", "nachweis.pdf", []byte("x"))

	w := postMultipart(router, "/api/casino", body, contentType)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Payload is incomplete.")
}

func TestSubmitCasino_RejectsBadAmount(t *testing.T) {
	router := setupRouter(t)

	body, contentType := multipartBody(t, map[string]string{
		"providers": `["win2day"]`,
		"amount":    "keine Ahnung",
		"leadId":    "lead-1",
	}, "document", "nachweis.pdf", []byte("x"))

	w := postMultipart(router, "/api/casino", body, contentType)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFetch_UnknownFileID(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/casino/files/does-not-exist", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Datei nicht gefunden.")
}
