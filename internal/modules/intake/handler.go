package intake

import (
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"claimsportal/internal/funnel"

	"github.com/gin-gonic/gin"
)

const cacheControlImmutable = "public, max-age=31536000, immutable"

// Handler exposes one multipart intake endpoint per vertical plus the
// proxy download routes.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/energy", h.SubmitEnergy)
	r.POST("/betriebskosten", h.SubmitOperatingCost)
	r.POST("/casino", h.SubmitCasino)

	r.GET("/energy/files/:id", h.fetch(VerticalEnergy))
	r.GET("/betriebskosten/files/:id", h.fetch(VerticalBetrieb))
	r.GET("/casino/files/:id", h.fetch(VerticalCasino))
}

// SubmitEnergy handles POST /api/energy: provider, customerNumber,
// document, leadId — all required.
func (h *Handler) SubmitEnergy(c *gin.Context) {
	provider := c.PostForm("provider")
	customerNumber := c.PostForm("customerNumber")
	leadID := c.PostForm("leadId")

	file, ok := readUpload(c, "document")
	if provider == "" || customerNumber == "" || leadID == "" || !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMissingFields.Error()})
		return
	}

	result, err := h.service.SubmitEnergy(c.Request.Context(), &EnergySubmission{
		Provider:       provider,
		CustomerNumber: customerNumber,
		LeadID:         leadID,
		File:           file,
	})
	if err != nil {
		log.Printf("energy_submit error=%q", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgEnergyFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "fileId": result.FileID, "proxyUrl": result.ProxyURL})
}

// SubmitOperatingCost handles POST /api/betriebskosten. The duration
// value must parse as a number.
func (h *Handler) SubmitOperatingCost(c *gin.Context) {
	provider := c.PostForm("provider")
	durationValue := c.PostForm("durationValue")
	durationUnit := c.PostForm("durationUnit")
	notes := c.PostForm("notes")
	leadID := c.PostForm("leadId")

	file, ok := readUpload(c, "document")
	if provider == "" || durationValue == "" || durationUnit == "" || leadID == "" || !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMissingFields.Error()})
		return
	}

	parsedDuration, err := strconv.ParseFloat(strings.TrimSpace(durationValue), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrBadDuration.Error()})
		return
	}

	result, err := h.service.SubmitOperatingCost(c.Request.Context(), &OperatingCostSubmission{
		Provider:      provider,
		DurationValue: parsedDuration,
		DurationUnit:  durationUnit,
		Notes:         notes,
		LeadID:        leadID,
		File:          file,
	})
	if err != nil {
		log.Printf("betriebskosten_submit error=%q", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgOperationFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "fileId": result.FileID, "proxyUrl": result.ProxyURL})
}

// SubmitCasino handles POST /api/casino. The providers field must be a
// JSON array (malformed JSON degrades to an empty list and fails the
// non-empty check); the amount accepts German decimal formatting.
func (h *Handler) SubmitCasino(c *gin.Context) {
	providersRaw := c.PostForm("providers")
	if providersRaw == "" {
		providersRaw = "[]"
	}
	amountRaw := c.PostForm("amount")
	notes := c.PostForm("notes")
	consentPrivacy := parseConsent(c.PostForm("consentPrivacy"))
	consentConditions := parseConsent(c.PostForm("consentConditions"))
	leadID := c.PostForm("leadId")

	var providers []string
	if err := json.Unmarshal([]byte(providersRaw), &providers); err != nil {
		providers = nil
	}

	amount, amountOK := funnel.NormalizeAmount(amountRaw)

	file, fileOK := readUpload(c, "document")
	if len(providers) == 0 || amountRaw == "" || !amountOK || leadID == "" || !fileOK {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrPayloadInvalid.Error()})
		return
	}

	result, err := h.service.SubmitCasino(c.Request.Context(), &CasinoSubmission{
		Providers:         providers,
		Amount:            amount,
		Notes:             notes,
		ConsentPrivacy:    consentPrivacy,
		ConsentConditions: consentConditions,
		LeadID:            leadID,
		File:              file,
	})
	if err != nil {
		log.Printf("casino_submit error=%q", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgCasinoFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "fileId": result.FileID, "proxyUrl": result.ProxyURL})
}

// fetch builds the GET /api/{vertical}/files/:id proxy: looks up the
// storage path and streams the blob with immutable caching headers.
func (h *Handler) fetch(v Vertical) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileID := c.Param("id")
		if fileID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file id."})
			return
		}

		data, contentType, err := h.service.Fetch(c.Request.Context(), v, fileID)
		if err != nil {
			if err == ErrFileNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": ErrFileNotFound.Error()})
				return
			}
			log.Printf("file_proxy vertical=%s file_id=%s error=%q", v.Slug, fileID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgDownloadFailed})
			return
		}

		c.Header("Cache-Control", cacheControlImmutable)
		c.Data(http.StatusOK, contentType, data)
	}
}

func readUpload(c *gin.Context, field string) (Upload, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return Upload{}, false
	}
	data, contentType, err := readFileHeader(fileHeader)
	if err != nil {
		return Upload{}, false
	}
	return Upload{Data: data, Filename: fileHeader.Filename, ContentType: contentType}, true
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
		contentType = strings.Split(contentType, ";")[0]
	}
	return data, contentType, nil
}

// parseConsent accepts the literal strings "true" and "1".
func parseConsent(value string) bool {
	return value == "true" || value == "1"
}
