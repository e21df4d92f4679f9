package campaign

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	// defaultAdminID backs requests that arrive without an adminId,
	// mirroring the campaign page's configured owner.
	defaultAdminID string
}

func NewHandler(service *Service, defaultAdminID string) *Handler {
	return &Handler{service: service, defaultAdminID: defaultAdminID}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/campaign/kreditbearbeitungs", h.Submit)
}

// RegisterProtectedRoutes adds the staff-facing listing.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/campaign/kreditbearbeitungs/leads", h.List)
}

// List handles GET /api/campaign/kreditbearbeitungs/leads?adminId=.
func (h *Handler) List(c *gin.Context) {
	leads, err := h.service.List(c.Request.Context(), c.Query("adminId"))
	if err != nil {
		log.Printf("campaign_list error=%q", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Leads konnten nicht geladen werden."})
		return
	}

	c.JSON(http.StatusOK, ListLeadsResponse{Leads: leads})
}

// Submit handles POST /api/campaign/kreditbearbeitungs.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payload is incomplete."})
		return
	}
	if req.AdminID == "" {
		req.AdminID = h.defaultAdminID
	}

	leadID, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		if IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("campaign_submit error=%q", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrSubmitFailed.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "leadId": leadID})
}
