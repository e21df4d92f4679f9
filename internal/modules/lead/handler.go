package lead

import (
	"errors"
	"log"
	"net/http"

	"claimsportal/internal/domain"

	"github.com/gin-gonic/gin"
)

// Handler exposes lead creation and the enriched listing.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/leads", h.Create)
	r.GET("/leads", h.List)
}

// Create handles POST /api/leads: {leadData, kreditData} -> {success, leadId}.
func (h *Handler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payload is incomplete."})
		return
	}

	leadID, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrPayloadIncomplete) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payload is incomplete."})
			return
		}
		log.Printf("lead_create error=%q", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lead submission failed. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "leadId": leadID})
}

// List handles GET /api/leads?employeeId=. Without an explicit filter
// the session's employee id is used, so staff see their own leads.
func (h *Handler) List(c *gin.Context) {
	employeeID := c.Query("employeeId")
	if employeeID == "" {
		if session, ok := c.Get("session"); ok {
			if s, ok := session.(domain.Session); ok {
				employeeID = s.EmployeeID
			}
		}
	}

	leads, err := h.service.List(c.Request.Context(), employeeID)
	if err != nil {
		log.Printf("lead_list error=%q", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Leads konnten nicht geladen werden."})
		return
	}

	c.JSON(http.StatusOK, ListLeadsResponse{Leads: leads})
}
