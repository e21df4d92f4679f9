package diag

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the client-side logging echo endpoint. Frontend
// pages post opaque values here during funnel debugging; the value
// lands in the server log and is reflected back.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/log", h.Log)
}

func (h *Handler) Log(c *gin.Context) {
	var body struct {
		Value any `json:"value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	log.Printf("client_log value=%v", body.Value)

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Value logged successfully",
		"receivedValue": body.Value,
	})
}
