package auth

import (
	"net/http"

	"claimsportal/internal/domain"
	"claimsportal/internal/pkg/response"
	"claimsportal/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
	}
}

// RegisterProtectedRoutes adds the endpoints that need a session.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/auth/me", h.Me)
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	employee, token, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		if err == ErrEmailTaken {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "Email already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Signup failed")
		return
	}

	resp := SessionResponse{Token: token}
	resp.Employee.ID = employee.ID
	resp.Employee.Email = employee.Email
	resp.Employee.Name = employee.Name
	response.Success(c, http.StatusCreated, resp)
}

// Me returns the profile of the authenticated employee.
func (h *Handler) Me(c *gin.Context) {
	v, ok := c.Get("session")
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	session, ok := v.(domain.Session)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	employee, err := h.service.Profile(c.Request.Context(), session.EmployeeID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Profile lookup failed")
		return
	}
	if employee == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Employee not found")
		return
	}

	response.Success(c, http.StatusOK, employee)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	employee, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if err == ErrInvalidCredentials {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	resp := SessionResponse{Token: token}
	resp.Employee.ID = employee.ID
	resp.Employee.Email = employee.Email
	resp.Employee.Name = employee.Name
	response.Success(c, http.StatusOK, resp)
}
