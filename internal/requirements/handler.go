package requirements

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recruit-backend/internal/shared/server/middleware"
	"recruit-backend/internal/shared/server/respond"
	"recruit-backend/internal/users"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches requirement routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	canEdit := middleware.RequireRole(users.RoleAdmin, users.RoleHiringManager)
	rg.POST("/requirements", canEdit, h.create)
	rg.GET("/requirements", h.list)
	rg.GET("/requirements/:id", h.get)
	rg.PATCH("/requirements/:id", canEdit, h.update)
}

type createRequest struct {
	ClientID      string   `json:"clientId"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Skills        []string `json:"skills"`
	ExperienceMin int      `json:"experienceMin"`
	ExperienceMax int      `json:"experienceMax"`
	Location      string   `json:"location"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), userID, CreateInput{
		ClientID:      req.ClientID,
		Title:         req.Title,
		Description:   req.Description,
		Skills:        req.Skills,
		ExperienceMin: req.ExperienceMin,
		ExperienceMax: req.ExperienceMax,
		Location:      req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "title is required and experience range must be valid", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create requirement", nil)
		}
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(created))
}

func (h *Handler) get(c *gin.Context) {
	req, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "requirement not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch requirement", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(req))
}

type updateRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Skills        *[]string `json:"skills"`
	ExperienceMin *int      `json:"experienceMin"`
	ExperienceMax *int      `json:"experienceMax"`
	Location      *string   `json:"location"`
	Status        *string   `json:"status"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	updated, err := h.Svc.Update(c.Request.Context(), c.Param("id"), UpdateInput(req))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid field value", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "requirement not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update requirement", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(updated))
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	list, err := h.Svc.List(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown status filter", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list requirements", nil)
		}
		return
	}

	resp := make([]gin.H, 0, len(list))
	for _, req := range list {
		resp = append(resp, toResponse(req))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func toResponse(req Requirement) gin.H {
	return gin.H{
		"requirementId": req.ID,
		"clientId":      req.ClientID,
		"createdBy":     req.CreatedBy,
		"title":         req.Title,
		"description":   req.Description,
		"skills":        req.Skills,
		"experienceMin": req.ExperienceMin,
		"experienceMax": req.ExperienceMax,
		"location":      req.Location,
		"status":        req.Status,
		"createdAt":     req.CreatedAt,
		"updatedAt":     req.UpdatedAt,
	}
}
