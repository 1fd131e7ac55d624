package submissions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recruit-backend/internal/shared/server/middleware"
	"recruit-backend/internal/shared/server/respond"
)

const maxResumeSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches submission routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/submissions", h.create)
	rg.GET("/submissions/:id", h.get)
	rg.PATCH("/submissions/:id/status", h.setStatus)
	rg.GET("/requirements/:id/submissions", h.listByRequirement)
}

// create accepts multipart form data: candidate fields plus an optional
// "resume" file part. JSON-only submissions go through the same form fields
// without the file.
func (h *Handler) create(c *gin.Context) {
	recruiterID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxResumeSize)

	in := CreateInput{
		RequirementID:  c.PostForm("requirementId"),
		CandidateName:  c.PostForm("candidateName"),
		CandidateEmail: c.PostForm("candidateEmail"),
		LinkedInURL:    c.PostForm("linkedinUrl"),
	}

	if fileHeader, err := c.FormFile("resume"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read resume file", nil)
			return
		}
		defer file.Close()
		in.Resume = file
		in.ResumeName = fileHeader.Filename
	}

	sub, err := h.Svc.Create(c.Request.Context(), recruiterID, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoCandidateSource):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "requirementId and candidateName are required", nil)
		case errors.Is(err, ErrRequirementNotExists):
			respond.Error(c, http.StatusNotFound, "not_found", "requirement not found", nil)
		case errors.Is(err, ErrRequirementNotOpen):
			respond.Error(c, http.StatusConflict, "requirement_not_open", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create submission", nil)
		}
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(sub))
}

func (h *Handler) get(c *gin.Context) {
	sub, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "submission not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch submission", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(sub))
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) setStatus(c *gin.Context) {
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	sub, err := h.Svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownStatus):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "submission not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update status", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(sub))
}

func (h *Handler) listByRequirement(c *gin.Context) {
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

	list, err := h.Svc.ListByRequirement(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list submissions", nil)
		return
	}

	resp := make([]gin.H, 0, len(list))
	for _, sub := range list {
		resp = append(resp, toResponse(sub))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func toResponse(sub Submission) gin.H {
	return gin.H{
		"submissionId":   sub.ID,
		"requirementId":  sub.RequirementID,
		"recruiterId":    sub.RecruiterID,
		"candidateName":  sub.CandidateName,
		"candidateEmail": sub.CandidateEmail,
		"linkedinUrl":    sub.LinkedInURL,
		"resumeName":     sub.ResumeName,
		"status":         sub.Status,
		"createdAt":      sub.CreatedAt,
		"updatedAt":      sub.UpdatedAt,
	}
}
