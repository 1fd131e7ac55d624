package matching

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recruit-backend/internal/shared/server/middleware"
	"recruit-backend/internal/shared/server/respond"
	"recruit-backend/internal/submissions"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches match-score routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/submissions/:id/analyze", h.analyze)
	rg.GET("/submissions/:id/match-score", h.latestForSubmission)
	rg.GET("/match-scores/:id", h.get)
	rg.GET("/requirements/:id/match-scores", h.listByRequirement)
}

func (h *Handler) analyze(c *gin.Context) {
	requestID := middleware.RequestIDFromContext(c)

	score, err := h.Svc.Start(c.Request.Context(), c.Param("id"), requestID)
	if err != nil {
		switch {
		case errors.Is(err, submissions.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "submission not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start analysis", nil)
		}
		return
	}
	respond.JSON(c, http.StatusAccepted, gin.H{
		"matchScoreId": score.ID,
		"status":       score.Status,
	})
}

func (h *Handler) get(c *gin.Context) {
	score, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "match score not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch match score", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(score))
}

func (h *Handler) latestForSubmission(c *gin.Context) {
	score, err := h.Svc.LatestForSubmission(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no match score for submission", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch match score", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(score))
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
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list match scores", nil)
		return
	}

	resp := make([]gin.H, 0, len(list))
	for _, score := range list {
		resp = append(resp, toResponse(score))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func toResponse(score MatchScore) gin.H {
	resp := gin.H{
		"matchScoreId":  score.ID,
		"submissionId":  score.SubmissionID,
		"requirementId": score.RequirementID,
		"status":        score.Status,
		"createdAt":     score.CreatedAt,
		"updatedAt":     score.UpdatedAt,
	}
	switch score.Status {
	case StatusCompleted:
		resp["source"] = score.Source
		resp["degraded"] = score.Degraded
		resp["overallScore"] = score.OverallScore
		resp["subScores"] = gin.H{
			"skills":     score.SkillsScore,
			"experience": score.ExperienceScore,
			"education":  score.EducationScore,
			"keywords":   score.KeywordsScore,
		}
		resp["recommendation"] = score.Recommendation
		resp["matchLevel"] = score.MatchLevel
		resp["reasoning"] = score.Reasoning
		resp["strengths"] = score.Strengths
		resp["weaknesses"] = score.Weaknesses
		resp["recommendations"] = score.Recommendations
		resp["completedAt"] = score.CompletedAt
	case StatusFailed:
		resp["errorCode"] = score.ErrorCode
		resp["errorMessage"] = score.ErrorMessage
	}
	return resp
}
