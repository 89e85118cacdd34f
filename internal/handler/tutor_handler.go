package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-finder/internal/middleware"
	"github.com/noah-isme/tutor-finder/internal/models"
	"github.com/noah-isme/tutor-finder/internal/service"
	appErrors "github.com/noah-isme/tutor-finder/pkg/errors"
	"github.com/noah-isme/tutor-finder/pkg/response"
)

type tutorSearcher interface {
	Search(ctx context.Context, req service.SearchTutorsRequest) ([]models.Tutor, bool, error)
}

// TutorHandler serves the catalog search endpoint.
type TutorHandler struct {
	service tutorSearcher
}

// NewTutorHandler constructs a tutor handler.
func NewTutorHandler(svc tutorSearcher) *TutorHandler {
	return &TutorHandler{service: svc}
}

// Search godoc
// @Summary Search tutors
// @Description Tutors teaching subject (case-insensitive) whose location contains location. Empty parameters match everything.
// @Tags Tutors
// @Produce json
// @Param subject query string false "Subject name"
// @Param location query string false "Location substring"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/tutors/search [get]
func (h *TutorHandler) Search(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req service.SearchTutorsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid query parameters"))
		return
	}
	tutors, cacheHit, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if tutors == nil {
		tutors = []models.Tutor{}
	}
	middleware.SetCacheHit(c, cacheHit)
	middleware.SetMeta(c, "count", len(tutors))
	response.JSON(c, http.StatusOK, tutors, middleware.ExtractMeta(c))
}
