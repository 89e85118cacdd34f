package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-finder/internal/middleware"
	appErrors "github.com/noah-isme/tutor-finder/pkg/errors"
	"github.com/noah-isme/tutor-finder/pkg/response"
)

type subjectLister interface {
	ListNames(ctx context.Context) ([]string, bool, error)
}

// SubjectHandler handles subject endpoints.
type SubjectHandler struct {
	service subjectLister
}

// NewSubjectHandler constructs a subject handler.
func NewSubjectHandler(svc subjectLister) *SubjectHandler {
	return &SubjectHandler{service: svc}
}

// List godoc
// @Summary List subject names
// @Tags Subjects
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/subjects/list [get]
func (h *SubjectHandler) List(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	names, cacheHit, err := h.service.ListNames(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, names, middleware.ExtractMeta(c))
}
