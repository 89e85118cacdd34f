package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-finder/internal/client"
	"github.com/noah-isme/tutor-finder/internal/dto"
	appErrors "github.com/noah-isme/tutor-finder/pkg/errors"
	"github.com/noah-isme/tutor-finder/pkg/middleware/requestid"
	"github.com/noah-isme/tutor-finder/pkg/response"
)

// FindTutorsTemplate is the template name rendered by Page.
const FindTutorsTemplate = "find_tutors.html"

type findTutorsLoader interface {
	Load(ctx context.Context, query url.Values) *dto.FindTutorsView
}

// FindTutorsHandler serves the find-tutors page and its JSON view.
type FindTutorsHandler struct {
	service findTutorsLoader
}

// NewFindTutorsHandler constructs the handler.
func NewFindTutorsHandler(svc findTutorsLoader) *FindTutorsHandler {
	return &FindTutorsHandler{service: svc}
}

// Page renders the find-tutors HTML page.
func (h *FindTutorsHandler) Page(c *gin.Context) {
	if h.service == nil {
		c.String(http.StatusInternalServerError, "find tutors is unavailable")
		return
	}
	view := h.load(c)
	response.HTML(c, http.StatusOK, FindTutorsTemplate, view)
}

// View godoc
// @Summary Find tutors page state
// @Description Filter state, sidebar sections and the filtered results grid of the find-tutors page.
// @Tags FindTutors
// @Produce json
// @Param subject query string false "Subject"
// @Param location query string false "Location"
// @Param experience query []string false "Experience buckets (0-2, 3-5, 6-10, 10+)" collectionFormat(multi)
// @Param price query []string false "Monthly price buckets (0-1000, 1000-2500, 2500-5000, 5000+)" collectionFormat(multi)
// @Param toggled query []string false "Sidebar sections flipped from their default" collectionFormat(multi)
// @Success 200 {object} response.Envelope{data=dto.FindTutorsView}
// @Router /api/find-tutors [get]
func (h *FindTutorsHandler) View(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	response.JSON(c, http.StatusOK, h.load(c))
}

func (h *FindTutorsHandler) load(c *gin.Context) *dto.FindTutorsView {
	ctx := client.WithRequestID(c.Request.Context(), requestid.Value(c))
	return h.service.Load(ctx, c.Request.URL.Query())
}
