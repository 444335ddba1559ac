package readability

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"seotext-backend/internal/shared/server/middleware"
	"seotext-backend/internal/shared/server/respond"
	"seotext-backend/internal/texts"
	"seotext-backend/readability/model"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches readability routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/readability/analyze", h.analyze)
	rg.POST("/readability/highlight", h.highlight)
	rg.GET("/projects/:projectId/readability", h.project)
}

type analyzeRequest struct {
	Text *string `json:"text"`
}

type highlightRequest struct {
	Text      *string                `json:"text"`
	Highlight *model.HighlightConfig `json:"highlight"`
}

func (h *Handler) analyze(c *gin.Context) {
	h.limitBody(c)

	var req analyzeRequest
	if !bindText(c, &req, &req.Text) {
		return
	}

	result, err := h.Svc.Analyze(c.Request.Context(), *req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) highlight(c *gin.Context) {
	h.limitBody(c)

	// Categories omitted from the request stay enabled.
	defaults := model.AllHighlights()
	req := highlightRequest{Highlight: &defaults}
	if !bindText(c, &req, &req.Text) {
		return
	}
	cfg := defaults
	if req.Highlight != nil {
		cfg = *req.Highlight
	}

	report, err := h.Svc.Highlight(c.Request.Context(), *req.Text, cfg)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, report)
}

func (h *Handler) project(c *gin.Context) {
	projectID := c.Param("projectId")
	c.Set(middleware.ProjectIDKey, projectID)

	cfg, err := ParseFlags(c.Request.URL.Query())
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	report, err := h.Svc.AnalyzeProject(c.Request.Context(), projectID, cfg)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.VersionIDKey, report.VersionID)
	respond.OK(c, report)
}

// limitBody caps request bodies well above the text limit so JSON escaping of
// a text at the limit still fits.
func (h *Handler) limitBody(c *gin.Context) {
	if h.Svc.MaxTextBytes <= 0 {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(h.Svc.MaxTextBytes)*6+4096)
}

func bindText(c *gin.Context, req any, text **string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "text_too_large", "request body too large", nil)
			return false
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return false
	}
	if *text == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		return false
	}
	return true
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTextTooLarge), errors.Is(err, texts.ErrTextTooLarge):
		respond.Error(c, http.StatusRequestEntityTooLarge, "text_too_large", err.Error(), nil)
	case errors.Is(err, texts.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "project has no saved text", nil)
	case errors.Is(err, texts.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze text", nil)
	}
}
