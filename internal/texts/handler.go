package texts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"seotext-backend/internal/shared/server/middleware"
	"seotext-backend/internal/shared/server/respond"
)

const (
	defaultListLimit = 20
	maxListLimit     = 50
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches text routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/projects/:projectId/text", h.save)
	rg.GET("/projects/:projectId/text", h.latest)
	rg.GET("/projects/:projectId/text/versions", h.list)
	rg.GET("/projects/:projectId/text/versions/:versionId", h.get)
}

type saveRequest struct {
	Content *string `json:"content"`
}

func (h *Handler) save(c *gin.Context) {
	projectID := c.Param("projectId")
	c.Set(middleware.ProjectIDKey, projectID)

	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Content == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "content is required", nil)
		return
	}

	v, err := h.Svc.Save(c.Request.Context(), SaveInput{
		ProjectID: projectID,
		Content:   *req.Content,
		Source:    SourceEditor,
	})
	if err != nil {
		WriteError(c, err, "failed to save text")
		return
	}
	c.Set(middleware.VersionIDKey, v.ID)

	respond.JSON(c, http.StatusCreated, ToResponse(v))
}

func (h *Handler) latest(c *gin.Context) {
	projectID := c.Param("projectId")
	c.Set(middleware.ProjectIDKey, projectID)

	v, err := h.Svc.Latest(c.Request.Context(), projectID)
	if err != nil {
		WriteError(c, err, "failed to load text")
		return
	}
	c.Set(middleware.VersionIDKey, v.ID)

	respond.OK(c, ToResponse(v))
}

func (h *Handler) get(c *gin.Context) {
	projectID := c.Param("projectId")
	c.Set(middleware.ProjectIDKey, projectID)
	c.Set(middleware.VersionIDKey, c.Param("versionId"))

	v, err := h.Svc.Get(c.Request.Context(), projectID, c.Param("versionId"))
	if err != nil {
		WriteError(c, err, "failed to load text version")
		return
	}

	respond.OK(c, ToResponse(v))
}

func (h *Handler) list(c *gin.Context) {
	projectID := c.Param("projectId")
	c.Set(middleware.ProjectIDKey, projectID)

	limit := defaultListLimit
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	versions, err := h.Svc.List(c.Request.Context(), projectID, limit, offset)
	if err != nil {
		WriteError(c, err, "failed to list text versions")
		return
	}

	resp := make([]VersionSummary, 0, len(versions))
	for _, v := range versions {
		resp = append(resp, toSummary(v))
	}
	respond.OK(c, gin.H{"versions": resp, "limit": limit, "offset": offset})
}

// WriteError maps service errors onto the standard error envelope.
func WriteError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "text not found", nil)
	case errors.Is(err, ErrTextTooLarge):
		respond.Error(c, http.StatusRequestEntityTooLarge, "text_too_large", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
