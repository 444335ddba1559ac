package uploads

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"seotext-backend/internal/extract"
	"seotext-backend/internal/readability"
	"seotext-backend/internal/shared/server/middleware"
	"seotext-backend/internal/shared/server/respond"
	"seotext-backend/internal/shared/storage/object"
	"seotext-backend/internal/texts"
	"seotext-backend/readability/model"
)

// Multipart framing on top of the file itself.
const formOverheadBytes = 1 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects/:projectId/uploads", h.upload)
	rg.POST("/projects/:projectId/uploads/presign", h.presign)
	rg.POST("/projects/:projectId/uploads/import", h.importStored)
}

type importResponse struct {
	Version texts.VersionResponse `json:"version"`
	Result  model.AnalysisResult  `json:"result"`
}

func toImportResponse(in Import) importResponse {
	return importResponse{Version: texts.ToResponse(in.Version), Result: in.Result}
}

func (h *Handler) upload(c *gin.Context) {
	projectID := c.Param("projectId")
	c.Set(middleware.ProjectIDKey, projectID)

	limit := h.Svc.MaxUploadBytes
	if limit <= 0 {
		limit = DefaultMaxUploadBytes
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+formOverheadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "upload_too_large", "upload exceeds size limit", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	out, err := h.Svc.Import(c.Request.Context(), projectID, fileHeader.Filename, file)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.VersionIDKey, out.Version.ID)

	respond.JSON(c, http.StatusCreated, toImportResponse(out))
}

type presignRequest struct {
	FileName string `json:"fileName"`
}

func (h *Handler) presign(c *gin.Context) {
	projectID := c.Param("projectId")
	c.Set(middleware.ProjectIDKey, projectID)

	var req presignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	out, err := h.Svc.Presign(c.Request.Context(), projectID, req.FileName)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, out)
}

type importRequest struct {
	Key      string `json:"key"`
	FileName string `json:"fileName"`
}

func (h *Handler) importStored(c *gin.Context) {
	projectID := c.Param("projectId")
	c.Set(middleware.ProjectIDKey, projectID)

	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Key == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "key is required", nil)
		return
	}

	out, err := h.Svc.ImportStored(c.Request.Context(), projectID, req.Key, req.FileName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.VersionIDKey, out.Version.ID)

	respond.JSON(c, http.StatusCreated, toImportResponse(out))
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, texts.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrUploadTooLarge):
		respond.Error(c, http.StatusRequestEntityTooLarge, "upload_too_large", err.Error(), nil)
	case errors.Is(err, texts.ErrTextTooLarge), errors.Is(err, readability.ErrTextTooLarge):
		respond.Error(c, http.StatusRequestEntityTooLarge, "text_too_large", err.Error(), nil)
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_type", err.Error(), nil)
	case errors.Is(err, extract.ErrEmptyDocument):
		respond.Error(c, http.StatusUnprocessableEntity, "empty_document", err.Error(), nil)
	case errors.Is(err, ErrUnreadable):
		respond.Error(c, http.StatusUnprocessableEntity, "unreadable_document", "document could not be read", nil)
	case errors.Is(err, object.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "uploaded object not found", nil)
	case errors.Is(err, ErrPresignUnsupported):
		respond.Error(c, http.StatusNotImplemented, "not_supported", "presigned uploads require the s3 object store", nil)
	case errors.Is(err, context.Canceled):
		respond.Error(c, http.StatusRequestTimeout, "request_cancelled", "request cancelled", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to import upload", nil)
	}
}
